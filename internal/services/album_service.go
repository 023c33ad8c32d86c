package services

import (
	"context"
	"fmt"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
)

// AlbumService handles album business logic. Referenced collection and
// cover photo ids are verified before any write, so no album row ever
// carries a dangling reference.
type AlbumService struct {
	albumRepo      repository.AlbumRepo
	collectionRepo repository.CollectionRepo
	photoRepo      repository.PhotoRepo
	cascadeRepo    repository.CascadeRepo
	storage        *PhotoStorageService
}

// NewAlbumService creates a new AlbumService
func NewAlbumService(
	albumRepo repository.AlbumRepo,
	collectionRepo repository.CollectionRepo,
	photoRepo repository.PhotoRepo,
	cascadeRepo repository.CascadeRepo,
	storage *PhotoStorageService,
) *AlbumService {
	return &AlbumService{
		albumRepo:      albumRepo,
		collectionRepo: collectionRepo,
		photoRepo:      photoRepo,
		cascadeRepo:    cascadeRepo,
		storage:        storage,
	}
}

// ListAlbums returns a page of albums plus the total match count
func (s *AlbumService) ListAlbums(ctx context.Context, perPage, page int, filter *models.AlbumFilter) (*models.AlbumListResponse, error) {
	albums, err := s.albumRepo.GetMany(ctx, perPage, page, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	count, err := s.albumRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count albums: %w", err)
	}

	return &models.AlbumListResponse{Data: albums, TotalCount: count}, nil
}

// GetAlbum retrieves an album by ID
func (s *AlbumService) GetAlbum(ctx context.Context, id int64) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	if album == nil {
		return nil, models.ErrAlbumNotFound
	}
	return album, nil
}

// CreateAlbum creates a new album
func (s *AlbumService) CreateAlbum(ctx context.Context, req *models.CreateAlbumRequest) (*models.Album, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.CollectionID, req.CoverID); err != nil {
		return nil, err
	}

	album := &models.Album{
		Name:         req.Name,
		CoverID:      req.CoverID,
		CollectionID: req.CollectionID,
	}
	if err := s.albumRepo.Add(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	return album, nil
}

// UpdateAlbum applies a partial update to an album
func (s *AlbumService) UpdateAlbum(ctx context.Context, id int64, req *models.UpdateAlbumRequest) (*models.Album, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	if album == nil {
		return nil, models.ErrAlbumNotFound
	}

	if err := s.checkReferences(ctx, req.CollectionID.Value, req.CoverID.Value); err != nil {
		return nil, err
	}

	album.ApplyUpdate(req)

	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	return album, nil
}

// DeleteAlbum deletes an album with its locations and any photos located
// only in this album. Orphaned files are removed after commit.
func (s *AlbumService) DeleteAlbum(ctx context.Context, id int64) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	if album == nil {
		return nil, models.ErrAlbumNotFound
	}

	deleted, paths, err := s.cascadeRepo.DeleteAlbum(ctx, id)
	if err != nil {
		return nil, err
	}

	go s.storage.Cleanup(paths)

	return deleted, nil
}

func (s *AlbumService) checkReferences(ctx context.Context, collectionID, coverID *int64) error {
	if collectionID != nil {
		collection, err := s.collectionRepo.GetByID(ctx, *collectionID)
		if err != nil {
			return fmt.Errorf("failed to verify collection: %w", err)
		}
		if collection == nil {
			return models.ValidationError{Message: models.ErrCollectionNotFound.Message}
		}
	}

	if coverID != nil {
		cover, err := s.photoRepo.GetByID(ctx, *coverID)
		if err != nil {
			return fmt.Errorf("failed to verify cover photo: %w", err)
		}
		if cover == nil {
			return models.ValidationError{Message: models.ErrPhotoNotFound.Message}
		}
	}

	return nil
}
