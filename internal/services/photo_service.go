package services

import (
	"context"
	"fmt"
	"io"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
)

// UploadedFile is one file from a multipart upload request
type UploadedFile struct {
	Reader   io.Reader
	Filename string
	Size     int64
}

// PhotoService handles photo business logic
type PhotoService struct {
	photoRepo   repository.PhotoRepo
	cascadeRepo repository.CascadeRepo
	storage     *PhotoStorageService
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(
	photoRepo repository.PhotoRepo,
	cascadeRepo repository.CascadeRepo,
	storage *PhotoStorageService,
) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		cascadeRepo: cascadeRepo,
		storage:     storage,
	}
}

// ListPhotos returns a page of photos plus the total match count
func (s *PhotoService) ListPhotos(ctx context.Context, perPage, page int, filter *models.PhotoFilter) (*models.PhotoListResponse, error) {
	photos, err := s.photoRepo.GetMany(ctx, perPage, page, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	count, err := s.photoRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	return &models.PhotoListResponse{Data: photos, TotalCount: count}, nil
}

// GetPhoto retrieves a photo by ID
func (s *PhotoService) GetPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if photo == nil {
		return nil, models.ErrPhotoNotFound
	}
	return photo, nil
}

// CreatePhoto registers a photo against a previously uploaded file. The
// path must name an existing file under the upload root.
func (s *PhotoService) CreatePhoto(ctx context.Context, req *models.CreatePhotoRequest) (*models.Photo, error) {
	photo, err := models.NewPhoto(req)
	if err != nil {
		return nil, err
	}

	if !s.storage.Exists(req.Path) {
		return nil, models.ErrInvalidPath
	}

	if err := s.photoRepo.Add(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return photo, nil
}

// UpdatePhoto applies a partial update to a photo
func (s *PhotoService) UpdatePhoto(ctx context.Context, id int64, req *models.UpdatePhotoRequest) (*models.Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if photo == nil {
		return nil, models.ErrPhotoNotFound
	}

	if req.Path.Value != nil && !s.storage.Exists(*req.Path.Value) {
		return nil, models.ErrInvalidPath
	}

	if err := photo.ApplyUpdate(req); err != nil {
		return nil, err
	}

	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	return photo, nil
}

// DeletePhoto deletes a photo, nulling album covers that reference it and
// removing its locations. The file itself is removed after commit; a
// failed removal never undoes the committed delete.
func (s *PhotoService) DeletePhoto(ctx context.Context, id int64) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if photo == nil {
		return nil, models.ErrPhotoNotFound
	}

	deleted, err := s.cascadeRepo.DeletePhoto(ctx, id)
	if err != nil {
		return nil, err
	}

	if deleted.Path != nil {
		go s.storage.Cleanup([]string{*deleted.Path})
	}

	return deleted, nil
}

// StorePhotos stores a batch of uploaded files and returns their relative
// paths. When one file is rejected, files already stored for this request
// are cleaned up and nothing is kept.
func (s *PhotoService) StorePhotos(files []UploadedFile) ([]string, error) {
	var paths []string
	for _, f := range files {
		path, err := s.storage.Store(f.Reader, f.Filename, f.Size)
		if err != nil {
			s.storage.Cleanup(paths)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
