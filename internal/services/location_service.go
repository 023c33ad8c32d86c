package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
)

// LocationService handles placement of photos into albums
type LocationService struct {
	locationRepo repository.LocationRepo
	albumRepo    repository.AlbumRepo
	photoRepo    repository.PhotoRepo
}

// NewLocationService creates a new LocationService
func NewLocationService(
	locationRepo repository.LocationRepo,
	albumRepo repository.AlbumRepo,
	photoRepo repository.PhotoRepo,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		albumRepo:    albumRepo,
		photoRepo:    photoRepo,
	}
}

// LocationsByAlbum lists the photo ids placed in an album
func (s *LocationService) LocationsByAlbum(ctx context.Context, albumID int64) (*models.AlbumLocationsResponse, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	if album == nil {
		return nil, models.ErrAlbumNotFound
	}

	locations, err := s.locationRepo.GetByAlbumID(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	photoIDs := make([]int64, 0, len(locations))
	for _, loc := range locations {
		photoIDs = append(photoIDs, loc.PhotoID)
	}

	return &models.AlbumLocationsResponse{AlbumID: albumID, PhotoIDs: photoIDs}, nil
}

// LocationsByPhoto lists the album ids a photo is placed in
func (s *LocationService) LocationsByPhoto(ctx context.Context, photoID int64) (*models.PhotoLocationsResponse, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if photo == nil {
		return nil, models.ErrPhotoNotFound
	}

	locations, err := s.locationRepo.GetByPhotoID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	albumIDs := make([]int64, 0, len(locations))
	for _, loc := range locations {
		albumIDs = append(albumIDs, loc.AlbumID)
	}

	return &models.PhotoLocationsResponse{PhotoID: photoID, AlbumIDs: albumIDs}, nil
}

// CreateLocation places a photo into an album. Both must exist, and a
// duplicate (albumId, photoId) pair is a conflict, never an upsert.
func (s *LocationService) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	album, err := s.albumRepo.GetByID(ctx, req.AlbumID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify album: %w", err)
	}
	if album == nil {
		return nil, models.ValidationError{Message: models.ErrAlbumNotFound.Message}
	}

	photo, err := s.photoRepo.GetByID(ctx, req.PhotoID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify photo: %w", err)
	}
	if photo == nil {
		return nil, models.ValidationError{Message: models.ErrPhotoNotFound.Message}
	}

	existing, err := s.locationRepo.GetByAlbumAndPhoto(ctx, req.AlbumID, req.PhotoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check location: %w", err)
	}
	if existing != nil {
		return nil, models.ErrLocationExists
	}

	location := &models.Location{AlbumID: req.AlbumID, PhotoID: req.PhotoID}
	if err := s.locationRepo.Add(ctx, location); err != nil {
		// A concurrent insert can win between the pre-check and here
		if errors.Is(err, models.ErrLocationExists) {
			return nil, models.ErrLocationExists
		}
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}

// DeleteLocation removes a photo from an album by (albumId, photoId) pair
func (s *LocationService) DeleteLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.GetByAlbumAndPhoto(ctx, req.AlbumID, req.PhotoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if location == nil {
		return nil, models.ErrLocationNotFound
	}

	deleted, err := s.locationRepo.Delete(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete location: %w", err)
	}
	if !deleted {
		return nil, models.ErrLocationNotFound
	}

	return location, nil
}
