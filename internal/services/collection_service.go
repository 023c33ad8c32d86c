package services

import (
	"context"
	"fmt"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
)

// CollectionService handles collection business logic
type CollectionService struct {
	collectionRepo repository.CollectionRepo
	cascadeRepo    repository.CascadeRepo
	storage        *PhotoStorageService
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(
	collectionRepo repository.CollectionRepo,
	cascadeRepo repository.CascadeRepo,
	storage *PhotoStorageService,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		cascadeRepo:    cascadeRepo,
		storage:        storage,
	}
}

// ListCollections returns all collections
func (s *CollectionService) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	collections, err := s.collectionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// GetCollection retrieves a collection by ID
func (s *CollectionService) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return nil, models.ErrCollectionNotFound
	}
	return collection, nil
}

// CreateCollection creates a new collection
func (s *CollectionService) CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	collection := &models.Collection{Name: req.Name}
	if err := s.collectionRepo.Add(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return collection, nil
}

// UpdateCollection updates a collection
func (s *CollectionService) UpdateCollection(ctx context.Context, id int64, req *models.UpdateCollectionRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return nil, models.ErrCollectionNotFound
	}

	collection.ApplyUpdate(req)

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return collection, nil
}

// DeleteCollection deletes a collection with its albums, their locations
// and any orphaned photos. Files of deleted photos are removed after the
// transaction commits, without delaying the response.
func (s *CollectionService) DeleteCollection(ctx context.Context, id int64) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	if collection == nil {
		return nil, models.ErrCollectionNotFound
	}

	deleted, paths, err := s.cascadeRepo.DeleteCollection(ctx, id)
	if err != nil {
		return nil, err
	}

	go s.storage.Cleanup(paths)

	return deleted, nil
}
