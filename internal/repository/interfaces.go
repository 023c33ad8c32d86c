package repository

import (
	"context"

	"github.com/photoalbum/server/internal/models"
)

// CollectionRepo defines the interface for collection persistence operations
type CollectionRepo interface {
	GetAll(ctx context.Context) ([]*models.Collection, error)
	GetByID(ctx context.Context, id int64) (*models.Collection, error)
	Add(ctx context.Context, collection *models.Collection) error
	Update(ctx context.Context, collection *models.Collection) error
}

// AlbumRepo defines the interface for album persistence operations
type AlbumRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Album, error)
	GetMany(ctx context.Context, perPage, page int, filter *models.AlbumFilter) ([]*models.Album, error)
	Count(ctx context.Context, filter *models.AlbumFilter) (int, error)
	Add(ctx context.Context, album *models.Album) error
	Update(ctx context.Context, album *models.Album) error
}

// PhotoRepo defines the interface for photo persistence operations
type PhotoRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	GetMany(ctx context.Context, perPage, page int, filter *models.PhotoFilter) ([]*models.Photo, error)
	Count(ctx context.Context, filter *models.PhotoFilter) (int, error)
	Add(ctx context.Context, photo *models.Photo) error
	Update(ctx context.Context, photo *models.Photo) error
}

// LocationRepo defines the interface for location persistence operations
type LocationRepo interface {
	GetByAlbumID(ctx context.Context, albumID int64) ([]*models.Location, error)
	GetByPhotoID(ctx context.Context, photoID int64) ([]*models.Location, error)
	GetByAlbumAndPhoto(ctx context.Context, albumID, photoID int64) (*models.Location, error)
	Add(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CascadeRepo executes the multi-step deletions. Every method runs its
// reads and mutations inside one storage transaction; on failure nothing is
// applied. Deletion of albums, collections and photos goes through here,
// never through single-row repository deletes.
type CascadeRepo interface {
	DeleteAlbum(ctx context.Context, id int64) (*models.Album, []string, error)
	DeleteCollection(ctx context.Context, id int64) (*models.Collection, []string, error)
	DeletePhoto(ctx context.Context, id int64) (*models.Photo, error)
}
