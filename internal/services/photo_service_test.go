package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
)

type serviceHarness struct {
	db       *sql.DB
	storage  *PhotoStorageService
	photos   *PhotoService
	albums   *AlbumService
	location *LocationService
}

func newServiceHarness(t *testing.T) *serviceHarness {
	t.Helper()

	db, err := repository.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storage, err := NewPhotoStorageService(t.TempDir(), nil, 1)
	require.NoError(t, err)

	collectionRepo := repository.NewCollectionRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	cascadeRepo, err := repository.NewCascadeRepository(db)
	require.NoError(t, err)

	return &serviceHarness{
		db:       db,
		storage:  storage,
		photos:   NewPhotoService(photoRepo, cascadeRepo, storage),
		albums:   NewAlbumService(albumRepo, collectionRepo, photoRepo, cascadeRepo, storage),
		location: NewLocationService(locationRepo, albumRepo, photoRepo),
	}
}

func (h *serviceHarness) storeFile(t *testing.T) string {
	t.Helper()

	path, err := h.storage.Store(strings.NewReader("fake image"), "a.jpg", 10)
	require.NoError(t, err)
	return path
}

func TestPhotoServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a photo for an uploaded file", func(t *testing.T) {
		h := newServiceHarness(t)
		path := h.storeFile(t)

		photo, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{Path: path})
		require.NoError(t, err)
		assert.NotZero(t, photo.ID)
		require.NotNil(t, photo.Path)
		assert.Equal(t, path, *photo.Path)
		assert.False(t, photo.UploadedAt.IsZero())
	})

	t.Run("rejects a path with no file behind it", func(t *testing.T) {
		h := newServiceHarness(t)

		_, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{Path: "nothing-here.jpg"})
		assert.ErrorIs(t, err, models.ErrInvalidPath)
	})
}

func TestPhotoServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unmentioned fields", func(t *testing.T) {
		h := newServiceHarness(t)
		path := h.storeFile(t)

		photo, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{
			Path:      path,
			FromGroup: strPtr("family"),
		})
		require.NoError(t, err)

		updated, err := h.photos.UpdatePhoto(ctx, photo.ID, &models.UpdatePhotoRequest{
			Description: models.Some("beach day"),
		})
		require.NoError(t, err)
		assert.Equal(t, "beach day", *updated.Description)
		assert.Equal(t, "family", *updated.FromGroup)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		h := newServiceHarness(t)
		path := h.storeFile(t)

		photo, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{Path: path})
		require.NoError(t, err)

		_, err = h.photos.UpdatePhoto(ctx, photo.ID, &models.UpdatePhotoRequest{})
		assert.ErrorIs(t, err, models.ErrEmptyPayload)
	})

	t.Run("missing photo", func(t *testing.T) {
		h := newServiceHarness(t)

		_, err := h.photos.UpdatePhoto(ctx, 9999, &models.UpdatePhotoRequest{
			Description: models.Some("x"),
		})
		assert.ErrorIs(t, err, models.ErrPhotoNotFound)
	})
}

func TestPhotoServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the file after the row", func(t *testing.T) {
		h := newServiceHarness(t)
		path := h.storeFile(t)

		photo, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{Path: path})
		require.NoError(t, err)

		_, err = h.photos.DeletePhoto(ctx, photo.ID)
		require.NoError(t, err)

		_, err = h.photos.GetPhoto(ctx, photo.ID)
		assert.ErrorIs(t, err, models.ErrPhotoNotFound)

		// File cleanup runs after the delete returns
		require.Eventually(t, func() bool {
			return !h.storage.Exists(path)
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("missing photo", func(t *testing.T) {
		h := newServiceHarness(t)

		_, err := h.photos.DeletePhoto(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrPhotoNotFound)
	})
}

func TestPhotoServiceStoreBatch(t *testing.T) {
	t.Run("stores every file", func(t *testing.T) {
		h := newServiceHarness(t)

		paths, err := h.photos.StorePhotos([]UploadedFile{
			{Reader: strings.NewReader("a"), Filename: "a.jpg", Size: 1},
			{Reader: strings.NewReader("b"), Filename: "b.png", Size: 1},
		})
		require.NoError(t, err)
		require.Len(t, paths, 2)
		for _, path := range paths {
			assert.True(t, h.storage.Exists(path))
		}
	})

	t.Run("one bad file rolls back the batch", func(t *testing.T) {
		h := newServiceHarness(t)

		paths, err := h.photos.StorePhotos([]UploadedFile{
			{Reader: strings.NewReader("a"), Filename: "a.jpg", Size: 1},
			{Reader: strings.NewReader("b"), Filename: "b.exe", Size: 1},
		})
		assert.ErrorIs(t, err, models.ErrInvalidExtension)
		assert.Nil(t, paths)
	})
}

func strPtr(s string) *string { return &s }
