package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoalbum/server/internal/models"
)

func (h *serviceHarness) createAlbumAndPhoto(t *testing.T) (*models.Album, *models.Photo) {
	t.Helper()
	ctx := context.Background()

	album, err := h.albums.CreateAlbum(ctx, &models.CreateAlbumRequest{Name: "album"})
	require.NoError(t, err)

	path := h.storeFile(t)
	photo, err := h.photos.CreatePhoto(ctx, &models.CreatePhotoRequest{Path: path})
	require.NoError(t, err)

	return album, photo
}

func TestLocationServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("places a photo into an album", func(t *testing.T) {
		h := newServiceHarness(t)
		album, photo := h.createAlbumAndPhoto(t)

		location, err := h.location.CreateLocation(ctx, &models.LocationRequest{
			AlbumID: album.ID,
			PhotoID: photo.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, location.ID)

		byAlbum, err := h.location.LocationsByAlbum(ctx, album.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{photo.ID}, byAlbum.PhotoIDs)

		byPhoto, err := h.location.LocationsByPhoto(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{album.ID}, byPhoto.AlbumIDs)
	})

	t.Run("duplicate pair is a conflict", func(t *testing.T) {
		h := newServiceHarness(t)
		album, photo := h.createAlbumAndPhoto(t)

		req := &models.LocationRequest{AlbumID: album.ID, PhotoID: photo.ID}
		_, err := h.location.CreateLocation(ctx, req)
		require.NoError(t, err)

		_, err = h.location.CreateLocation(ctx, req)
		var conflict models.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("missing album is a validation error, not a 404", func(t *testing.T) {
		h := newServiceHarness(t)
		_, photo := h.createAlbumAndPhoto(t)

		_, err := h.location.CreateLocation(ctx, &models.LocationRequest{
			AlbumID: 9999,
			PhotoID: photo.ID,
		})
		var validation models.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("ids must be positive", func(t *testing.T) {
		h := newServiceHarness(t)

		_, err := h.location.CreateLocation(ctx, &models.LocationRequest{AlbumID: 0, PhotoID: 1})
		var validation models.ValidationError
		assert.True(t, errors.As(err, &validation))
	})
}

func TestLocationServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a placement by pair", func(t *testing.T) {
		h := newServiceHarness(t)
		album, photo := h.createAlbumAndPhoto(t)

		req := &models.LocationRequest{AlbumID: album.ID, PhotoID: photo.ID}
		_, err := h.location.CreateLocation(ctx, req)
		require.NoError(t, err)

		deleted, err := h.location.DeleteLocation(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, album.ID, deleted.AlbumID)

		byAlbum, err := h.location.LocationsByAlbum(ctx, album.ID)
		require.NoError(t, err)
		assert.Empty(t, byAlbum.PhotoIDs)
	})

	t.Run("missing pair", func(t *testing.T) {
		h := newServiceHarness(t)
		album, photo := h.createAlbumAndPhoto(t)

		_, err := h.location.DeleteLocation(ctx, &models.LocationRequest{
			AlbumID: album.ID,
			PhotoID: photo.ID,
		})
		assert.ErrorIs(t, err, models.ErrLocationNotFound)
	})
}

func TestLocationServiceListing(t *testing.T) {
	ctx := context.Background()

	t.Run("listing a missing parent is not found", func(t *testing.T) {
		h := newServiceHarness(t)

		_, err := h.location.LocationsByAlbum(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrAlbumNotFound)

		_, err = h.location.LocationsByPhoto(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrPhotoNotFound)
	})

	t.Run("empty album lists no photo ids", func(t *testing.T) {
		h := newServiceHarness(t)
		album, _ := h.createAlbumAndPhoto(t)

		byAlbum, err := h.location.LocationsByAlbum(ctx, album.ID)
		require.NoError(t, err)
		assert.NotNil(t, byAlbum.PhotoIDs)
		assert.Empty(t, byAlbum.PhotoIDs)
	})
}
