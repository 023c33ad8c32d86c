package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoalbum/server/internal/models"
)

func TestAlbumRepositoryPagination(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAlbumRepository(db)

	for i := 0; i < 25; i++ {
		createAlbum(t, db, fmt.Sprintf("album-%02d", i), nil, nil)
	}

	t.Run("defaults when perPage absent", func(t *testing.T) {
		albums, err := repo.GetMany(ctx, 0, 0, nil)
		require.NoError(t, err)
		require.Len(t, albums, AlbumsPerPageDefault)
		assert.Equal(t, "album-00", albums[0].Name)
	})

	t.Run("second page in insertion order", func(t *testing.T) {
		albums, err := repo.GetMany(ctx, 10, 1, nil)
		require.NoError(t, err)
		require.Len(t, albums, 10)
		assert.Equal(t, "album-10", albums[0].Name)
		assert.Equal(t, "album-19", albums[9].Name)
	})

	t.Run("last partial page", func(t *testing.T) {
		albums, err := repo.GetMany(ctx, 10, 2, nil)
		require.NoError(t, err)
		assert.Len(t, albums, 5)
	})

	t.Run("page beyond the end is empty, not an error", func(t *testing.T) {
		albums, err := repo.GetMany(ctx, 10, 99, nil)
		require.NoError(t, err)
		assert.Empty(t, albums)
	})

	t.Run("page ignored without perPage", func(t *testing.T) {
		albums, err := repo.GetMany(ctx, 0, 2, nil)
		require.NoError(t, err)
		require.Len(t, albums, AlbumsPerPageDefault)
		assert.Equal(t, "album-00", albums[0].Name)
	})

	t.Run("count ignores pagination", func(t *testing.T) {
		count, err := repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 25, count)
	})
}

func TestAlbumRepositoryCollectionFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAlbumRepository(db)

	collection := createCollection(t, db, "grouped")
	createAlbum(t, db, "inside", nil, &collection.ID)
	createAlbum(t, db, "loose", nil, nil)

	filter := &models.AlbumFilter{CollectionID: &collection.ID}

	albums, err := repo.GetMany(ctx, 0, 0, filter)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "inside", albums[0].Name)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAlbumRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAlbumRepository(db)

	t.Run("overwrites and clears nullable fields", func(t *testing.T) {
		photo := createPhoto(t, db, "cover.jpg")
		album := createAlbum(t, db, "before", &photo.ID, nil)

		album.Name = "after"
		album.CoverID = nil
		require.NoError(t, repo.Update(ctx, album))

		stored, err := repo.GetByID(ctx, album.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "after", stored.Name)
		assert.Nil(t, stored.CoverID)
	})

	t.Run("missing album", func(t *testing.T) {
		err := repo.Update(ctx, &models.Album{ID: 9999, Name: "ghost"})
		assert.ErrorIs(t, err, models.ErrAlbumNotFound)
	})
}
