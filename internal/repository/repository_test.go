package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/photoalbum/server/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func createCollection(t *testing.T, db *sql.DB, name string) *models.Collection {
	t.Helper()

	collection := &models.Collection{Name: name}
	require.NoError(t, NewCollectionRepository(db).Add(context.Background(), collection))
	return collection
}

func createAlbum(t *testing.T, db *sql.DB, name string, coverID, collectionID *int64) *models.Album {
	t.Helper()

	album := &models.Album{Name: name, CoverID: coverID, CollectionID: collectionID}
	require.NoError(t, NewAlbumRepository(db).Add(context.Background(), album))
	return album
}

func createPhoto(t *testing.T, db *sql.DB, path string) *models.Photo {
	t.Helper()

	photo := &models.Photo{UploadedAt: time.Now().UTC()}
	if path != "" {
		photo.Path = &path
	}
	require.NoError(t, NewPhotoRepository(db).Add(context.Background(), photo))
	return photo
}

func createLocation(t *testing.T, db *sql.DB, albumID, photoID int64) *models.Location {
	t.Helper()

	location := &models.Location{AlbumID: albumID, PhotoID: photoID}
	require.NoError(t, NewLocationRepository(db).Add(context.Background(), location))
	return location
}

func photoExists(t *testing.T, db *sql.DB, id int64) bool {
	t.Helper()

	photo, err := NewPhotoRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	return photo != nil
}
