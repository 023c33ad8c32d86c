package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/photoalbum/server/internal/models"
)

// LocationRepository handles location persistence for PostgreSQL/SQLite
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetByAlbumID retrieves all locations for an album
func (r *LocationRepository) GetByAlbumID(ctx context.Context, albumID int64) ([]*models.Location, error) {
	return r.getMany(ctx,
		`SELECT id, album_id, photo_id FROM locations WHERE album_id = $1 ORDER BY id ASC`, albumID)
}

// GetByPhotoID retrieves all locations for a photo
func (r *LocationRepository) GetByPhotoID(ctx context.Context, photoID int64) ([]*models.Location, error) {
	return r.getMany(ctx,
		`SELECT id, album_id, photo_id FROM locations WHERE photo_id = $1 ORDER BY id ASC`, photoID)
}

// GetByAlbumAndPhoto retrieves the location for an (album, photo) pair; a
// missing row yields (nil, nil)
func (r *LocationRepository) GetByAlbumAndPhoto(ctx context.Context, albumID, photoID int64) (*models.Location, error) {
	var loc models.Location
	err := r.db.QueryRowContext(ctx,
		`SELECT id, album_id, photo_id FROM locations WHERE album_id = $1 AND photo_id = $2`,
		albumID, photoID,
	).Scan(&loc.ID, &loc.AlbumID, &loc.PhotoID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

// Add inserts a new location and fills in the generated ID. The UNIQUE
// (album_id, photo_id) constraint backs the caller's duplicate pre-check;
// a concurrent insert slipping past that pre-check still surfaces as the
// conflict sentinel, not a raw driver error.
func (r *LocationRepository) Add(ctx context.Context, location *models.Location) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO locations (album_id, photo_id) VALUES ($1, $2) RETURNING id`,
		location.AlbumID, location.PhotoID,
	).Scan(&location.ID)

	if err != nil && isUniqueViolation(err) {
		return models.ErrLocationExists
	}

	return err
}

// isUniqueViolation recognizes the unique-constraint error of either backend
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}

// Delete removes a location by ID
func (r *LocationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *LocationRepository) getMany(ctx context.Context, query string, arg int64) ([]*models.Location, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.AlbumID, &loc.PhotoID); err != nil {
			return nil, err
		}
		locations = append(locations, &loc)
	}

	if locations == nil {
		locations = []*models.Location{}
	}

	return locations, rows.Err()
}
