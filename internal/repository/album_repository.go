package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/photoalbum/server/internal/models"
)

// Default page sizes for paginated queries. A zero or absent perPage falls
// back to the default, never to zero rows.
const (
	AlbumsPerPageDefault = 10
	PhotosPerPageDefault = 10
	StartPage            = 0
)

// AlbumRepository handles album persistence for PostgreSQL/SQLite
type AlbumRepository struct {
	db *sql.DB
}

// NewAlbumRepository creates a new AlbumRepository
func NewAlbumRepository(db *sql.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// GetByID retrieves an album by its ID; a missing row yields (nil, nil)
func (r *AlbumRepository) GetByID(ctx context.Context, id int64) (*models.Album, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, cover_id, collection_id FROM albums WHERE id = $1`, id)

	album, err := scanAlbum(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return album, nil
}

// GetMany retrieves albums with pagination and an optional filter, in
// insertion order. skip is page*perPage when both are positive, else 0;
// take falls back to AlbumsPerPageDefault when perPage is not positive.
func (r *AlbumRepository) GetMany(ctx context.Context, perPage, page int, filter *models.AlbumFilter) ([]*models.Album, error) {
	where, args := albumWhere(filter)

	take := perPage
	if take <= 0 {
		take = AlbumsPerPageDefault
	}
	skip := StartPage
	if perPage > 0 && page > 0 {
		skip = perPage * page
	}

	query := `SELECT id, name, cover_id, collection_id FROM albums` + where +
		fmt.Sprintf(` ORDER BY id ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, take, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*models.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	if albums == nil {
		albums = []*models.Album{}
	}

	return albums, rows.Err()
}

// Count returns the number of albums matching the filter
func (r *AlbumRepository) Count(ctx context.Context, filter *models.AlbumFilter) (int, error) {
	where, args := albumWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM albums`+where, args...).Scan(&count)
	return count, err
}

// Add inserts a new album and fills in the generated ID
func (r *AlbumRepository) Add(ctx context.Context, album *models.Album) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO albums (name, cover_id, collection_id) VALUES ($1, $2, $3) RETURNING id`,
		album.Name, album.CoverID, album.CollectionID,
	).Scan(&album.ID)
}

// Update overwrites a stored album
func (r *AlbumRepository) Update(ctx context.Context, album *models.Album) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE albums SET name = $1, cover_id = $2, collection_id = $3 WHERE id = $4`,
		album.Name, album.CoverID, album.CollectionID, album.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAlbumNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAlbum(s scanner) (*models.Album, error) {
	var album models.Album
	var coverID, collectionID sql.NullInt64

	if err := s.Scan(&album.ID, &album.Name, &coverID, &collectionID); err != nil {
		return nil, err
	}

	if coverID.Valid {
		album.CoverID = &coverID.Int64
	}
	if collectionID.Valid {
		album.CollectionID = &collectionID.Int64
	}

	return &album, nil
}

func albumWhere(filter *models.AlbumFilter) (string, []interface{}) {
	if filter == nil || filter.CollectionID == nil {
		return "", nil
	}
	return " WHERE collection_id = $1", []interface{}{*filter.CollectionID}
}
