package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/photoalbum/server/internal/models"
)

// PhotoRepository handles photo persistence for PostgreSQL/SQLite
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

const photoColumns = `id, path, received_at, official_id, from_group, from_person, description, uploaded_at`

// GetByID retrieves a photo by its ID; a missing row yields (nil, nil)
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1`, id)

	photo, err := scanPhoto(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return photo, nil
}

// GetMany retrieves photos with pagination and an optional equality filter,
// in insertion order. Pagination follows the same skip/take rules as albums.
func (r *PhotoRepository) GetMany(ctx context.Context, perPage, page int, filter *models.PhotoFilter) ([]*models.Photo, error) {
	where, args := photoWhere(filter)

	take := perPage
	if take <= 0 {
		take = PhotosPerPageDefault
	}
	skip := StartPage
	if perPage > 0 && page > 0 {
		skip = perPage * page
	}

	query := `SELECT ` + photoColumns + ` FROM photos` + where +
		fmt.Sprintf(` ORDER BY id ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, take, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*models.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	if photos == nil {
		photos = []*models.Photo{}
	}

	return photos, rows.Err()
}

// Count returns the number of photos matching the filter
func (r *PhotoRepository) Count(ctx context.Context, filter *models.PhotoFilter) (int, error) {
	where, args := photoWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`+where, args...).Scan(&count)
	return count, err
}

// Add inserts a new photo and fills in the generated ID
func (r *PhotoRepository) Add(ctx context.Context, photo *models.Photo) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO photos (path, received_at, official_id, from_group, from_person, description, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		photo.Path,
		nullTime(photo.ReceivedAt),
		photo.OfficialID,
		photo.FromGroup,
		photo.FromPerson,
		photo.Description,
		photo.UploadedAt,
	).Scan(&photo.ID)
}

// Update overwrites a stored photo
func (r *PhotoRepository) Update(ctx context.Context, photo *models.Photo) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE photos SET path = $1, received_at = $2, official_id = $3,
		 from_group = $4, from_person = $5, description = $6 WHERE id = $7`,
		photo.Path,
		nullTime(photo.ReceivedAt),
		photo.OfficialID,
		photo.FromGroup,
		photo.FromPerson,
		photo.Description,
		photo.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPhotoNotFound
	}

	return nil
}

func scanPhoto(s scanner) (*models.Photo, error) {
	var photo models.Photo
	var path, officialID, fromGroup, fromPerson, description sql.NullString
	var receivedAt sql.NullTime

	if err := s.Scan(
		&photo.ID,
		&path,
		&receivedAt,
		&officialID,
		&fromGroup,
		&fromPerson,
		&description,
		&photo.UploadedAt,
	); err != nil {
		return nil, err
	}

	if path.Valid {
		photo.Path = &path.String
	}
	if receivedAt.Valid {
		photo.ReceivedAt = &receivedAt.Time
	}
	if officialID.Valid {
		photo.OfficialID = &officialID.String
	}
	if fromGroup.Valid {
		photo.FromGroup = &fromGroup.String
	}
	if fromPerson.Valid {
		photo.FromPerson = &fromPerson.String
	}
	if description.Valid {
		photo.Description = &description.String
	}

	return &photo, nil
}

func photoWhere(filter *models.PhotoFilter) (string, []interface{}) {
	if filter == nil {
		return "", nil
	}

	var conds []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.ReceivedAt != nil {
		add("received_at", *filter.ReceivedAt)
	}
	if filter.OfficialID != nil {
		add("official_id", *filter.OfficialID)
	}
	if filter.FromGroup != nil {
		add("from_group", *filter.FromGroup)
	}
	if filter.FromPerson != nil {
		add("from_person", *filter.FromPerson)
	}
	if filter.Description != nil {
		add("description", *filter.Description)
	}

	if len(conds) == 0 {
		return "", nil
	}

	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}

	return where, args
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
