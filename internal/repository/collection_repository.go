package repository

import (
	"context"
	"database/sql"

	"github.com/photoalbum/server/internal/models"
)

// CollectionRepository handles collection persistence for PostgreSQL/SQLite
type CollectionRepository struct {
	db *sql.DB
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *sql.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// GetAll retrieves all collections in insertion order
func (r *CollectionRepository) GetAll(ctx context.Context) ([]*models.Collection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM collections ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		collections = append(collections, &c)
	}

	if collections == nil {
		collections = []*models.Collection{}
	}

	return collections, rows.Err()
}

// GetByID retrieves a collection by its ID; a missing row yields (nil, nil)
func (r *CollectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	var c models.Collection
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM collections WHERE id = $1`, id).
		Scan(&c.ID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Add inserts a new collection and fills in the generated ID
func (r *CollectionRepository) Add(ctx context.Context, collection *models.Collection) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO collections (name) VALUES ($1) RETURNING id`,
		collection.Name,
	).Scan(&collection.ID)
}

// Update overwrites a stored collection
func (r *CollectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE collections SET name = $1 WHERE id = $2`,
		collection.Name, collection.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCollectionNotFound
	}

	return nil
}
