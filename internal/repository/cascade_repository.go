package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/observability"
)

// CascadeRepository executes the cascading deletions for albums,
// collections and photos. Each operation reads the dependency graph and
// applies every mutation inside a single transaction: the orphan
// computation cannot race with concurrent location inserts, and a failure
// at any step leaves no partial cascade behind. File paths of doomed photos
// are collected before their rows disappear and handed back to the caller
// for post-commit cleanup.
type CascadeRepository struct {
	db      *sql.DB
	metrics *observability.DatabaseMetrics
	cascade *observability.CascadeMetrics
}

// NewCascadeRepository creates a new CascadeRepository
func NewCascadeRepository(db *sql.DB) (*CascadeRepository, error) {
	metrics, err := observability.NewDatabaseMetrics()
	if err != nil {
		return nil, err
	}

	cascade, err := observability.NewCascadeMetrics()
	if err != nil {
		return nil, err
	}

	return &CascadeRepository{db: db, metrics: metrics, cascade: cascade}, nil
}

// DeleteAlbum deletes an album, its locations and any photos that were
// located only in this album. Covers referencing a doomed photo are nulled
// first. Returns the deleted album and the file paths of deleted photos.
func (r *CascadeRepository) DeleteAlbum(ctx context.Context, id int64) (*models.Album, []string, error) {
	ctx, span := observability.StartDBSpan(ctx, "cascade_delete", "albums")
	defer span.End()

	start := time.Now()
	album, orphans, paths, err := r.deleteAlbum(ctx, id)
	r.metrics.RecordQuery(ctx, "cascade_delete", "albums", time.Since(start), err)
	r.cascade.RecordCascade(ctx, "album", orphans, err == nil)

	if err != nil {
		observability.RecordError(span, err)
		return nil, nil, err
	}

	observability.SetSuccess(span)
	return album, paths, nil
}

func (r *CascadeRepository) deleteAlbum(ctx context.Context, id int64) (*models.Album, int, []string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, nil, err
	}
	defer tx.Rollback()

	album, err := scanAlbum(tx.QueryRowContext(ctx,
		`SELECT id, name, cover_id, collection_id FROM albums WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, 0, nil, models.ErrAlbumNotFound
	}
	if err != nil {
		return nil, 0, nil, err
	}

	orphans, err := orphanedPhotoIDs(ctx, tx, []int64{id})
	if err != nil {
		return nil, 0, nil, err
	}

	paths, err := photoPaths(ctx, tx, orphans)
	if err != nil {
		return nil, 0, nil, err
	}

	// Covers must be nulled before the photos go away
	if err := nullCovers(ctx, tx, orphans); err != nil {
		return nil, 0, nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations WHERE album_id = $1`, id); err != nil {
		return nil, 0, nil, err
	}

	if err := deletePhotos(ctx, tx, orphans); err != nil {
		return nil, 0, nil, err
	}

	if err := deleteRow(ctx, tx, `DELETE FROM albums WHERE id = $1`, id, models.ErrAlbumNotFound); err != nil {
		return nil, 0, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, nil, err
	}

	return album, len(orphans), paths, nil
}

// DeleteCollection deletes a collection, all albums under it, their
// locations and any photos left orphaned. A photo shared with an album
// outside the collection survives. Covers referencing a doomed photo are
// nulled on every album, including albums outside the collection.
func (r *CascadeRepository) DeleteCollection(ctx context.Context, id int64) (*models.Collection, []string, error) {
	ctx, span := observability.StartDBSpan(ctx, "cascade_delete", "collections")
	defer span.End()

	start := time.Now()
	collection, orphans, paths, err := r.deleteCollection(ctx, id)
	r.metrics.RecordQuery(ctx, "cascade_delete", "collections", time.Since(start), err)
	r.cascade.RecordCascade(ctx, "collection", orphans, err == nil)

	if err != nil {
		observability.RecordError(span, err)
		return nil, nil, err
	}

	observability.SetSuccess(span)
	return collection, paths, nil
}

func (r *CascadeRepository) deleteCollection(ctx context.Context, id int64) (*models.Collection, int, []string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, nil, err
	}
	defer tx.Rollback()

	var collection models.Collection
	err = tx.QueryRowContext(ctx,
		`SELECT id, name FROM collections WHERE id = $1`, id).
		Scan(&collection.ID, &collection.Name)
	if err == sql.ErrNoRows {
		return nil, 0, nil, models.ErrCollectionNotFound
	}
	if err != nil {
		return nil, 0, nil, err
	}

	albumIDs, err := queryIDs(ctx, tx, `SELECT id FROM albums WHERE collection_id = $1`, id)
	if err != nil {
		return nil, 0, nil, err
	}

	orphans, err := orphanedPhotoIDs(ctx, tx, albumIDs)
	if err != nil {
		return nil, 0, nil, err
	}

	paths, err := photoPaths(ctx, tx, orphans)
	if err != nil {
		return nil, 0, nil, err
	}

	if err := nullCovers(ctx, tx, orphans); err != nil {
		return nil, 0, nil, err
	}

	if len(albumIDs) > 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM locations WHERE album_id IN (`+placeholders(1, len(albumIDs))+`)`,
			int64Args(albumIDs)...)
		if err != nil {
			return nil, 0, nil, err
		}
	}

	if err := deletePhotos(ctx, tx, orphans); err != nil {
		return nil, 0, nil, err
	}

	if len(albumIDs) > 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM albums WHERE id IN (`+placeholders(1, len(albumIDs))+`)`,
			int64Args(albumIDs)...)
		if err != nil {
			return nil, 0, nil, err
		}
	}

	if err := deleteRow(ctx, tx, `DELETE FROM collections WHERE id = $1`, id, models.ErrCollectionNotFound); err != nil {
		return nil, 0, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, nil, err
	}

	return &collection, len(orphans), paths, nil
}

// DeletePhoto deletes a photo, its locations and nulls every album cover
// referencing it. The photo's file path, if any, is on the returned photo;
// cleanup of the file itself happens after commit, at the caller.
func (r *CascadeRepository) DeletePhoto(ctx context.Context, id int64) (*models.Photo, error) {
	ctx, span := observability.StartDBSpan(ctx, "cascade_delete", "photos")
	defer span.End()

	start := time.Now()
	photo, err := r.deletePhoto(ctx, id)
	r.metrics.RecordQuery(ctx, "cascade_delete", "photos", time.Since(start), err)
	r.cascade.RecordCascade(ctx, "photo", 0, err == nil)

	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	observability.SetSuccess(span)
	return photo, nil
}

func (r *CascadeRepository) deletePhoto(ctx context.Context, id int64) (*models.Photo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	photo, err := scanPhoto(tx.QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE albums SET cover_id = NULL WHERE cover_id = $1`, id); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations WHERE photo_id = $1`, id); err != nil {
		return nil, err
	}

	if err := deleteRow(ctx, tx, `DELETE FROM photos WHERE id = $1`, id, models.ErrPhotoNotFound); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return photo, nil
}

// orphanedPhotoIDs computes which photos lose their last location when the
// given albums are deleted: photos located in a doomed album, minus photos
// that also have a location in a surviving album. Runs on the transaction
// so the answer stays consistent with the mutations that follow.
func orphanedPhotoIDs(ctx context.Context, tx *sql.Tx, albumIDs []int64) ([]int64, error) {
	if len(albumIDs) == 0 {
		return nil, nil
	}

	located, err := queryIDs(ctx, tx,
		`SELECT DISTINCT photo_id FROM locations WHERE album_id IN (`+placeholders(1, len(albumIDs))+`)`,
		int64Args(albumIDs)...)
	if err != nil {
		return nil, err
	}
	if len(located) == 0 {
		return nil, nil
	}

	args := int64Args(albumIDs)
	args = append(args, int64Args(located)...)
	stillReferenced, err := queryIDs(ctx, tx,
		`SELECT DISTINCT photo_id FROM locations
		 WHERE album_id NOT IN (`+placeholders(1, len(albumIDs))+`)
		   AND photo_id IN (`+placeholders(len(albumIDs)+1, len(located))+`)`,
		args...)
	if err != nil {
		return nil, err
	}

	surviving := make(map[int64]bool, len(stillReferenced))
	for _, photoID := range stillReferenced {
		surviving[photoID] = true
	}

	var orphans []int64
	for _, photoID := range located {
		if !surviving[photoID] {
			orphans = append(orphans, photoID)
		}
	}

	return orphans, nil
}

func photoPaths(ctx context.Context, tx *sql.Tx, photoIDs []int64) ([]string, error) {
	if len(photoIDs) == 0 {
		return nil, nil
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT path FROM photos WHERE path IS NOT NULL AND id IN (`+placeholders(1, len(photoIDs))+`)`,
		int64Args(photoIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}

func nullCovers(ctx context.Context, tx *sql.Tx, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return nil
	}

	_, err := tx.ExecContext(ctx,
		`UPDATE albums SET cover_id = NULL WHERE cover_id IN (`+placeholders(1, len(photoIDs))+`)`,
		int64Args(photoIDs)...)
	return err
}

func deletePhotos(ctx context.Context, tx *sql.Tx, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return nil
	}

	_, err := tx.ExecContext(ctx,
		`DELETE FROM photos WHERE id IN (`+placeholders(1, len(photoIDs))+`)`,
		int64Args(photoIDs)...)
	return err
}

// deleteRow deletes a single row and reports notFound when the row vanished
// between the pre-check read and the delete, which is how the loser of a
// concurrent delete race learns it lost.
func deleteRow(ctx context.Context, tx *sql.Tx, query string, id int64, notFound error) error {
	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func queryIDs(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ",")
}

func int64Args(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
