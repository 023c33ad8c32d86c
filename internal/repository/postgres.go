package repository

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// NewPostgresDB creates and initializes a PostgreSQL database connection
func NewPostgresDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// Create tables
	if err := createPostgresTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createPostgresTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS photos (
		id BIGSERIAL PRIMARY KEY,
		path TEXT,
		received_at TIMESTAMP,
		official_id TEXT,
		from_group TEXT,
		from_person TEXT,
		description TEXT,
		uploaded_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_photos_official_id ON photos(official_id);

	CREATE TABLE IF NOT EXISTS albums (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		cover_id BIGINT REFERENCES photos(id),
		collection_id BIGINT REFERENCES collections(id)
	);

	CREATE INDEX IF NOT EXISTS idx_albums_collection_id ON albums(collection_id);
	CREATE INDEX IF NOT EXISTS idx_albums_cover_id ON albums(cover_id);

	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		album_id BIGINT NOT NULL REFERENCES albums(id),
		photo_id BIGINT NOT NULL REFERENCES photos(id),
		UNIQUE(album_id, photo_id)
	);

	CREATE INDEX IF NOT EXISTS idx_locations_album_id ON locations(album_id);
	CREATE INDEX IF NOT EXISTS idx_locations_photo_id ON locations(photo_id);
	`

	_, err := db.Exec(schema)
	return err
}
