package repository

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteDB creates and initializes a SQLite database
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	// Create tables
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	schema := `
	-- Collections table
	CREATE TABLE IF NOT EXISTS collections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	-- Photos table
	CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT,
		received_at DATETIME,
		official_id TEXT,
		from_group TEXT,
		from_person TEXT,
		description TEXT,
		uploaded_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_photos_official_id ON photos(official_id);

	-- Albums table (cover is a weak reference, nulled when the photo goes away)
	CREATE TABLE IF NOT EXISTS albums (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		cover_id INTEGER REFERENCES photos(id),
		collection_id INTEGER REFERENCES collections(id)
	);

	CREATE INDEX IF NOT EXISTS idx_albums_collection_id ON albums(collection_id);
	CREATE INDEX IF NOT EXISTS idx_albums_cover_id ON albums(cover_id);

	-- Locations (photo/album junction table)
	CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		album_id INTEGER NOT NULL REFERENCES albums(id),
		photo_id INTEGER NOT NULL REFERENCES photos(id),
		UNIQUE(album_id, photo_id)
	);

	CREATE INDEX IF NOT EXISTS idx_locations_album_id ON locations(album_id);
	CREATE INDEX IF NOT EXISTS idx_locations_photo_id ON locations(photo_id);
	`

	_, err := db.Exec(schema)
	return err
}
