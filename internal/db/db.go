package db

import (
	"database/sql"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Waddenn/filmoria/internal/config"
)

const FileName = "filmoria.db"

// Open opens the database in the cache directory, or at path when it is set.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		cacheDir, err := config.CacheDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(cacheDir, FileName)
	}
	return OpenPath(path)
}

// OpenPath opens path (":memory:" is accepted) and ensures the schema.
func OpenPath(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func initSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		return err
	}

	return migrateSchema(db)
}

func migrateSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Databases created before updated_at was tracked.
	hasUpdatedAt, err := columnExists(tx, "kv", "updated_at")
	if err != nil {
		return err
	}
	if !hasUpdatedAt {
		if _, err := tx.Exec(`ALTER TABLE kv ADD COLUMN updated_at INTEGER NOT NULL DEFAULT 0;`); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func columnExists(tx *sql.Tx, tableName, columnName string) (bool, error) {
	rows, err := tx.Query(`PRAGMA table_info(` + tableName + `);`)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var (
		cid       int
		name      string
		colType   string
		notnull   int
		dfltValue *string
		pk        int
	)
	for rows.Next() {
		if err := rows.Scan(&cid, &name, &colType, &notnull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == columnName {
			return true, nil
		}
	}
	return false, rows.Err()
}
