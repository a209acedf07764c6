package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN keeps the dataset in memory for the lifetime of the process.
// The pool is pinned to one connection because every new SQLite memory
// connection starts out empty.
const memoryDSN = "file::memory:?_foreign_keys=on"

// Database is the session store of the loaded dataset.
type Database struct {
	DB *sql.DB
}

// Open creates an empty in-memory store with the dataset schema.
func Open(ctx context.Context) (*Database, error) {
	conn, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, wrapDatasetErr("open", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, wrapDatasetErr("ping", err)
	}
	d := &Database{DB: conn}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS series (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS years (
			year INTEGER PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS observations (
			year INTEGER NOT NULL,
			series_id INTEGER NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (year, series_id),
			FOREIGN KEY(year) REFERENCES years(year),
			FOREIGN KEY(series_id) REFERENCES series(id)
		);`,
		`CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return wrapDatasetErr("migrate", fmt.Errorf("%w: %s", err, query))
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
