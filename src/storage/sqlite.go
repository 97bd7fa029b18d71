package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"market-charts/src/logger"
	"market-charts/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type SQLiteJournal struct {
	sqlJournal
	Path string
}

// -----------------------------------------------------------------------------

func NewSQLiteJournal(cfg *models.MConfig, log *logger.Logger) *SQLiteJournal {
	return &SQLiteJournal{
		sqlJournal: sqlJournal{
			Logger:      log,
			backend:     "sqlite",
			table:       journalTable,
			placeholder: questionMark,
		},
		Path: cfg.Storage.DBPath,
	}
}

// -----------------------------------------------------------------------------

func (d *SQLiteJournal) Initialize() error {
	if dir := filepath.Dir(d.Path); !strings.HasPrefix(d.Path, ":memory:") && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", d.Path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}

	// database/sql may open several connections; an in-memory database is per connection
	db.SetMaxOpenConns(1)
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil && d.Logger != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil && d.Logger != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *SQLiteJournal) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			requested_at INTEGER NOT NULL,
			endpoint TEXT NOT NULL,
			symbols TEXT,
			range_token TEXT,
			status INTEGER,
			succeeded INTEGER,
			failed INTEGER,
			duration_ms INTEGER
		);
	`, d.table)
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s: %w", d.table, err)
	}

	idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_requested_at ON %s (requested_at)", d.table, d.table)
	if _, err := d.DB.Exec(idx); err != nil {
		return fmt.Errorf("failed to index %s: %w", d.table, err)
	}
	return nil
}
