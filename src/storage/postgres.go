package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"market-charts/src/logger"
	"market-charts/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

// PostgresJournal writes into a schema named after the running binary so that
// several deployments can share one database.
type PostgresJournal struct {
	sqlJournal
	DSN    string
	Schema string
}

// -----------------------------------------------------------------------------

func NewPostgresJournal(cfg *models.MConfig, log *logger.Logger) (*PostgresJournal, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable name: %w", err)
	}
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return newPostgresJournal(cfg.Storage.DBConnectionString, name, log), nil
}

func newPostgresJournal(dsn, schema string, log *logger.Logger) *PostgresJournal {
	return &PostgresJournal{
		sqlJournal: sqlJournal{
			Logger:      log,
			backend:     "postgres",
			table:       fmt.Sprintf(`"%s".%s`, schema, journalTable),
			placeholder: dollar,
		},
		DSN:    dsn,
		Schema: schema,
	}
}

// -----------------------------------------------------------------------------

func (d *PostgresJournal) Initialize() error {
	db, err := sql.Open("postgres", d.DSN)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}
	d.DB = db

	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			requested_at BIGINT NOT NULL,
			endpoint TEXT NOT NULL,
			symbols TEXT,
			range_token TEXT,
			status INTEGER,
			succeeded INTEGER,
			failed INTEGER,
			duration_ms BIGINT
		);
	`, d.table)
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s: %w", d.table, err)
	}

	idx := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_requested_at ON %s (requested_at)`, journalTable, d.table)
	if _, err := d.DB.Exec(idx); err != nil {
		return fmt.Errorf("failed to index %s: %w", d.table, err)
	}

	if d.Logger != nil {
		d.Logger.Info("Postgres journal ready in schema %s", d.Schema)
	}
	return nil
}
