package storage

import (
	"database/sql"
	"fmt"

	"market-charts/src/logger"
	"market-charts/src/models"

	"github.com/go-sql-driver/mysql"
)

// -----------------------------------------------------------------------------

type MySQLJournal struct {
	sqlJournal
	DSN string
}

// -----------------------------------------------------------------------------

func NewMySQLJournal(cfg *models.MConfig, log *logger.Logger) *MySQLJournal {
	return &MySQLJournal{
		sqlJournal: sqlJournal{
			Logger:      log,
			backend:     "mysql",
			table:       journalTable,
			placeholder: questionMark,
		},
		DSN: cfg.Storage.DBConnectionString,
	}
}

// -----------------------------------------------------------------------------

func (d *MySQLJournal) Initialize() error {
	// Validate the DSN up front so a typo fails with a readable message.
	if _, err := mysql.ParseDSN(d.DSN); err != nil {
		return fmt.Errorf("invalid mysql connection string: %w", err)
	}

	db, err := sql.Open("mysql", d.DSN)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}
	d.DB = db

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id CHAR(36) PRIMARY KEY,
			requested_at BIGINT NOT NULL,
			endpoint VARCHAR(64) NOT NULL,
			symbols VARCHAR(255),
			range_token VARCHAR(8),
			status INT,
			succeeded INT,
			failed INT,
			duration_ms BIGINT,
			INDEX idx_requested_at (requested_at)
		)
	`, d.table)
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s: %w", d.table, err)
	}
	return nil
}
