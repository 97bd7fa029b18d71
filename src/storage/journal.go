package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"

	"github.com/google/uuid"
)

const journalTable = "chart_requests"

// -----------------------------------------------------------------------------

// NewJournal builds the journal for storage.db_type. Initialize must be called before use.
func NewJournal(cfg *models.MConfig, log *logger.Logger) (interfaces.IJournal, error) {
	switch strings.ToLower(cfg.Storage.DBType) {
	case "", "none":
		return NoopJournal{}, nil
	case "sqlite":
		return NewSQLiteJournal(cfg, log), nil
	case "postgres":
		return NewPostgresJournal(cfg, log)
	case "mysql":
		return NewMySQLJournal(cfg, log), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Storage.DBType)
	}
}

// -----------------------------------------------------------------------------

// NoopJournal discards everything.
type NoopJournal struct{}

func (NoopJournal) Initialize() error {
	return nil
}

func (NoopJournal) Record(models.MJournalEntry) error {
	return nil
}

func (NoopJournal) CleanupOldData(int) (int64, error) {
	return 0, nil
}

func (NoopJournal) Recent(int) ([]models.MJournalEntry, error) {
	return nil, nil
}

func (NoopJournal) Backend() string {
	return "none"
}

func (NoopJournal) Close() error {
	return nil
}

// -----------------------------------------------------------------------------

// sqlJournal holds the statements shared by every SQL backend. table is the
// fully qualified name and placeholder renders the n-th bind parameter.
type sqlJournal struct {
	DB          *sql.DB
	Logger      *logger.Logger
	backend     string
	table       string
	placeholder func(n int) string
}

func questionMark(int) string { return "?" }

func dollar(n int) string { return fmt.Sprintf("$%d", n) }

// -----------------------------------------------------------------------------

func (j *sqlJournal) Backend() string {
	return j.backend
}

// -----------------------------------------------------------------------------

// Record inserts one entry. A missing ID or timestamp is filled in.
func (j *sqlJournal) Record(entry models.MJournalEntry) error {
	if j.DB == nil {
		return fmt.Errorf("%s journal is not initialized", j.backend)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RequestedAt.IsZero() {
		entry.RequestedAt = time.Now()
	}

	ph := make([]string, 9)
	for i := range ph {
		ph[i] = j.placeholder(i + 1)
	}
	query := fmt.Sprintf(`INSERT INTO %s
		(id, requested_at, endpoint, symbols, range_token, status, succeeded, failed, duration_ms)
		VALUES (%s)`, j.table, strings.Join(ph, ", "))

	_, err := j.DB.Exec(query,
		entry.ID,
		entry.RequestedAt.UTC().Unix(),
		entry.Endpoint,
		strings.Join(entry.Symbols, ","),
		entry.RangeToken,
		entry.Status,
		entry.Succeeded,
		entry.Failed,
		entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s request: %w", entry.Endpoint, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

// CleanupOldData removes entries older than retentionDays. Zero keeps everything.
func (j *sqlJournal) CleanupOldData(retentionDays int) (int64, error) {
	if j.DB == nil || retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()

	res, err := j.DB.Exec(fmt.Sprintf("DELETE FROM %s WHERE requested_at < %s", j.table, j.placeholder(1)), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up %s: %w", j.table, err)
	}
	n, _ := res.RowsAffected()
	if j.Logger != nil && n > 0 {
		j.Logger.Info("Removed %d journal entries older than %d days", n, retentionDays)
	}
	return n, nil
}

// -----------------------------------------------------------------------------

// Recent returns the latest entries, newest first.
func (j *sqlJournal) Recent(limit int) ([]models.MJournalEntry, error) {
	if j.DB == nil {
		return nil, fmt.Errorf("%s journal is not initialized", j.backend)
	}
	query := fmt.Sprintf(`SELECT id, requested_at, endpoint, symbols, range_token, status, succeeded, failed, duration_ms
		FROM %s ORDER BY requested_at DESC LIMIT %s`, j.table, j.placeholder(1))

	rows, err := j.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MJournalEntry
	for rows.Next() {
		var e models.MJournalEntry
		var requestedAt int64
		var symbols string
		if err := rows.Scan(&e.ID, &requestedAt, &e.Endpoint, &symbols, &e.RangeToken, &e.Status, &e.Succeeded, &e.Failed, &e.DurationMs); err != nil {
			return nil, err
		}
		e.RequestedAt = time.Unix(requestedAt, 0).UTC()
		if symbols != "" {
			e.Symbols = strings.Split(symbols, ",")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// -----------------------------------------------------------------------------

func (j *sqlJournal) Close() error {
	if j.DB != nil {
		return j.DB.Close()
	}
	return nil
}
