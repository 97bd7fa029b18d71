package interfaces

import "market-charts/src/models"

//go:generate mockgen -destination=mocks/mock_database.go -package=mocks market-charts/src/interfaces IJournal

// -----------------------------------------------------------------------------
// IJournal defines the contract for the request journal. Only request metadata
// is stored, never fetched prices.
// -----------------------------------------------------------------------------

type IJournal interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// Record appends one handled request.
	Record(entry models.MJournalEntry) error

	// -----------------------------------------------------------------------------

	// CleanupOldData removes entries older than retentionDays.
	CleanupOldData(retentionDays int) (int64, error)

	// -----------------------------------------------------------------------------

	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]models.MJournalEntry, error)

	// -----------------------------------------------------------------------------

	// Backend names the storage engine ("none", "sqlite", ...).
	Backend() string

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
