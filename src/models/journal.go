package models

import "time"

// MJournalEntry records request metadata. It never carries prices.
type MJournalEntry struct {
	ID          string    `json:"id"`
	RequestedAt time.Time `json:"requested_at"`
	Endpoint    string    `json:"endpoint"`
	Symbols     []string  `json:"symbols"`
	RangeToken  string    `json:"range"`
	Status      int       `json:"status"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	DurationMs  int64     `json:"duration_ms"`
}
