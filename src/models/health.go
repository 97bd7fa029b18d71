package models

// MHealthStatus is returned by the health endpoint.
type MHealthStatus struct {
	Status         string   `json:"status"`
	HistorySources []string `json:"history_sources"`
	Journal        string   `json:"journal"`
	UptimeSeconds  int64    `json:"uptime_seconds"`

	RecentRequests []MJournalEntry `json:"recent_requests,omitempty"`
}
