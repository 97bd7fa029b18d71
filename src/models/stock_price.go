package models

import "time"

// MRawPoint is one upstream sample. Price is nil for non-trading periods.
type MRawPoint struct {
	Timestamp int64
	Price     *float64
}

// MCleanPoint is a non-null price rounded to 2 decimals.
type MCleanPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// MCleanSeries is ordered ascending by Date.
type MCleanSeries []MCleanPoint

// -----------------------------------------------------------------------------

// MSymbolResult is the outcome of fetching one symbol.
type MSymbolResult struct {
	Symbol string       `json:"symbol"`
	Series MCleanSeries `json:"series,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func (r MSymbolResult) OK() bool {
	return r.Error == ""
}

// MSymbolFailure is the diagnostic entry reported for a failed symbol.
type MSymbolFailure struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}
