package models

// -----------------------------------------------------------------------------
// HTTP payloads
// -----------------------------------------------------------------------------

type MGenerateChartRequest struct {
	Symbols []string `json:"symbols"`
	Range   string   `json:"range"`
}

type MGenerateChartResponse struct {
	Success bool     `json:"success"`
	Image   string   `json:"image"`
	Symbols []string `json:"symbols"`
	Range   string   `json:"range"`
	Debug   []string `json:"debug"`
}

type MErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
	Debug   []string    `json:"debug,omitempty"`
}

// -----------------------------------------------------------------------------

// MStockDataRequest is accepted from the query string (GET) or JSON body (POST).
type MStockDataRequest struct {
	Symbol   string `json:"symbol" form:"symbol"`
	Endpoint string `json:"endpoint" form:"endpoint"`
}

// MHistoryResponse mirrors the candle shape: s, t (unix seconds), c (close).
type MHistoryResponse struct {
	S      string    `json:"s"`
	T      []int64   `json:"t"`
	C      []float64 `json:"c"`
	Symbol string    `json:"symbol"`
	Range  string    `json:"range"`
}
