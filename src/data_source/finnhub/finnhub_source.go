package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

const DefaultBaseURL = "https://finnhub.io/api/v1"

// FinnhubHistorySource reads daily/weekly/hourly candles from /stock/candle.
type FinnhubHistorySource struct {
	BaseURL string
	APIKey  string
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewFinnhubHistorySource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *FinnhubHistorySource {
	return &FinnhubHistorySource{
		BaseURL: baseURL(cfg),
		APIKey:  cfg.History.FinnhubAPIKey,
		Network: netMgr,
		Logger:  logger.NewLogger(cfg, "FinnhubHistorySource"),
	}
}

func baseURL(cfg *models.MConfig) string {
	if cfg.History.FinnhubBaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(cfg.History.FinnhubBaseURL, "/")
}

// -----------------------------------------------------------------------------

func (s *FinnhubHistorySource) Name() string {
	return "finnhub"
}

// -----------------------------------------------------------------------------

func Resolution(g models.MGranularity) string {
	switch g {
	case models.GranularityHourly:
		return "60"
	case models.GranularityWeekly:
		return "W"
	default:
		return "D"
	}
}

// -----------------------------------------------------------------------------

type CandleResponse struct {
	S     string     `json:"s"`
	T     []int64    `json:"t"`
	C     []*float64 `json:"c"`
	Error string     `json:"error"`
}

// -----------------------------------------------------------------------------

func (s *FinnhubHistorySource) FetchHistory(ctx context.Context, symbol string, rng models.MResolvedRange) ([]models.MRawPoint, error) {
	params := map[string]string{
		"symbol":     symbol,
		"resolution": Resolution(rng.Granularity),
		"from":       strconv.FormatInt(rng.Start.Unix(), 10),
		"to":         strconv.FormatInt(rng.End.Unix(), 10),
	}

	resp, err := s.Network.Get(ctx, s.BaseURL+"/stock/candle", params, authHeader(s.APIKey))
	if err != nil {
		return nil, helpers.NewUpstreamError(symbol, "", err)
	}

	var candle CandleResponse
	decodeErr := json.Unmarshal(resp.Body, &candle)
	if decodeErr == nil && candle.Error != "" {
		return nil, helpers.NewUpstreamError(symbol, candle.Error, nil)
	}
	if !resp.OK() {
		return nil, helpers.NewUpstreamError(symbol, fmt.Sprintf("provider returned status %d", resp.Status), nil)
	}
	if decodeErr != nil {
		return nil, helpers.NewUpstreamError(symbol, "invalid provider payload", decodeErr)
	}
	if candle.S == "no_data" {
		return []models.MRawPoint{}, nil
	}
	if len(candle.T) != len(candle.C) {
		return nil, helpers.NewUpstreamError(symbol,
			fmt.Sprintf("timestamp/close length mismatch (%d vs %d)", len(candle.T), len(candle.C)), nil)
	}

	points := make([]models.MRawPoint, len(candle.T))
	for i, ts := range candle.T {
		points[i] = models.MRawPoint{Timestamp: ts, Price: candle.C[i]}
	}
	return points, nil
}

// -----------------------------------------------------------------------------

// authHeader keeps the token out of query strings and therefore out of access logs.
func authHeader(apiKey string) map[string]string {
	if apiKey == "" {
		return nil
	}
	return map[string]string{"X-Finnhub-Token": apiKey}
}
