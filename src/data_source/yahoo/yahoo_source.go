package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

type YahooHistorySource struct {
	BaseURL string
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewYahooHistorySource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *YahooHistorySource {
	baseURL := cfg.History.YahooBaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &YahooHistorySource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Network: netMgr,
		Logger:  logger.NewLogger(cfg, "YahooHistorySource"),
	}
}

// -----------------------------------------------------------------------------

func (s *YahooHistorySource) Name() string {
	return "yahoo"
}

// -----------------------------------------------------------------------------

// Interval maps a granularity to the chart API interval parameter.
func Interval(g models.MGranularity) string {
	switch g {
	case models.GranularityHourly:
		return "60m"
	case models.GranularityWeekly:
		return "1wk"
	default:
		return "1d"
	}
}

// -----------------------------------------------------------------------------

// FetchHistory calls the v8 chart endpoint once for the resolved range.
func (s *YahooHistorySource) FetchHistory(ctx context.Context, symbol string, rng models.MResolvedRange) ([]models.MRawPoint, error) {
	params := map[string]string{
		"period1":        strconv.FormatInt(rng.Start.Unix(), 10),
		"period2":        strconv.FormatInt(rng.End.Unix(), 10),
		"interval":       Interval(rng.Granularity),
		"includePrePost": "false",
	}
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", s.BaseURL, url.PathEscape(symbol))

	resp, err := s.Network.Get(ctx, endpoint, params, nil)
	if err != nil {
		return nil, helpers.NewUpstreamError(symbol, "", err)
	}

	return ParseChartResponse(symbol, resp)
}

// -----------------------------------------------------------------------------

type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string `json:"symbol"`
				Currency             string `json:"currency"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

// ParseChartResponse decodes the chart payload. The provider error object wins
// over the HTTP status so its message reaches the caller.
func ParseChartResponse(symbol string, resp *interfaces.Response) ([]models.MRawPoint, error) {
	var chart ChartResponse
	decodeErr := json.Unmarshal(resp.Body, &chart)

	if decodeErr == nil && chart.Chart.Error != nil {
		msg := chart.Chart.Error.Description
		if msg == "" {
			msg = chart.Chart.Error.Code
		}
		return nil, helpers.NewUpstreamError(symbol, msg, nil)
	}
	if !resp.OK() {
		return nil, helpers.NewUpstreamError(symbol, fmt.Sprintf("provider returned status %d", resp.Status), nil)
	}
	if decodeErr != nil {
		return nil, helpers.NewUpstreamError(symbol, "invalid provider payload", decodeErr)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, helpers.NewUpstreamError(symbol, "provider returned no result", nil)
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return []models.MRawPoint{}, nil
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, helpers.NewUpstreamError(symbol, "provider returned no quote block", nil)
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, helpers.NewUpstreamError(symbol,
			fmt.Sprintf("timestamp/close length mismatch (%d vs %d)", len(result.Timestamp), len(closes)), nil)
	}

	points := make([]models.MRawPoint, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		points[i] = models.MRawPoint{Timestamp: ts, Price: closes[i]}
	}
	return points, nil
}
