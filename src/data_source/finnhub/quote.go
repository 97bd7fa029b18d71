package finnhub

import (
	"context"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

// endpointPaths maps the public endpoint names to provider paths and fixed params.
var endpointPaths = map[string]struct {
	path   string
	params map[string]string
}{
	"quote":   {path: "/quote"},
	"profile": {path: "/stock/profile2"},
	"metrics": {path: "/stock/metric", params: map[string]string{"metric": "all"}},
}

// QuoteProvider passes quote, profile and metrics lookups through verbatim.
type QuoteProvider struct {
	BaseURL string
	APIKey  string
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

func NewQuoteProvider(cfg *models.MConfig, netMgr interfaces.INetworkManager) *QuoteProvider {
	return &QuoteProvider{
		BaseURL: baseURL(cfg),
		APIKey:  cfg.History.FinnhubAPIKey,
		Network: netMgr,
		Logger:  logger.NewLogger(cfg, "FinnhubQuoteProvider"),
	}
}

// -----------------------------------------------------------------------------

// NormalizeEndpoint returns the endpoint name, defaulting to quote.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.ToLower(strings.TrimSpace(endpoint))
	if endpoint == "" {
		return "quote", nil
	}
	if _, ok := endpointPaths[endpoint]; !ok {
		return "", helpers.NewValidationError("unsupported endpoint %q (expected quote, profile or metrics)", endpoint)
	}
	return endpoint, nil
}

// -----------------------------------------------------------------------------

// Lookup returns the provider status and body untouched, including error statuses.
func (p *QuoteProvider) Lookup(ctx context.Context, symbol, endpoint string) (int, []byte, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, nil, helpers.NewValidationError("symbol is required")
	}
	endpoint, err := NormalizeEndpoint(endpoint)
	if err != nil {
		return 0, nil, err
	}
	target := endpointPaths[endpoint]

	params := map[string]string{"symbol": symbol}
	for k, v := range target.params {
		params[k] = v
	}

	resp, err := p.Network.Get(ctx, p.BaseURL+target.path, params, authHeader(p.APIKey))
	if err != nil {
		return 0, nil, helpers.NewUpstreamError(symbol, "", err)
	}
	if !resp.OK() && p.Logger != nil {
		p.Logger.Warning("%s %s returned %d", endpoint, symbol, resp.Status)
	}
	return resp.Status, resp.Body, nil
}
