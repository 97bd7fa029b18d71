package analysis

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"market-charts/src/analysis/core"
	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

const DefaultFetchTimeout = 10 * time.Second

// SeriesFetcher retrieves and cleans the history of one symbol.
type SeriesFetcher struct {
	Source  interfaces.IHistorySource
	Timeout time.Duration
	Logger  *logger.Logger
}

func NewSeriesFetcher(source interfaces.IHistorySource, timeout time.Duration, log *logger.Logger) *SeriesFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &SeriesFetcher{Source: source, Timeout: timeout, Logger: log}
}

// -----------------------------------------------------------------------------

func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// -----------------------------------------------------------------------------

// Fetch issues one upstream call bounded by Timeout and returns the cleaned series.
func (f *SeriesFetcher) Fetch(ctx context.Context, symbol string, rng models.MResolvedRange) (models.MCleanSeries, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, helpers.NewValidationError("symbol is required")
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var log *logger.Logger
	if f.Logger != nil {
		log = f.Logger.With("symbol", symbol)
	}

	start := time.Now()
	raw, err := f.Source.FetchHistory(fetchCtx, symbol, rng)
	if err != nil {
		if log != nil {
			log.Warning("fetch from %s failed after %s: %v", f.Source.Name(), time.Since(start), err)
		}
		return nil, asUpstreamError(symbol, err, fetchCtx.Err())
	}

	series := CleanSeries(raw)
	if log != nil {
		log.Debug("%d raw points, %d clean, fetched in %s", len(raw), len(series), time.Since(start))
	}
	if len(series) == 0 {
		return nil, helpers.NewEmptySeriesError(symbol)
	}
	return series, nil
}

// -----------------------------------------------------------------------------

// asUpstreamError keeps typed source errors and wraps everything else. A deadline
// hit while the source was still reading always reports as a timeout.
func asUpstreamError(symbol string, err, ctxErr error) error {
	if errors.Is(ctxErr, context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		return helpers.NewUpstreamError(symbol, "", ctxErr)
	}

	var upstream *helpers.UpstreamError
	var empty *helpers.EmptySeriesError
	if errors.As(err, &upstream) || errors.As(err, &empty) {
		return err
	}
	return helpers.NewUpstreamError(symbol, "", err)
}

// -----------------------------------------------------------------------------

// CleanSeries drops nil and non-finite prices, rounds to 2 decimals and sorts
// ascending by time. Points sharing a timestamp keep their upstream order.
func CleanSeries(raw []models.MRawPoint) models.MCleanSeries {
	series := make(models.MCleanSeries, 0, len(raw))
	for _, p := range raw {
		if p.Price == nil || !core.IsFinite(*p.Price) {
			continue
		}
		series = append(series, models.MCleanPoint{
			Date:  time.Unix(p.Timestamp, 0).UTC(),
			Price: core.Round2(*p.Price),
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}
