package analysis

import (
	"context"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/models"

	"golang.org/x/sync/errgroup"
)

const DefaultMaxSymbols = 5

// AggregateResult holds both partitions, each in request order.
type AggregateResult struct {
	Successes []models.MSymbolResult
	Failures  []models.MSymbolFailure
}

// Aggregator fans out one fetch per symbol and waits for all of them.
type Aggregator struct {
	Fetcher    interfaces.ISeriesFetcher
	MaxSymbols int
}

func NewAggregator(fetcher interfaces.ISeriesFetcher, maxSymbols int) *Aggregator {
	if maxSymbols <= 0 {
		maxSymbols = DefaultMaxSymbols
	}
	return &Aggregator{Fetcher: fetcher, MaxSymbols: maxSymbols}
}

// -----------------------------------------------------------------------------

// ValidateSymbols normalizes the request list. The limit applies to the raw
// count of non-empty entries, before duplicates are removed.
func ValidateSymbols(symbols []string, maxSymbols int) ([]string, error) {
	if maxSymbols <= 0 {
		maxSymbols = DefaultMaxSymbols
	}

	normalized := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s = NormalizeSymbol(s); s != "" {
			normalized = append(normalized, s)
		}
	}

	if len(normalized) == 0 {
		return nil, helpers.NewValidationError("at least one symbol is required")
	}
	if len(normalized) > maxSymbols {
		return nil, helpers.NewValidationError("too many symbols: %d requested, maximum is %d", len(normalized), maxSymbols)
	}

	seen := make(map[string]struct{}, len(normalized))
	unique := normalized[:0]
	for _, s := range normalized {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	return unique, nil
}

// -----------------------------------------------------------------------------

// Aggregate never short-circuits: every goroutine records its own outcome and
// returns nil, so one failing symbol cannot cancel its siblings.
func (a *Aggregator) Aggregate(ctx context.Context, symbols []string, rng models.MResolvedRange) (*AggregateResult, error) {
	symbols, err := ValidateSymbols(symbols, a.MaxSymbols)
	if err != nil {
		return nil, err
	}

	outcomes := make([]models.MSymbolResult, len(symbols))

	var g errgroup.Group
	for i, symbol := range symbols {
		g.Go(func() error {
			series, err := a.Fetcher.Fetch(ctx, symbol, rng)
			if err != nil {
				outcomes[i] = models.MSymbolResult{Symbol: symbol, Error: err.Error()}
				return nil
			}
			outcomes[i] = models.MSymbolResult{Symbol: symbol, Series: series}
			return nil
		})
	}
	_ = g.Wait()

	result := &AggregateResult{}
	for _, o := range outcomes {
		if o.OK() {
			result.Successes = append(result.Successes, o)
		} else {
			result.Failures = append(result.Failures, models.MSymbolFailure{Symbol: o.Symbol, Error: o.Error})
		}
	}

	if len(result.Successes) == 0 {
		return nil, helpers.NewNoValidDataError(result.Failures)
	}
	return result, nil
}
