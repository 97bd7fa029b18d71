package interfaces

import (
	"context"
	"time"

	"market-charts/src/models"
)

//go:generate mockgen -destination=mocks/mock_data_source.go -package=mocks market-charts/src/interfaces IHistorySource,IQuoteProvider,ISeriesFetcher,ISessionCounter

// -----------------------------------------------------------------------------
// IHistorySource fetches a raw price series for one symbol from an upstream provider.
// -----------------------------------------------------------------------------

type IHistorySource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchHistory issues exactly one upstream call for the resolved range.
	// Points are returned as the provider sent them: unordered, possibly with nil prices.
	FetchHistory(ctx context.Context, symbol string, rng models.MResolvedRange) ([]models.MRawPoint, error)
}

// -----------------------------------------------------------------------------
// IQuoteProvider proxies symbol-keyed lookups (quote, profile, metrics).
// -----------------------------------------------------------------------------

type IQuoteProvider interface {

	// Lookup returns the upstream status and body verbatim.
	Lookup(ctx context.Context, symbol, endpoint string) (int, []byte, error)
}

// -----------------------------------------------------------------------------
// ISeriesFetcher yields a clean series or a per-symbol error.
// -----------------------------------------------------------------------------

type ISeriesFetcher interface {
	Fetch(ctx context.Context, symbol string, rng models.MResolvedRange) (models.MCleanSeries, error)
}

// -----------------------------------------------------------------------------
// ISessionCounter reports how many trading sessions a range covers for a symbol.
// -----------------------------------------------------------------------------

type ISessionCounter interface {

	// CountSessions returns the session count and the venue code it was counted on.
	CountSessions(symbol string, start, end time.Time) (int, string)
}
