package analysis

import (
	"context"
	"fmt"
	"time"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
)

// ChartResult is everything a caller needs to render and report one chart request.
type ChartResult struct {
	Spec      models.MChartSpec
	Range     models.MResolvedRange
	Symbols   []string
	Successes []models.MSymbolResult
	Failures  []models.MSymbolFailure
	Debug     []string
}

// AnalysisFacade runs resolve, aggregate, sample and build for one request.
type AnalysisFacade struct {
	Resolver     *RangeResolver
	Fetcher      interfaces.ISeriesFetcher
	Aggregator   *Aggregator
	Builder      *ChartBuilder
	Calendar     interfaces.ISessionCounter
	SampleBudget int
	Logger       *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MConfig, source interfaces.IHistorySource, calendar interfaces.ISessionCounter, log *logger.Logger) *AnalysisFacade {
	timeout := time.Duration(cfg.Network.RequestTimeout) * time.Second
	fetcher := NewSeriesFetcher(source, timeout, log)

	budget := cfg.Chart.SampleBudget
	if budget <= 0 {
		budget = DefaultSampleBudget
	}

	return &AnalysisFacade{
		Resolver:     NewRangeResolver(cfg.History.HourlyShortRange),
		Fetcher:      fetcher,
		Aggregator:   NewAggregator(fetcher, cfg.Chart.MaxSymbols),
		Builder:      NewChartBuilder(cfg.Chart.PadFactor),
		Calendar:     calendar,
		SampleBudget: budget,
		Logger:       log,
	}
}

// -----------------------------------------------------------------------------

// BuildChart returns ValidationError for bad symbol lists and NoValidDataError
// when every symbol failed. Partial failures are reported in Failures and Debug.
func (a *AnalysisFacade) BuildChart(ctx context.Context, symbols []string, token string) (*ChartResult, error) {
	rng := a.Resolver.Resolve(ParseRangeToken(token))

	aggregate, err := a.Aggregator.Aggregate(ctx, symbols, rng)
	if err != nil {
		return nil, err
	}

	result := &ChartResult{
		Range:     rng,
		Symbols:   make([]string, 0, len(aggregate.Successes)),
		Successes: make([]models.MSymbolResult, 0, len(aggregate.Successes)),
		Failures:  aggregate.Failures,
	}

	for _, s := range aggregate.Successes {
		sampled := Sample(s.Series, a.SampleBudget)
		result.Symbols = append(result.Symbols, s.Symbol)
		result.Successes = append(result.Successes, models.MSymbolResult{Symbol: s.Symbol, Series: sampled})
		result.Debug = append(result.Debug, a.coverageLine(s.Symbol, len(s.Series), len(sampled), rng))
	}
	for _, f := range aggregate.Failures {
		result.Debug = append(result.Debug, fmt.Sprintf("%s: %s", f.Symbol, f.Error))
	}

	result.Spec = a.Builder.Build(result.Successes, rng.Token)

	if a.Logger != nil {
		a.Logger.Info("chart %s built for %v (%d failed)", rng.Token, result.Symbols, len(result.Failures))
	}
	return result, nil
}

// -----------------------------------------------------------------------------

// History fetches one cleaned, unsampled series.
func (a *AnalysisFacade) History(ctx context.Context, symbol string, token string) (models.MResolvedRange, models.MCleanSeries, error) {
	rng := a.Resolver.Resolve(ParseRangeToken(token))

	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return rng, nil, helpers.NewValidationError("symbol is required")
	}

	series, err := a.Fetcher.Fetch(ctx, symbol, rng)
	return rng, series, err
}

// -----------------------------------------------------------------------------

func (a *AnalysisFacade) coverageLine(symbol string, clean, sampled int, rng models.MResolvedRange) string {
	line := fmt.Sprintf("%s: %d points, sampled to %d", symbol, clean, sampled)
	if a.Calendar == nil {
		return line
	}
	sessions, mic := a.Calendar.CountSessions(symbol, rng.Start, rng.End)
	return fmt.Sprintf("%s (%d sessions on %s)", line, sessions, mic)
}
