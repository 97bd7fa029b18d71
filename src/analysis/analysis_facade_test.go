package analysis

import (
	"context"
	"strings"
	"testing"
	"time"

	"market-charts/src/helpers"
	"market-charts/src/interfaces/mocks"
	"market-charts/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFacade(t *testing.T) (*AnalysisFacade, *mocks.MockIHistorySource, *mocks.MockISessionCounter) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIHistorySource(ctrl)
	source.EXPECT().Name().Return("fake").AnyTimes()
	calendar := mocks.NewMockISessionCounter(ctrl)

	cfg := &models.MConfig{
		Network: models.MNetworkConfig{RequestTimeout: 1},
		Chart:   models.MChartConfig{MaxSymbols: 5, SampleBudget: 50, PadFactor: 0.1},
	}
	facade := NewAnalysisFacade(cfg, source, calendar, nil)
	facade.Resolver.Now = fixedNow
	return facade, source, calendar
}

func TestScenarioSingleSymbolOneYear(t *testing.T) {
	facade, source, calendar := newTestFacade(t)
	source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).
		DoAndReturn(func(ctx context.Context, symbol string, rng models.MResolvedRange) ([]models.MRawPoint, error) {
			assert.Equal(t, models.Range1Y, rng.Token)
			assert.Equal(t, models.GranularityDaily, rng.Granularity)
			return rawSeries(252, 3, 60, 151), nil
		})
	calendar.EXPECT().CountSessions("AAPL", gomock.Any(), gomock.Any()).Return(251, "xnys")

	result, err := facade.BuildChart(context.Background(), []string{"AAPL"}, "1Y")
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL"}, result.Symbols)
	require.Len(t, result.Successes, 1)
	assert.LessOrEqual(t, len(result.Successes[0].Series), 51)
	assert.Equal(t, []string{"AAPL: 249 points, sampled to 51 (251 sessions on xnys)"}, result.Debug)

	spec := result.Spec
	require.Len(t, spec.Data.Datasets, 1)
	assert.Equal(t, "$", spec.Options.Scales.Y.Title.Text)
	assert.Equal(t, result.Successes[0].Series[0].Price, spec.Data.Datasets[0].Data[0].Y)
}

func TestScenarioThreeSymbolComparison(t *testing.T) {
	facade, source, calendar := newTestFacade(t)
	for _, s := range []string{"AAPL", "GOOGL", "MSFT"} {
		source.EXPECT().FetchHistory(gomock.Any(), s, gomock.Any()).Return(rawSeries(126), nil)
	}
	calendar.EXPECT().CountSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(125, "xnys").Times(3)

	result, err := facade.BuildChart(context.Background(), []string{"AAPL", "GOOGL", "MSFT"}, "6M")
	require.NoError(t, err)

	assert.Equal(t, models.Range6M, result.Range.Token)
	assert.Equal(t, 182*24*time.Hour, result.Range.End.Sub(result.Range.Start))
	require.Len(t, result.Spec.Data.Datasets, 3)
	for _, ds := range result.Spec.Data.Datasets {
		assert.Equal(t, 0.0, ds.Data[0].Y)
	}
	assert.Equal(t, "%", result.Spec.Options.Scales.Y.Title.Text)
	assert.Equal(t, "AAPL vs GOOGL vs MSFT Performance (6M)", result.Spec.Options.Plugins.Title.Text)
}

func TestScenarioPartialFailure(t *testing.T) {
	facade, source, calendar := newTestFacade(t)
	source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(rawSeries(20), nil)
	source.EXPECT().FetchHistory(gomock.Any(), "ZZZZINVALID", gomock.Any()).
		Return(nil, helpers.NewUpstreamError("ZZZZINVALID", "No data found, symbol may be delisted", nil))
	calendar.EXPECT().CountSessions("AAPL", gomock.Any(), gomock.Any()).Return(20, "xnys")

	result, err := facade.BuildChart(context.Background(), []string{"AAPL", "ZZZZINVALID"}, "1M")
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL"}, result.Symbols)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "ZZZZINVALID", result.Failures[0].Symbol)
	require.Len(t, result.Debug, 2)
	assert.True(t, strings.HasPrefix(result.Debug[1], "ZZZZINVALID: "))

	// a single surviving symbol is drawn in absolute price
	assert.Equal(t, "$", result.Spec.Options.Scales.Y.Title.Text)
}

func TestDuplicateSymbolsBuildSingleSeriesChart(t *testing.T) {
	facade, source, calendar := newTestFacade(t)
	source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(rawSeries(30), nil).Times(1)
	calendar.EXPECT().CountSessions("AAPL", gomock.Any(), gomock.Any()).Return(251, "xnys")

	result, err := facade.BuildChart(context.Background(), []string{"AAPL", " aapl "}, "1Y")
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL"}, result.Symbols)
	require.Len(t, result.Successes, 1)
	assert.Empty(t, result.Failures)

	spec := result.Spec
	require.Len(t, spec.Data.Datasets, 1)
	assert.Equal(t, "AAPL Stock Price (1Y)", spec.Options.Plugins.Title.Text)
	assert.False(t, spec.Options.Plugins.Legend.Display)
	assert.Equal(t, "$", spec.Options.Scales.Y.Title.Text)
	assert.NotNil(t, spec.Options.Scales.Y.Min)
}

func TestScenarioInvalidSymbolLists(t *testing.T) {
	facade, _, _ := newTestFacade(t)
	var validation *helpers.ValidationError

	_, err := facade.BuildChart(context.Background(), []string{}, "1Y")
	assert.ErrorAs(t, err, &validation)

	_, err = facade.BuildChart(context.Background(), []string{"A", "B", "C", "D", "E", "F"}, "1Y")
	assert.ErrorAs(t, err, &validation)
}

func TestAllSymbolsFailing(t *testing.T) {
	facade, source, _ := newTestFacade(t)
	source.EXPECT().FetchHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(rawSeries(4, 0, 1, 2, 3), nil).Times(2)

	_, err := facade.BuildChart(context.Background(), []string{"X", "Y"}, "1Y")
	var noData *helpers.NoValidDataError
	require.ErrorAs(t, err, &noData)
	assert.Len(t, noData.Failures, 2)
	assert.Equal(t, 404, helpers.StatusCode(err))
}

func TestHistoryReturnsUnsampledSeries(t *testing.T) {
	facade, source, _ := newTestFacade(t)
	source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(rawSeries(300), nil)

	rng, series, err := facade.History(context.Background(), "aapl", "")
	require.NoError(t, err)
	assert.Equal(t, models.Range1Y, rng.Token)
	assert.Len(t, series, 300)

	_, _, err = facade.History(context.Background(), " ", "1Y")
	var validation *helpers.ValidationError
	assert.ErrorAs(t, err, &validation)
}
