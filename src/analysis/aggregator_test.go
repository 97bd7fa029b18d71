package analysis

import (
	"context"
	"testing"
	"time"

	"market-charts/src/helpers"
	"market-charts/src/interfaces/mocks"
	"market-charts/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateSymbols(t *testing.T) {
	symbols, err := ValidateSymbols([]string{" aapl", "MSFT", "", "aapl "}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, symbols)

	var validation *helpers.ValidationError
	_, err = ValidateSymbols(nil, 5)
	assert.ErrorAs(t, err, &validation)

	_, err = ValidateSymbols([]string{" ", ""}, 5)
	assert.ErrorAs(t, err, &validation)

	_, err = ValidateSymbols([]string{"A", "B", "C", "D", "E", "F"}, 5)
	assert.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "too many symbols")

	// the limit counts entries before duplicates are removed
	_, err = ValidateSymbols([]string{"A", "A", "A", "A", "A", "A"}, 5)
	assert.ErrorAs(t, err, &validation)
}

func TestAggregatePartitionsInRequestOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockISeriesFetcher(ctrl)
	series := CleanSeries(rawSeries(3))

	fetcher.EXPECT().Fetch(gomock.Any(), "AAA", gomock.Any()).
		DoAndReturn(func(ctx context.Context, symbol string, rng models.MResolvedRange) (models.MCleanSeries, error) {
			time.Sleep(20 * time.Millisecond)
			return series, nil
		})
	fetcher.EXPECT().Fetch(gomock.Any(), "BAD1", gomock.Any()).Return(nil, helpers.NewUpstreamError("BAD1", "not found", nil))
	fetcher.EXPECT().Fetch(gomock.Any(), "BBB", gomock.Any()).Return(series, nil)
	fetcher.EXPECT().Fetch(gomock.Any(), "BAD2", gomock.Any()).Return(nil, helpers.NewEmptySeriesError("BAD2"))

	result, err := NewAggregator(fetcher, 5).Aggregate(context.Background(), []string{"aaa", "bad1", "bbb", "bad2"}, models.MResolvedRange{})
	require.NoError(t, err)

	require.Len(t, result.Successes, 2)
	assert.Equal(t, "AAA", result.Successes[0].Symbol)
	assert.Equal(t, "BBB", result.Successes[1].Symbol)

	require.Len(t, result.Failures, 2)
	assert.Equal(t, models.MSymbolFailure{Symbol: "BAD1", Error: "not found"}, result.Failures[0])
	assert.Equal(t, "BAD2", result.Failures[1].Symbol)
}

func TestAggregateSuccessCountMatches(t *testing.T) {
	symbols := []string{"S1", "S2", "S3", "S4", "S5"}
	for k := 0; k <= len(symbols); k++ {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockISeriesFetcher(ctrl)
		for i, s := range symbols {
			if i < k {
				fetcher.EXPECT().Fetch(gomock.Any(), s, gomock.Any()).Return(CleanSeries(rawSeries(2)), nil)
			} else {
				fetcher.EXPECT().Fetch(gomock.Any(), s, gomock.Any()).Return(nil, helpers.NewUpstreamError(s, "boom", nil))
			}
		}

		result, err := NewAggregator(fetcher, 5).Aggregate(context.Background(), symbols, models.MResolvedRange{})
		if k == 0 {
			var noData *helpers.NoValidDataError
			require.ErrorAs(t, err, &noData)
			assert.Len(t, noData.Failures, len(symbols))
			continue
		}
		require.NoError(t, err)
		assert.Len(t, result.Successes, k)
		assert.Len(t, result.Failures, len(symbols)-k)
	}
}

func TestAggregateRejectsBeforeFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockISeriesFetcher(ctrl)

	_, err := NewAggregator(fetcher, 5).Aggregate(context.Background(), []string{"A", "B", "C", "D", "E", "F"}, models.MResolvedRange{})
	var validation *helpers.ValidationError
	assert.ErrorAs(t, err, &validation)
}
