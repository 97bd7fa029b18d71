package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/models"
	"market-charts/src/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, handler http.HandlerFunc) *YahooHistorySource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &models.MConfig{
		Network: models.MNetworkConfig{RequestTimeout: 2},
		History: models.MHistoryConfig{YahooBaseURL: srv.URL},
	}
	return NewYahooHistorySource(cfg, network.NewNetworkManager(cfg, nil))
}

func testRange() models.MResolvedRange {
	end := time.Unix(1719777600, 0).UTC()
	return models.MResolvedRange{Token: models.Range5Y, Start: end.AddDate(-5, 0, 0), End: end, Granularity: models.GranularityWeekly}
}

func TestFetchHistoryRequestAndNulls(t *testing.T) {
	source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1wk", r.URL.Query().Get("interval"))
		assert.Equal(t, "1719777600", r.URL.Query().Get("period2"))
		assert.NotEmpty(t, r.URL.Query().Get("period1"))
		_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"AAPL"},
			"timestamp":[300,100,200],
			"indicators":{"quote":[{"close":[3.5,null,2.25]}]}}],"error":null}}`))
	})

	points, err := source.FetchHistory(context.Background(), "AAPL", testRange())
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, int64(300), points[0].Timestamp)
	assert.Nil(t, points[1].Price)
	require.NotNil(t, points[2].Price)
	assert.Equal(t, 2.25, *points[2].Price)
}

func TestFetchHistoryProviderError(t *testing.T) {
	source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})

	_, err := source.FetchHistory(context.Background(), "ZZZZ", testRange())
	var upstream *helpers.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "ZZZZ", upstream.Symbol)
	assert.EqualError(t, err, "No data found, symbol may be delisted")
}

func TestFetchHistoryBadStatus(t *testing.T) {
	source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := source.FetchHistory(context.Background(), "AAPL", testRange())
	var upstream *helpers.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, err.Error(), "503")
}

func TestParseChartResponseLengthMismatch(t *testing.T) {
	resp := &interfaces.Response{Status: 200, Body: []byte(`{"chart":{"result":[{"timestamp":[1,2],"indicators":{"quote":[{"close":[1.0]}]}}]}}`)}
	_, err := ParseChartResponse("AAPL", resp)
	var upstream *helpers.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestParseChartResponseNoTimestamps(t *testing.T) {
	resp := &interfaces.Response{Status: 200, Body: []byte(`{"chart":{"result":[{"meta":{},"indicators":{"quote":[{}]}}]}}`)}
	points, err := ParseChartResponse("AAPL", resp)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestInterval(t *testing.T) {
	assert.Equal(t, "60m", Interval(models.GranularityHourly))
	assert.Equal(t, "1d", Interval(models.GranularityDaily))
	assert.Equal(t, "1wk", Interval(models.GranularityWeekly))
}
