package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market-charts/src/analysis"
	"market-charts/src/helpers"
	"market-charts/src/interfaces/mocks"
	"market-charts/src/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	server   *APIServer
	source   *mocks.MockIHistorySource
	renderer *mocks.MockIChartRenderer
	quotes   *mocks.MockIQuoteProvider
	journal  *mocks.MockIJournal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		source:   mocks.NewMockIHistorySource(ctrl),
		renderer: mocks.NewMockIChartRenderer(ctrl),
		quotes:   mocks.NewMockIQuoteProvider(ctrl),
		journal:  mocks.NewMockIJournal(ctrl),
	}
	f.source.EXPECT().Name().Return("yahoo").AnyTimes()
	f.journal.EXPECT().Backend().Return("sqlite").AnyTimes()

	cfg := &models.MConfig{
		Host:    "127.0.0.1",
		Port:    8081,
		Network: models.MNetworkConfig{RequestTimeout: 1},
		Chart:   models.MChartConfig{MaxSymbols: 5, SampleBudget: 50, PadFactor: 0.1, Format: "png"},
	}
	charts := analysis.NewAnalysisFacade(cfg, f.source, nil, nil)
	f.server = NewAPIServer(cfg, charts, f.renderer, f.quotes, f.journal, []string{"yahoo"}, nil)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, req)
	return w
}

func points(n int) []models.MRawPoint {
	base := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC).Unix()
	out := make([]models.MRawPoint, n)
	for i := range out {
		p := 100 + float64(i)
		out[i] = models.MRawPoint{Timestamp: base + int64(i)*86400, Price: &p}
	}
	return out
}

// -----------------------------------------------------------------------------

func TestGenerateChartSuccess(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(points(120), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, spec models.MChartSpec, opts models.MRenderOptions) ([]byte, error) {
			assert.Equal(t, "AAPL Stock Price (1Y)", spec.Options.Plugins.Title.Text)
			assert.Equal(t, "png", opts.Format)
			return []byte("hi"), nil
		})
	f.journal.EXPECT().Record(gomock.Any()).DoAndReturn(func(e models.MJournalEntry) error {
		assert.Equal(t, "generate-chart", e.Endpoint)
		assert.Equal(t, http.StatusOK, e.Status)
		assert.Equal(t, 1, e.Succeeded)
		assert.NotEmpty(t, e.ID)
		return nil
	})

	w := f.do(http.MethodPost, "/api/generate-chart", `{"symbols":["aapl"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp models.MGenerateChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "data:image/png;base64,aGk=", resp.Image)
	assert.Equal(t, []string{"AAPL"}, resp.Symbols)
	assert.Equal(t, "1Y", resp.Range)
	assert.Len(t, resp.Debug, 1)
}

func TestGenerateChartPartialFailure(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(points(30), nil)
	f.source.EXPECT().FetchHistory(gomock.Any(), "ZZZZINVALID", gomock.Any()).
		Return(nil, helpers.NewUpstreamError("ZZZZINVALID", "No data found", nil))
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("png"), nil)
	f.journal.EXPECT().Record(gomock.Any()).Return(nil)

	w := f.do(http.MethodPost, "/api/generate-chart", `{"symbols":["AAPL","ZZZZINVALID"],"range":"1M"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MGenerateChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AAPL"}, resp.Symbols)
	assert.Contains(t, resp.Debug, "ZZZZINVALID: No data found")
}

func TestGenerateChartValidation(t *testing.T) {
	f := newFixture(t)
	f.journal.EXPECT().Record(gomock.Any()).Return(nil).Times(3)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/generate-chart", `{"symbols":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/generate-chart", `{"symbols":["A","B","C","D","E","F"]}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/generate-chart", `not json`).Code)
}

func TestGenerateChartNoValidData(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).Times(2)
	f.journal.EXPECT().Record(gomock.Any()).DoAndReturn(func(e models.MJournalEntry) error {
		assert.Equal(t, 2, e.Failed)
		return nil
	})

	w := f.do(http.MethodPost, "/api/generate-chart", `{"symbols":["X","Y"]}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Error   string                  `json:"error"`
		Details []models.MSymbolFailure `json:"details"`
		Debug   []string                `json:"debug"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "no valid data found for any symbol", resp.Error)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "X", resp.Details[0].Symbol)
	assert.Len(t, resp.Debug, 2)
}

func TestGenerateChartRendererFailure(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(points(10), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, helpers.NewRendererError(errors.New("renderer returned status 503")))
	f.journal.EXPECT().Record(gomock.Any()).Return(nil)

	w := f.do(http.MethodPost, "/api/generate-chart", `{"symbols":["AAPL"]}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.MErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "chart rendering failed", resp.Error)
	assert.Contains(t, resp.Details, "503")
}

func TestGenerateChartWrongMethod(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/generate-chart", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "method GET not allowed")
}

func TestPreflightIsEmpty200(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodOptions, "/api/generate-chart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// -----------------------------------------------------------------------------

func TestStockDataGetAndPost(t *testing.T) {
	f := newFixture(t)
	f.quotes.EXPECT().Lookup(gomock.Any(), "AAPL", "").Return(200, []byte(`{"c":190.1}`), nil)
	f.quotes.EXPECT().Lookup(gomock.Any(), "MSFT", "profile").Return(200, []byte(`{"name":"Microsoft"}`), nil)

	w := f.do(http.MethodGet, "/api/stock-data?symbol=aapl", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"c":190.1}`, w.Body.String())

	w = f.do(http.MethodPost, "/api/stock-data", `{"symbol":"msft","endpoint":"profile"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Microsoft"}`, w.Body.String())
}

func TestStockDataPassesUpstreamStatus(t *testing.T) {
	f := newFixture(t)
	f.quotes.EXPECT().Lookup(gomock.Any(), "AAPL", "metrics").Return(429, []byte(`{"error":"limit"}`), nil)

	w := f.do(http.MethodGet, "/api/stock-data?symbol=AAPL&endpoint=metrics", "")
	assert.Equal(t, 429, w.Code)
	assert.JSONEq(t, `{"error":"limit"}`, w.Body.String())
}

func TestStockDataErrors(t *testing.T) {
	f := newFixture(t)
	f.quotes.EXPECT().Lookup(gomock.Any(), "AAPL", "news").Return(0, nil, helpers.NewValidationError("unsupported endpoint"))

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/stock-data", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/stock-data?symbol=AAPL&endpoint=news", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodDelete, "/api/stock-data", "").Code)
}

// -----------------------------------------------------------------------------

func TestStockHistory(t *testing.T) {
	f := newFixture(t)
	raw := points(3)
	raw[1].Price = nil
	f.source.EXPECT().FetchHistory(gomock.Any(), "AAPL", gomock.Any()).Return(raw, nil)
	f.journal.EXPECT().Record(gomock.Any()).Return(nil)

	w := f.do(http.MethodGet, "/api/stock-history?symbol=aapl&range=3m", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.S)
	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, "3M", resp.Range)
	assert.Equal(t, []int64{raw[0].Timestamp, raw[2].Timestamp}, resp.T)
	assert.Equal(t, []float64{100, 102}, resp.C)
}

func TestStockHistoryErrors(t *testing.T) {
	f := newFixture(t)
	f.journal.EXPECT().Record(gomock.Any()).Return(nil).Times(3)
	f.source.EXPECT().FetchHistory(gomock.Any(), "EMPTY", gomock.Any()).Return([]models.MRawPoint{}, nil)
	f.source.EXPECT().FetchHistory(gomock.Any(), "DOWN", gomock.Any()).Return(nil, errors.New("connection reset"))

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/stock-history", "").Code)

	w := f.do(http.MethodGet, "/api/stock-history?symbol=EMPTY", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"s":"no_data"`)

	assert.Equal(t, http.StatusBadGateway, f.do(http.MethodGet, "/api/stock-history?symbol=DOWN", "").Code)
}

// -----------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	f := newFixture(t)
	f.journal.EXPECT().Recent(healthRecentRequests).Return([]models.MJournalEntry{
		{ID: "r2", Endpoint: "generate-chart", Symbols: []string{"AAPL", "MSFT"}, RangeToken: "6M", Status: 200, Succeeded: 2},
		{ID: "r1", Endpoint: "stock-history", Symbols: []string{"TSLA"}, RangeToken: "1Y", Status: 502, Failed: 1},
	}, nil)

	w := f.do(http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MHealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"yahoo"}, resp.HistorySources)
	assert.Equal(t, "sqlite", resp.Journal)
	require.Len(t, resp.RecentRequests, 2)
	assert.Equal(t, "r2", resp.RecentRequests[0].ID)
	assert.Equal(t, []string{"AAPL", "MSFT"}, resp.RecentRequests[0].Symbols)
	assert.Equal(t, 502, resp.RecentRequests[1].Status)
}

func TestHealthSurvivesJournalReadError(t *testing.T) {
	f := newFixture(t)
	f.journal.EXPECT().Recent(healthRecentRequests).Return(nil, errors.New("database is locked"))

	w := f.do(http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "recent_requests")
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newFixture(t)
	f.journal.EXPECT().Recent(gomock.Any()).Return(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "3f0c4f5e-1a7b-4c1e-9b55-8b0e1d2a6c11")
	w := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(w, req)

	assert.Equal(t, "3f0c4f5e-1a7b-4c1e-9b55-8b0e1d2a6c11", w.Header().Get("X-Request-ID"))
}

func TestRecoveryReturnsJSON(t *testing.T) {
	f := newFixture(t)
	f.server.engine.GET("/api/panic", func(c *gin.Context) { panic("boom") })

	w := f.do(http.MethodGet, "/api/panic", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.MErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, "boom", resp.Details)
}
