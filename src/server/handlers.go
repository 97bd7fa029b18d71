package server

import (
	"errors"
	"net/http"
	"time"

	"market-charts/src/analysis"
	"market-charts/src/helpers"
	"market-charts/src/models"
	"market-charts/src/render"

	"github.com/gin-gonic/gin"
)

// healthRecentRequests bounds the journal tail returned by /api/health.
const healthRecentRequests = 10

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *APIServer) generateChart(c *gin.Context) {
	started := time.Now()

	req, err := bindGenerateChartRequest(c)
	if err != nil {
		status := s.writeError(c, err, nil, nil)
		s.record(c, "generate-chart", nil, "", status, 0, 0, started)
		return
	}
	token := string(analysis.ParseRangeToken(req.Range))

	result, err := s.Charts.BuildChart(c.Request.Context(), req.Symbols, token)
	if err != nil {
		status := s.writeError(c, err, nil, nil)
		var noData *helpers.NoValidDataError
		failed := 0
		if errors.As(err, &noData) {
			failed = len(noData.Failures)
		}
		s.record(c, "generate-chart", req.Symbols, token, status, 0, failed, started)
		return
	}

	image, err := s.Renderer.Render(c.Request.Context(), result.Spec, render.OptionsFromConfig(s.Config.Chart))
	if err != nil {
		status := s.writeError(c, err, err.Error(), result.Debug)
		s.record(c, "generate-chart", result.Symbols, token, status, len(result.Symbols), len(result.Failures), started)
		return
	}

	c.JSON(http.StatusOK, models.MGenerateChartResponse{
		Success: true,
		Image:   render.DataURI(image, s.Config.Chart.Format),
		Symbols: result.Symbols,
		Range:   string(result.Range.Token),
		Debug:   result.Debug,
	})
	s.record(c, "generate-chart", append(result.Symbols, symbolsOf(result.Failures)...), token, http.StatusOK, len(result.Symbols), len(result.Failures), started)
}

// -----------------------------------------------------------------------------

func (s *APIServer) stockData(c *gin.Context) {
	req, err := bindStockDataRequest(c)
	if err != nil {
		s.writeError(c, err, nil, nil)
		return
	}

	status, body, err := s.Quotes.Lookup(c.Request.Context(), req.Symbol, req.Endpoint)
	if err != nil {
		s.writeError(c, err, nil, nil)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

// -----------------------------------------------------------------------------

func (s *APIServer) stockHistory(c *gin.Context) {
	started := time.Now()
	symbol := c.Query("symbol")

	rng, series, err := s.Charts.History(c.Request.Context(), symbol, c.Query("range"))
	symbol = analysis.NormalizeSymbol(symbol)
	token := string(rng.Token)

	if err != nil {
		var empty *helpers.EmptySeriesError
		var status int
		if errors.As(err, &empty) {
			status = http.StatusNotFound
			s.Logger.Warning("%s: %v", symbol, err)
			c.JSON(status, gin.H{"s": "no_data", "symbol": symbol, "range": token})
		} else {
			status = s.writeError(c, err, nil, nil)
		}
		s.record(c, "stock-history", []string{symbol}, token, status, 0, 1, started)
		return
	}

	resp := models.MHistoryResponse{
		S:      "ok",
		T:      make([]int64, len(series)),
		C:      make([]float64, len(series)),
		Symbol: symbol,
		Range:  token,
	}
	for i, p := range series {
		resp.T[i] = p.Date.Unix()
		resp.C[i] = p.Price
	}

	c.JSON(http.StatusOK, resp)
	s.record(c, "stock-history", []string{symbol}, token, http.StatusOK, 1, 0, started)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	status := models.MHealthStatus{
		Status:         "ok",
		HistorySources: s.Sources,
		Journal:        "none",
		UptimeSeconds:  int64(time.Since(s.startedAt).Seconds()),
	}

	if s.Journal != nil {
		status.Journal = s.Journal.Backend()
		recent, err := s.Journal.Recent(healthRecentRequests)
		if err != nil {
			s.Logger.Warning("Reading recent requests from %s journal: %v", status.Journal, err)
		}
		status.RecentRequests = recent
	}

	c.JSON(http.StatusOK, status)
}
