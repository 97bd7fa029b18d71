package server

import (
	"errors"
	"net/http"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------

// bindStockDataRequest reads symbol/endpoint from the query string on GET and
// from the JSON body on POST, so one handler serves both verbs.
func bindStockDataRequest(c *gin.Context) (models.MStockDataRequest, error) {
	var req models.MStockDataRequest
	if err := c.ShouldBind(&req); err != nil {
		return req, helpers.NewValidationError("invalid request: %v", err)
	}
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	req.Endpoint = strings.ToLower(strings.TrimSpace(req.Endpoint))
	if req.Symbol == "" {
		return req, helpers.NewValidationError("symbol is required")
	}
	return req, nil
}

// -----------------------------------------------------------------------------

func bindGenerateChartRequest(c *gin.Context) (models.MGenerateChartRequest, error) {
	var req models.MGenerateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, helpers.NewValidationError("invalid request body: %v", err)
	}
	return req, nil
}

// -----------------------------------------------------------------------------

// writeError renders err with the status from helpers.StatusCode. Per-symbol
// failures travel in details when every symbol failed.
func (s *APIServer) writeError(c *gin.Context, err error, details interface{}, debug []string) int {
	status := s.Errors.Handle(err, c.Request.URL.Path)

	var noData *helpers.NoValidDataError
	if details == nil && errors.As(err, &noData) {
		details = noData.Failures
		for _, f := range noData.Failures {
			debug = append(debug, f.Symbol+": "+f.Error)
		}
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		var renderer *helpers.RendererError
		if errors.As(err, &renderer) {
			message = renderer.Message
		} else {
			message = "internal server error"
		}
		if details == nil {
			details = err.Error()
		}
	}

	c.JSON(status, models.MErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
		Debug:   debug,
	})
	return status
}

// -----------------------------------------------------------------------------

func symbolsOf(failures []models.MSymbolFailure) []string {
	out := make([]string, len(failures))
	for i, f := range failures {
		out[i] = f.Symbol
	}
	return out
}
