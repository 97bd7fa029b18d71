package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"market-charts/src/logger"
	"market-charts/src/models"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type MarketChartsError struct {
	Message string
	Cause   error
}

func (e *MarketChartsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MarketChartsError) Unwrap() error {
	return e.Cause
}

// Distinct error types so handlers can map them with errors.As
type ConfigurationError struct{ MarketChartsError }
type ValidationError struct{ MarketChartsError }
type RendererError struct{ MarketChartsError }
type MethodNotAllowedError struct{ MarketChartsError }

// UpstreamError is a failed or error-reporting provider call for one symbol.
type UpstreamError struct {
	MarketChartsError
	Symbol string
}

// EmptySeriesError means the provider answered but no usable point survived cleaning.
type EmptySeriesError struct {
	MarketChartsError
	Symbol string
}

// NoValidDataError means every requested symbol failed.
type NoValidDataError struct {
	MarketChartsError
	Failures []models.MSymbolFailure
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{MarketChartsError{Message: fmt.Sprintf(format, args...)}}
}

func NewConfigurationError(format string, args ...interface{}) error {
	return &ConfigurationError{MarketChartsError{Message: fmt.Sprintf(format, args...)}}
}

func NewMethodNotAllowedError(method string) error {
	return &MethodNotAllowedError{MarketChartsError{Message: fmt.Sprintf("method %s not allowed", method)}}
}

func NewRendererError(cause error) error {
	return &RendererError{MarketChartsError{Message: "chart rendering failed", Cause: cause}}
}

// NewUpstreamError wraps a provider failure. Deadline errors keep their cause so
// callers can still detect a timeout.
func NewUpstreamError(symbol, message string, cause error) error {
	if message == "" && cause != nil {
		message = "upstream request failed"
	}
	if errors.Is(cause, context.DeadlineExceeded) {
		message = "upstream request timed out"
	}
	return &UpstreamError{
		MarketChartsError: MarketChartsError{Message: message, Cause: cause},
		Symbol:            symbol,
	}
}

func NewEmptySeriesError(symbol string) error {
	return &EmptySeriesError{
		MarketChartsError: MarketChartsError{Message: fmt.Sprintf("no valid data points for %s", symbol)},
		Symbol:            symbol,
	}
}

func NewNoValidDataError(failures []models.MSymbolFailure) error {
	return &NoValidDataError{
		MarketChartsError: MarketChartsError{Message: "no valid data found for any symbol"},
		Failures:          failures,
	}
}

// -----------------------------------------------------------------------------
// HTTP mapping
// -----------------------------------------------------------------------------

// StatusCode maps an error from the pipeline to the HTTP status returned to clients.
func StatusCode(err error) int {
	var (
		validation  *ValidationError
		noData      *NoValidDataError
		notAllowed  *MethodNotAllowedError
		emptySeries *EmptySeriesError
		upstream    *UpstreamError
		renderer    *RendererError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &noData):
		return http.StatusNotFound
	case errors.As(err, &notAllowed):
		return http.StatusMethodNotAllowed
	case errors.As(err, &emptySeries):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.As(err, &renderer):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	if log == nil {
		log = logger.NewLogger(nil, "ErrorHandler")
	}
	return &ErrorHandler{Logger: log}
}

// -----------------------------------------------------------------------------

// Handle logs err at a level matching its status class and returns the status.
func (e *ErrorHandler) Handle(err error, context string) int {
	status := StatusCode(err)
	if err == nil {
		return status
	}
	if status >= http.StatusInternalServerError {
		e.Logger.Error("Error in %s: %v", context, err)
	} else {
		e.Logger.Warning("Error in %s: %v", context, err)
	}
	return status
}
