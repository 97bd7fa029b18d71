package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"market-charts/src/analysis"
	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Charts   *analysis.AnalysisFacade
	Renderer interfaces.IChartRenderer
	Quotes   interfaces.IQuoteProvider
	Journal  interfaces.IJournal
	Sources  []string
	Errors   *helpers.ErrorHandler

	engine     *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(
	cfg *models.MConfig,
	charts *analysis.AnalysisFacade,
	renderer interfaces.IChartRenderer,
	quotes interfaces.IQuoteProvider,
	journal interfaces.IJournal,
	sources []string,
	log *logger.Logger,
) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = logger.NewLogger(cfg, "APIServer")
	}

	s := &APIServer{
		Config:    cfg,
		Logger:    log,
		Charts:    charts,
		Renderer:  renderer,
		Quotes:    quotes,
		Journal:   journal,
		Sources:   sources,
		Errors:    helpers.NewErrorHandler(log),
		engine:    gin.New(),
		startedAt: time.Now(),
	}

	s.engine.HandleMethodNotAllowed = true
	s.engine.Use(s.recovery(), requestID(), s.requestLogger(), cors())
	s.engine.NoMethod(s.methodNotAllowed)

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	api := s.engine.Group("/api")

	api.POST("/generate-chart", s.generateChart)
	api.GET("/stock-data", s.stockData)
	api.POST("/stock-data", s.stockData)
	api.GET("/stock-history", s.stockHistory)
	api.GET("/health", s.getHealth)
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *APIServer) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.Logger.Info("Stopping server...")
	return s.httpServer.Shutdown(ctx)
}

// -----------------------------------------------------------------------------

// record writes request metadata to the journal. Failures are logged only.
func (s *APIServer) record(c *gin.Context, endpoint string, symbols []string, token string, status, succeeded, failed int, started time.Time) {
	if s.Journal == nil {
		return
	}
	entry := models.MJournalEntry{
		ID:          c.GetString(requestIDKey),
		RequestedAt: started,
		Endpoint:    endpoint,
		Symbols:     symbols,
		RangeToken:  token,
		Status:      status,
		Succeeded:   succeeded,
		Failed:      failed,
		DurationMs:  time.Since(started).Milliseconds(),
	}
	if err := s.Journal.Record(entry); err != nil {
		s.Logger.Warning("Journal write failed for %s: %v", endpoint, err)
	}
}
