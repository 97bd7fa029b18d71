package main

import (
	"fmt"
	"strings"

	"market-charts/src/analysis"
	datasource "market-charts/src/data_source"
	"market-charts/src/data_source/finnhub"
	"market-charts/src/data_source/yahoo"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"
	"market-charts/src/network"
	"market-charts/src/render"
	"market-charts/src/storage"
	"market-charts/src/utils"
)

// -----------------------------------------------------------------------------

// setupJournal opens the request journal selected by storage.db_type
func setupJournal(config *models.MConfig, appLogger *logger.Logger) (interfaces.IJournal, error) {
	journalLogger := logger.NewLogger(config, "Journal")
	journal, err := storage.NewJournal(config, journalLogger)
	if err != nil {
		appLogger.Error("Failed to init journal: %v", err)
		return nil, err
	}
	if err := journal.Initialize(); err != nil {
		appLogger.Error("Failed to migrate journal: %v", err)
		return nil, err
	}
	appLogger.Info("Request journal backend: %s", journal.Backend())
	return journal, nil
}

// -----------------------------------------------------------------------------

// setupNetwork initializes the network manager
func setupNetwork(config *models.MConfig) interfaces.INetworkManager {
	networkLogger := logger.NewLogger(config, "NetworkManager")
	return network.NewNetworkManager(config, networkLogger)
}

// -----------------------------------------------------------------------------

// setupDataSources registers every history source; finnhub only when a key is configured
func setupDataSources(config *models.MConfig, appLogger *logger.Logger, networkManager interfaces.INetworkManager) (*datasource.SourceRegistry, error) {
	appLogger.Info("Initializing history sources...")

	sources := []interfaces.IHistorySource{yahoo.NewYahooHistorySource(config, networkManager)}
	if config.History.FinnhubAPIKey != "" {
		sources = append(sources, finnhub.NewFinnhubHistorySource(config, networkManager))
	} else {
		appLogger.Warning("FINNHUB_API_KEY not set: finnhub history and stock-data lookups will be rejected upstream")
	}

	registry, err := datasource.NewSourceRegistry(strings.ToLower(config.History.Provider), sources, appLogger)
	if err != nil {
		return nil, fmt.Errorf("history sources: %w", err)
	}
	return registry, nil
}

// -----------------------------------------------------------------------------

// setupAnalysis initializes the chart pipeline on the default history source
func setupAnalysis(config *models.MConfig, source interfaces.IHistorySource) *analysis.AnalysisFacade {
	analysisLogger := logger.NewLogger(config, "Analysis")
	return analysis.NewAnalysisFacade(config, source, utils.SessionCounter{}, analysisLogger)
}

// -----------------------------------------------------------------------------

func setupRenderer(config *models.MConfig, networkManager interfaces.INetworkManager) interfaces.IChartRenderer {
	return render.NewQuickChartRenderer(config, networkManager)
}

// -----------------------------------------------------------------------------

func setupQuotes(config *models.MConfig, networkManager interfaces.INetworkManager) interfaces.IQuoteProvider {
	return finnhub.NewQuoteProvider(config, networkManager)
}
