package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"market-charts/src/config"
	"market-charts/src/helpers"
	"market-charts/src/logger"
	"market-charts/src/server"
	"market-charts/src/storage"
)

// -----------------------------------------------------------------------------

func main() {
	// 1. Parse command line flags
	defaultConfig := os.Getenv("CONFIG_FILE")
	if defaultConfig == "" {
		defaultConfig = "config/default.yaml"
	}
	configPath := flag.String("config", defaultConfig, "path to config file")
	dumpConfig := flag.String("dump-config", "", "write the effective config (secrets blanked) to this path and exit")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfig != "" {
		if err := conf.Save(*dumpConfig); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Effective config written to %s\n", *dumpConfig)
		return
	}

	// 3. Setup Logger
	appLogger := logger.NewLogger(conf, conf.Name)
	appLogger.Info("Memory Limit set to: %d MB", helpers.ApplyMemoryLimit())

	// 4. Setup Components
	journal, err := setupJournal(conf.MConfig, appLogger)
	if err != nil {
		os.Exit(1)
	}
	defer journal.Close()

	networkManager := setupNetwork(conf.MConfig)
	registry, err := setupDataSources(conf.MConfig, appLogger, networkManager)
	if err != nil {
		appLogger.Critical("%v", err)
	}

	charts := setupAnalysis(conf.MConfig, registry.Default())
	srv := server.NewAPIServer(
		conf.MConfig,
		charts,
		setupRenderer(conf.MConfig, networkManager),
		setupQuotes(conf.MConfig, networkManager),
		journal,
		registry.Names(),
		logger.NewLogger(conf, "APIServer"),
	)

	var retention *storage.Retention
	if journal.Backend() != "none" {
		retention, err = storage.NewRetention(journal, conf.Storage.CleanupCron, conf.Storage.RetentionDays, logger.NewLogger(conf, "Retention"))
		if err != nil {
			appLogger.Critical("%v", err)
		}
	}

	// 5. Start Servers
	running := startServers(srv, retention, conf, appLogger)

	// 6. Wait for a signal or a server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Received %s, shutting down...", sig)
	case err := <-running.errs:
		appLogger.Error("Server failed: %v", err)
	}

	running.stop(appLogger)
	appLogger.Info("Shutdown complete.")
}
