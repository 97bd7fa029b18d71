// Command render builds one chart from the command line, without the HTTP API.
// It prints the chart specification with -spec, otherwise it writes the image.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"market-charts/src/analysis"
	"market-charts/src/config"
	"market-charts/src/data_source/finnhub"
	"market-charts/src/data_source/yahoo"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/network"
	"market-charts/src/render"
	"market-charts/src/utils"
)

// -----------------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	symbols := flag.String("symbols", "AAPL", "comma separated ticker symbols")
	rangeToken := flag.String("range", "1Y", "range token: 1M, 3M, 6M, 1Y, 5Y")
	out := flag.String("out", "chart.png", "output image path")
	specOnly := flag.Bool("spec", false, "print the chart specification as JSON instead of rendering")
	flag.Parse()

	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.NewLogger(conf, "render")

	netMgr := network.NewNetworkManager(conf.MConfig, logger.NewLogger(conf, "NetworkManager"))

	var source interfaces.IHistorySource = yahoo.NewYahooHistorySource(conf.MConfig, netMgr)
	if strings.EqualFold(conf.History.Provider, "finnhub") {
		source = finnhub.NewFinnhubHistorySource(conf.MConfig, netMgr)
	}
	charts := analysis.NewAnalysisFacade(conf.MConfig, source, utils.SessionCounter{}, appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := charts.BuildChart(ctx, strings.Split(*symbols, ","), *rangeToken)
	if err != nil {
		appLogger.Critical("build chart: %v", err)
	}
	for _, line := range result.Debug {
		appLogger.Info("%s", line)
	}

	if *specOnly {
		data, err := json.MarshalIndent(result.Spec, "", "  ")
		if err != nil {
			appLogger.Critical("encode chart: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	renderer := render.NewQuickChartRenderer(conf.MConfig, netMgr)
	image, err := renderer.Render(ctx, result.Spec, render.OptionsFromConfig(conf.Chart))
	if err != nil {
		appLogger.Critical("render chart: %v", err)
	}
	if err := os.WriteFile(*out, image, 0o644); err != nil {
		appLogger.Critical("write %s: %v", *out, err)
	}
	appLogger.Info("Wrote %s (%d bytes, %s %s)", *out, len(image), strings.Join(result.Symbols, ","), result.Range.Token)
}
