package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"market-charts/src/helpers"
	"market-charts/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig loads the YAML file (optional), the .env file (optional), applies
// environment overrides and defaults, then validates.
func NewConfig(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var modelConfig models.MConfig

	// 1. Read the YAML file content when present
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &modelConfig); err != nil {
				return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
			}
		}
	}

	config := &Config{MConfig: &modelConfig}

	// 2. Secrets and deployment knobs come from the environment
	config.applyEnv()
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyEnv() {
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.History.FinnhubAPIKey = v
	}
	if v := os.Getenv("QUICKCHART_API_KEY"); v != "" {
		c.Chart.RendererAPIKey = v
	}
	if v := os.Getenv("HISTORY_PROVIDER"); v != "" {
		c.History.Provider = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DB_CONNECTION_STRING"); v != "" {
		c.Storage.DBConnectionString = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "market-charts"
	}
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.GrpcHost == "" {
		c.GrpcHost = c.Host
	}

	if c.Network.RequestTimeout == 0 {
		c.Network.RequestTimeout = 10
	}

	if c.History.Provider == "" {
		c.History.Provider = "yahoo"
	}
	if c.History.YahooBaseURL == "" {
		c.History.YahooBaseURL = "https://query1.finance.yahoo.com"
	}
	if c.History.FinnhubBaseURL == "" {
		c.History.FinnhubBaseURL = "https://finnhub.io/api/v1"
	}

	if c.Chart.MaxSymbols == 0 {
		c.Chart.MaxSymbols = 5
	}
	if c.Chart.SampleBudget == 0 {
		c.Chart.SampleBudget = 50
	}
	if c.Chart.PadFactor == 0 {
		c.Chart.PadFactor = 0.1
	}
	if c.Chart.RendererURL == "" {
		c.Chart.RendererURL = "https://quickchart.io"
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = 800
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = 400
	}
	if c.Chart.DevicePixelRatio == 0 {
		c.Chart.DevicePixelRatio = 2
	}
	if c.Chart.BackgroundColor == "" {
		c.Chart.BackgroundColor = "white"
	}
	if c.Chart.Format == "" {
		c.Chart.Format = "png"
	}

	if c.Storage.DBType == "" {
		c.Storage.DBType = "none"
	}
	if c.Storage.RetentionDays == 0 {
		c.Storage.RetentionDays = 30
	}
	if c.Storage.CleanupCron == "" {
		c.Storage.CleanupCron = "@daily"
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return helpers.NewConfigurationError("application name cannot be empty")
	}

	if c.Host == "" {
		return helpers.NewConfigurationError("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return helpers.NewConfigurationError("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort < 0 || c.GrpcPort > 65535 {
		return helpers.NewConfigurationError("invalid grpc port number: %d", c.GrpcPort)
	}
	if c.GrpcPort != 0 && c.GrpcPort == c.Port {
		return helpers.NewConfigurationError("grpc port must differ from http port")
	}

	if c.Network.RequestTimeout <= 0 {
		return helpers.NewConfigurationError("request timeout must be greater than 0")
	}

	switch strings.ToLower(c.History.Provider) {
	case "yahoo":
	case "finnhub":
		if c.History.FinnhubAPIKey == "" {
			return helpers.NewConfigurationError("history provider finnhub requires FINNHUB_API_KEY")
		}
	default:
		return helpers.NewConfigurationError("unsupported history provider: %s", c.History.Provider)
	}

	if c.Chart.MaxSymbols <= 0 {
		return helpers.NewConfigurationError("chart.max_symbols must be greater than 0")
	}
	if c.Chart.SampleBudget <= 0 {
		return helpers.NewConfigurationError("chart.sample_budget must be greater than 0")
	}
	if c.Chart.PadFactor < 0 {
		return helpers.NewConfigurationError("chart.pad_factor cannot be negative")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return helpers.NewConfigurationError("chart dimensions must be positive")
	}
	switch c.Chart.Format {
	case "png", "jpg", "webp", "svg":
	default:
		return helpers.NewConfigurationError("unsupported chart format: %s", c.Chart.Format)
	}

	switch c.Storage.DBType {
	case "none":
	case "sqlite":
		if c.Storage.DBPath == "" {
			return helpers.NewConfigurationError("database path cannot be empty for sqlite")
		}
	case "postgres", "mysql":
		if c.Storage.DBConnectionString == "" {
			return helpers.NewConfigurationError("database connection string cannot be empty for %s", c.Storage.DBType)
		}
	default:
		return helpers.NewConfigurationError("unsupported database type: %s", c.Storage.DBType)
	}
	if c.Storage.RetentionDays < 0 {
		return helpers.NewConfigurationError("retention days cannot be negative")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path.
// Secrets are blanked so they stay in the environment.
func (c *Config) Save(configPath string) error {
	out := *c.MConfig
	out.History.FinnhubAPIKey = ""
	out.Chart.RendererAPIKey = ""
	out.Storage.DBConnectionString = ""

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
