package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	GrpcHost string         `yaml:"grpc_host"`
	GrpcPort int            `yaml:"grpc_port"`
	Network  MNetworkConfig `yaml:"network"`
	History  MHistoryConfig `yaml:"history"`
	Chart    MChartConfig   `yaml:"chart"`
	Storage  MStorageConfig `yaml:"storage"`
}

type MNetworkConfig struct {
	Proxies        []string `yaml:"proxies"`
	RequestTimeout int      `yaml:"timeout"` // seconds, applied per outbound call
	UserAgent      string   `yaml:"user_agent"`
}

type MHistoryConfig struct {
	Provider         string `yaml:"provider"` // "yahoo" or "finnhub"
	YahooBaseURL     string `yaml:"yahoo_base_url"`
	FinnhubBaseURL   string `yaml:"finnhub_base_url"`
	FinnhubAPIKey    string `yaml:"finnhub_api_key"`
	HourlyShortRange bool   `yaml:"hourly_short_range"`
}

type MChartConfig struct {
	MaxSymbols       int     `yaml:"max_symbols"`
	SampleBudget     int     `yaml:"sample_budget"`
	PadFactor        float64 `yaml:"pad_factor"`
	RendererURL      string  `yaml:"renderer_url"`
	RendererAPIKey   string  `yaml:"renderer_api_key"`
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
	BackgroundColor  string  `yaml:"background_color"`
	Format           string  `yaml:"format"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"` // none, sqlite, postgres, mysql
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	RetentionDays      int    `yaml:"retention_days"`
	CleanupCron        string `yaml:"cleanup_cron"`
}

// -----------------------------------------------------------------------------

// GetLogLevel lets the logger read the level without importing config.
func (c *MConfig) GetLogLevel() string {
	if c == nil {
		return ""
	}
	return c.LogLevel
}
