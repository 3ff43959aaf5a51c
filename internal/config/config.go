package config

// Config holds runtime configuration for the service and the CLI.
type Config struct {
	Port    string
	FormTTL Duration
	CORS    CORSConfig
	League  LeagueAPIConfig
	RefData RefDataConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// CORSConfig lists the dashboard origins allowed to call the service.
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig mirrors logging.Config without importing it.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		FormTTL: durationEnvOrDefault(envFormTTL, defaultFormTTL),
		CORS: CORSConfig{
			AllowOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		},
		League:  loadLeagueAPI(),
		RefData: loadRefData(),
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
	}
}
