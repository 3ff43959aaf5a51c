package config

import "time"

const (
	envPort         = "PORT"
	envFormTTL      = "FORM_TTL"
	envCORSOrigins  = "CORS_ALLOW_ORIGINS"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLeagueBaseURL     = "LEAGUE_API_BASE_URL"
	envLeagueToken       = "LEAGUE_API_TOKEN"
	envLeagueTimeout     = "LEAGUE_API_TIMEOUT"
	envLeagueRPS         = "LEAGUE_API_RPS"
	envLeagueIdempotency = "LEAGUE_API_IDEMPOTENCY"
	envRefDataSource     = "REFDATA_SOURCE"
	envRefDataRetries    = "REFDATA_RETRIES"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultServiceName = "league-fixtures-service"
	// Forms are abandoned when a tab is closed without teardown; sweep them after this long idle.
	defaultFormTTL = 30 * Duration(time.Minute)

	defaultLeagueBaseURL = "http://localhost:8080/api"
	defaultLeagueTimeout = 10 * Duration(time.Second)
	defaultLeagueRPS     = 10
	defaultRefDataSource = "api"
	defaultRefDataTries  = 3
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}
