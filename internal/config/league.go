package config

// LeagueAPIConfig controls how we talk to the league REST API.
type LeagueAPIConfig struct {
	BaseURL           string
	Token             string
	Timeout           Duration
	RequestsPerSecond int
	// IdempotencyKeys attaches an Idempotency-Key header to create requests.
	IdempotencyKeys bool
}

// RefDataConfig selects where reference data comes from.
type RefDataConfig struct {
	Source  string // "api" or "static"
	Retries int
}

func loadLeagueAPI() LeagueAPIConfig {
	return LeagueAPIConfig{
		BaseURL:           envOrDefault(envLeagueBaseURL, defaultLeagueBaseURL),
		Token:             envOrDefault(envLeagueToken, ""),
		Timeout:           durationEnvOrDefault(envLeagueTimeout, defaultLeagueTimeout),
		RequestsPerSecond: intEnvOrDefault(envLeagueRPS, defaultLeagueRPS),
		IdempotencyKeys:   boolEnvOrDefault(envLeagueIdempotency, false),
	}
}

func loadRefData() RefDataConfig {
	return RefDataConfig{
		Source:  envOrDefault(envRefDataSource, defaultRefDataSource),
		Retries: intEnvOrDefault(envRefDataRetries, defaultRefDataTries),
	}
}
