package server

import (
	"log/slog"

	"github.com/preston-bernstein/league-fixtures-service/internal/config"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/league-fixtures-service/internal/refdata"
)

// BuildLeagueClient maps the league section of the config onto an API client.
func BuildLeagueClient(cfg config.LeagueAPIConfig, logger *slog.Logger, recorder *metrics.Recorder) *leagueapi.Client {
	return leagueapi.NewClient(leagueapi.Config{
		BaseURL:           cfg.BaseURL,
		Token:             cfg.Token,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		IdempotencyKeys:   cfg.IdempotencyKeys,
		Logger:            logger,
		Recorder:          recorder,
	})
}

func selectRefSource(cfg config.RefDataConfig, client refdata.Source, logger *slog.Logger) refdata.Source {
	return refdata.Select(cfg.Source, client, cfg.Retries, logger)
}
