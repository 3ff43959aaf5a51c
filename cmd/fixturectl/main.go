// Command fixturectl schedules fixtures and records results against the
// league API from the command line.
//
// Usage:
//
//	fixturectl schedule --date 2025-01-15 --home 1 --away 2 --match-type 2
//	fixturectl score --date 2025-01-15 --home 1 --away 2 --match-type 2 --home-score 3 --away-score 1
//	fixturectl conflicts --date 2025-01-15 --home 1 --away 2
package main

import (
	"os"

	"github.com/preston-bernstein/league-fixtures-service/internal/config"
	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
)

func main() {
	_ = config.LoadDotEnv()
	cfg := config.Load()

	a := &app{
		cfg: cfg,
		logger: logging.NewLogger(logging.Config{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			Service: "fixturectl",
			Output:  os.Stderr,
		}),
		out:       os.Stdout,
		newClient: newLeagueClient,
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
