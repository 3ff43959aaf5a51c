package refdata

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
)

// Source kinds accepted by Select.
const (
	KindAPI    = "api"
	KindStatic = "static"
)

// Select picks where form reference data is read from. The api kind wraps
// the league client with retries; unknown kinds fall back to it.
func Select(kind string, api Source, retries int, logger *slog.Logger) Source {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindStatic:
		logging.Info(logger, "using static reference data")
		return NewStaticSource()
	case KindAPI, "":
	default:
		logging.Warn(logger, "unknown reference data source, using league api", "source", kind)
	}
	return NewRetryingSource(api, logger, retries, 0)
}
