package matchform

import (
	"context"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
)

// AuthenticatedClient is the transport the workflow talks to. It owns
// credentials and failure classification; *leagueapi.Client satisfies it.
type AuthenticatedClient interface {
	CheckConflict(ctx context.Context, q leagueapi.ConflictQuery) (fixtures.ConflictResult, error)
	CreateMatch(ctx context.Context, payload leagueapi.MatchPayload) (fixtures.Fixture, error)
	UpdateMatch(ctx context.Context, id int64, payload leagueapi.MatchPayload) (fixtures.Fixture, error)
}

var _ AuthenticatedClient = (*leagueapi.Client)(nil)
