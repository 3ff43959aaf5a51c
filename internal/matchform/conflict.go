package matchform

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
)

// ConflictChecker asks the backend whether a fixture already exists for the
// draft's date and teams.
type ConflictChecker struct {
	client AuthenticatedClient
}

// NewConflictChecker builds a checker over client.
func NewConflictChecker(client AuthenticatedClient) *ConflictChecker {
	return &ConflictChecker{client: client}
}

// Check runs the read-only duplicate lookup. A failed lookup is returned as
// an error, never as a missing conflict.
func (c *ConflictChecker) Check(ctx context.Context, d fixtures.Draft) (fixtures.ConflictResult, error) {
	f := d.Common()
	res, err := c.client.CheckConflict(ctx, leagueapi.ConflictQuery{
		Date:        strings.TrimSpace(f.Date),
		HomeTeamID:  f.HomeTeamID,
		AwayTeamID:  f.AwayTeamID,
		MatchTypeID: f.MatchTypeID,
	})
	if err != nil {
		return fixtures.ConflictResult{}, fmt.Errorf("check conflict: %w", err)
	}
	if !res.Exists {
		return fixtures.ConflictResult{}, nil
	}
	return res, nil
}
