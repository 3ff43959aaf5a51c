package leagueapi

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
)

// Seasons lists seasons.
func (c *Client) Seasons(ctx context.Context) ([]refdata.Season, error) {
	var out []refdata.Season
	if err := c.list(ctx, OpSeasons, "/seasons", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgeGroups lists age groups.
func (c *Client) AgeGroups(ctx context.Context) ([]refdata.AgeGroup, error) {
	var out []refdata.AgeGroup
	if err := c.list(ctx, OpAgeGroups, "/age-groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MatchTypes lists match types.
func (c *Client) MatchTypes(ctx context.Context) ([]refdata.MatchType, error) {
	var out []refdata.MatchType
	if err := c.list(ctx, OpMatchTypes, "/match-types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Divisions lists divisions.
func (c *Client) Divisions(ctx context.Context) ([]refdata.Division, error) {
	var out []refdata.Division
	if err := c.list(ctx, OpDivisions, "/divisions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Teams lists teams.
func (c *Client) Teams(ctx context.Context) ([]refdata.Team, error) {
	var out []refdata.Team
	if err := c.list(ctx, OpTeams, "/teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, call{op: op, method: http.MethodGet, path: path}, out)
}
