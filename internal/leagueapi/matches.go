package leagueapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
)

// CheckConflict asks whether a fixture already exists for the date and teams.
func (c *Client) CheckConflict(ctx context.Context, q ConflictQuery) (fixtures.ConflictResult, error) {
	params := url.Values{}
	params.Set("date", q.Date)
	params.Set("home_team_id", strconv.FormatInt(q.HomeTeamID, 10))
	params.Set("away_team_id", strconv.FormatInt(q.AwayTeamID, 10))
	if q.MatchTypeID != 0 {
		params.Set("match_type_id", strconv.FormatInt(q.MatchTypeID, 10))
	}

	var resp conflictResponse
	err := c.do(ctx, call{op: OpCheckConflict, method: http.MethodGet, path: "/matches/conflict", query: params}, &resp)
	if err != nil {
		return fixtures.ConflictResult{}, err
	}
	return mapConflict(resp), nil
}

// CreateMatch posts a new fixture to the collection.
func (c *Client) CreateMatch(ctx context.Context, payload MatchPayload) (fixtures.Fixture, error) {
	cl := call{op: OpCreateMatch, method: http.MethodPost, path: "/matches", body: payload}
	if c.newKey != nil {
		cl.headers = map[string]string{headerIdempotencyKey: c.newKey()}
	}

	var rec matchRecord
	if err := c.do(ctx, cl, &rec); err != nil {
		return fixtures.Fixture{}, err
	}
	return mapMatch(rec), nil
}

// UpdateMatch replaces the fixture identified by id.
func (c *Client) UpdateMatch(ctx context.Context, id int64, payload MatchPayload) (fixtures.Fixture, error) {
	var rec matchRecord
	err := c.do(ctx, call{op: OpUpdateMatch, method: http.MethodPut, path: matchPath(id), body: payload}, &rec)
	if err != nil {
		return fixtures.Fixture{}, err
	}
	return mapMatch(rec), nil
}

// GetMatch loads a single fixture, used to pre-populate an edit form.
func (c *Client) GetMatch(ctx context.Context, id int64) (fixtures.Fixture, error) {
	var rec matchRecord
	if err := c.do(ctx, call{op: OpGetMatch, method: http.MethodGet, path: matchPath(id)}, &rec); err != nil {
		return fixtures.Fixture{}, err
	}
	return mapMatch(rec), nil
}

func matchPath(id int64) string {
	return "/matches/" + strconv.FormatInt(id, 10)
}
