package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
)

// LeagueCall is one request seen by StubLeagueClient.
type LeagueCall struct {
	Op      string
	ID      int64
	Query   leagueapi.ConflictQuery
	Payload leagueapi.MatchPayload
}

// StubLeagueClient stands in for the league API. It records every call and
// answers from its fields. Set Gate to hold CheckConflict until it is closed.
type StubLeagueClient struct {
	Conflict    fixtures.ConflictResult
	ConflictErr error
	CreateErr   error
	UpdateErr   error
	GetErr      error
	Fixture     fixtures.Fixture
	Catalog     refdata.Catalog
	RefErr      error
	Gate        chan struct{}
	// Entered is closed once CheckConflict has been called, when non-nil.
	Entered chan struct{}

	mu      sync.Mutex
	calls   []LeagueCall
	entered sync.Once
}

func (s *StubLeagueClient) record(c LeagueCall) {
	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (s *StubLeagueClient) Calls() []LeagueCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LeagueCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded calls for op.
func (s *StubLeagueClient) CallsTo(op string) []LeagueCall {
	var out []LeagueCall
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Mutations returns the recorded create and update calls.
func (s *StubLeagueClient) Mutations() []LeagueCall {
	return append(s.CallsTo(leagueapi.OpCreateMatch), s.CallsTo(leagueapi.OpUpdateMatch)...)
}

func (s *StubLeagueClient) CheckConflict(ctx context.Context, q leagueapi.ConflictQuery) (fixtures.ConflictResult, error) {
	s.record(LeagueCall{Op: leagueapi.OpCheckConflict, Query: q})
	if s.Entered != nil {
		s.entered.Do(func() { close(s.Entered) })
	}
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return fixtures.ConflictResult{}, ctx.Err()
		}
	}
	if s.ConflictErr != nil {
		return fixtures.ConflictResult{}, s.ConflictErr
	}
	return s.Conflict, nil
}

func (s *StubLeagueClient) CreateMatch(ctx context.Context, payload leagueapi.MatchPayload) (fixtures.Fixture, error) {
	s.record(LeagueCall{Op: leagueapi.OpCreateMatch, Payload: payload})
	if s.CreateErr != nil {
		return fixtures.Fixture{}, s.CreateErr
	}
	return echoFixture(1, payload), nil
}

func (s *StubLeagueClient) UpdateMatch(ctx context.Context, id int64, payload leagueapi.MatchPayload) (fixtures.Fixture, error) {
	s.record(LeagueCall{Op: leagueapi.OpUpdateMatch, ID: id, Payload: payload})
	if s.UpdateErr != nil {
		return fixtures.Fixture{}, s.UpdateErr
	}
	return echoFixture(id, payload), nil
}

func (s *StubLeagueClient) GetMatch(ctx context.Context, id int64) (fixtures.Fixture, error) {
	s.record(LeagueCall{Op: leagueapi.OpGetMatch, ID: id})
	if s.GetErr != nil {
		return fixtures.Fixture{}, s.GetErr
	}
	f := s.Fixture
	f.ID = id
	return f, nil
}

func (s *StubLeagueClient) Seasons(context.Context) ([]refdata.Season, error) {
	return s.Catalog.Seasons, s.RefErr
}

func (s *StubLeagueClient) AgeGroups(context.Context) ([]refdata.AgeGroup, error) {
	return s.Catalog.AgeGroups, s.RefErr
}

func (s *StubLeagueClient) MatchTypes(context.Context) ([]refdata.MatchType, error) {
	return s.Catalog.MatchTypes, s.RefErr
}

func (s *StubLeagueClient) Divisions(context.Context) ([]refdata.Division, error) {
	return s.Catalog.Divisions, s.RefErr
}

func (s *StubLeagueClient) Teams(context.Context) ([]refdata.Team, error) {
	return s.Catalog.Teams, s.RefErr
}

func echoFixture(id int64, p leagueapi.MatchPayload) fixtures.Fixture {
	return fixtures.Fixture{
		ID:          id,
		Date:        p.Date,
		MatchTypeID: p.MatchTypeID,
		AgeGroupID:  deref(p.AgeGroupID),
		SeasonID:    deref(p.SeasonID),
		DivisionID:  deref(p.DivisionID),
		HomeTeamID:  p.HomeTeamID,
		AwayTeamID:  p.AwayTeamID,
		HomeScore:   p.HomeScore,
		AwayScore:   p.AwayScore,
		Status:      p.Status,
	}
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
