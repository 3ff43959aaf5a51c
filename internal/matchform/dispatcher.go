package matchform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
)

// ErrAlreadyScheduled is matched by errors.Is on every *ConflictError.
var ErrAlreadyScheduled = errors.New("fixture already scheduled")

// ErrConflictWithoutID is returned when a result must amend an existing
// fixture but the backend did not say which one it is.
var ErrConflictWithoutID = errors.New("conflict reported without match id")

// ConflictError rejects a schedule request that duplicates an existing fixture.
// MatchID is zero when the backend did not identify the duplicate.
type ConflictError struct {
	MatchID int64
}

func (e *ConflictError) Error() string {
	if e.MatchID == 0 {
		return "fixture already scheduled for this date and teams"
	}
	return fmt.Sprintf("fixture already scheduled for this date and teams (match %d)", e.MatchID)
}

func (e *ConflictError) Unwrap() error { return ErrAlreadyScheduled }

// Dispatcher turns a validated draft plus its conflict result into exactly
// one create or update call. It never retries.
type Dispatcher struct {
	client AuthenticatedClient
}

// NewDispatcher builds a dispatcher over client.
func NewDispatcher(client AuthenticatedClient) *Dispatcher {
	return &Dispatcher{client: client}
}

// Dispatch applies the create/update decision table:
//
//	schedule, no conflict  create without scores
//	schedule, conflict     reject with *ConflictError
//	score, no conflict     create with scores, status completed
//	score, conflict        update conflict.MatchID with scores
func (d *Dispatcher) Dispatch(ctx context.Context, draft fixtures.Draft, conflict fixtures.ConflictResult) (fixtures.SubmissionOutcome, error) {
	switch v := draft.(type) {
	case fixtures.ScheduleDraft:
		if conflict.Exists {
			return fixtures.SubmissionOutcome{}, &ConflictError{MatchID: conflict.MatchID}
		}
		return d.create(ctx, buildPayload(v.Fields, scheduleStatus(v.Status)))

	case fixtures.ScoreDraft:
		home, homeOK := v.HomeScore.Int()
		away, awayOK := v.AwayScore.Int()
		if !homeOK || !awayOK {
			return fixtures.SubmissionOutcome{}, ValidationErrors{{Field: "scores", Message: MsgScoresRequired}}
		}
		if !conflict.Exists {
			payload := buildPayload(v.Fields, fixtures.StatusCompleted)
			payload.HomeScore, payload.AwayScore = &home, &away
			return d.create(ctx, payload)
		}
		if conflict.MatchID == 0 {
			return fixtures.SubmissionOutcome{}, fmt.Errorf("dispatch: %w", ErrConflictWithoutID)
		}
		payload := buildPayload(v.Fields, scoredStatus(v.Status))
		payload.HomeScore, payload.AwayScore = &home, &away
		return d.update(ctx, conflict.MatchID, payload)

	default:
		return fixtures.SubmissionOutcome{}, fmt.Errorf("dispatch: unsupported draft %T", draft)
	}
}

func (d *Dispatcher) create(ctx context.Context, payload leagueapi.MatchPayload) (fixtures.SubmissionOutcome, error) {
	rec, err := d.client.CreateMatch(ctx, payload)
	if err != nil {
		return fixtures.SubmissionOutcome{}, fmt.Errorf("create fixture: %w", err)
	}
	return fixtures.SubmissionOutcome{Verb: fixtures.VerbCreate, Record: rec}, nil
}

func (d *Dispatcher) update(ctx context.Context, id int64, payload leagueapi.MatchPayload) (fixtures.SubmissionOutcome, error) {
	rec, err := d.client.UpdateMatch(ctx, id, payload)
	if err != nil {
		return fixtures.SubmissionOutcome{}, fmt.Errorf("update fixture %d: %w", id, err)
	}
	return fixtures.SubmissionOutcome{Verb: fixtures.VerbUpdate, TargetID: id, Record: rec}, nil
}

func buildPayload(f fixtures.Fields, status fixtures.Status) leagueapi.MatchPayload {
	return leagueapi.MatchPayload{
		MatchTypeID: f.MatchTypeID,
		AgeGroupID:  leagueapi.OptionalID(f.AgeGroupID),
		DivisionID:  leagueapi.OptionalID(f.DivisionID),
		SeasonID:    leagueapi.OptionalID(f.SeasonID),
		HomeTeamID:  f.HomeTeamID,
		AwayTeamID:  f.AwayTeamID,
		Date:        strings.TrimSpace(f.Date),
		Status:      status,
	}
}

func scheduleStatus(s fixtures.Status) fixtures.Status {
	if s == "" {
		return fixtures.StatusScheduled
	}
	return s
}

// A scored fixture has been played, so scheduled is promoted to completed.
func scoredStatus(s fixtures.Status) fixtures.Status {
	if s == "" || s == fixtures.StatusScheduled {
		return fixtures.StatusCompleted
	}
	return s
}
