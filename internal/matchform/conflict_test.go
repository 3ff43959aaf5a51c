package matchform

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/testutil"
)

func TestConflictCheckerSendsIdentifyingFields(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true, MatchID: 99}}

	got, err := NewConflictChecker(client).Check(context.Background(), testutil.ScoreDraft(1, 0))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Exists || got.MatchID != 99 {
		t.Fatalf("unexpected result %+v", got)
	}

	q := client.Calls()[0].Query
	if q.Date != "2025-01-15" || q.HomeTeamID != 1 || q.AwayTeamID != 2 || q.MatchTypeID != testutil.FriendlyTypeID {
		t.Fatalf("unexpected query %+v", q)
	}
}

func TestConflictCheckerFailureIsNotAbsence(t *testing.T) {
	boom := errors.New("backend down")
	client := &testutil.StubLeagueClient{ConflictErr: boom}

	got, err := NewConflictChecker(client).Check(context.Background(), testutil.ScheduleDraft())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if got.Exists {
		t.Fatal("expected zero result on failure")
	}
}

func TestConflictCheckerKeepsConflictWithoutID(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true}}

	got, err := NewConflictChecker(client).Check(context.Background(), testutil.ScheduleDraft())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Exists || got.MatchID != 0 {
		t.Fatalf("expected exists without id, got %+v", got)
	}
}

func TestConflictCheckerDropsStrayMatchID(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: false, MatchID: 12}}

	got, err := NewConflictChecker(client).Check(context.Background(), testutil.ScheduleDraft())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.MatchID != 0 {
		t.Fatalf("expected match id cleared when no conflict, got %d", got.MatchID)
	}
}
