package matchform

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/league-fixtures-service/internal/testutil"
)

func newTestController(client *testutil.StubLeagueClient, draft fixtures.Draft) (*Controller, *metrics.Recorder) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	return NewController(Config{
		Client:   client,
		Lookup:   testutil.SampleCatalog(),
		Draft:    draft,
		Logger:   logger,
		Recorder: rec,
	}), rec
}

func TestSubmitSameTeamsMakesNoNetworkCalls(t *testing.T) {
	client := &testutil.StubLeagueClient{}
	d := testutil.ScheduleDraft()
	d.AwayTeamID = d.HomeTeamID
	c, rec := newTestController(client, d)

	_, err := c.Submit(context.Background())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := len(client.Calls()); n != 0 {
		t.Fatalf("expected zero network calls, got %d", n)
	}
	if !strings.Contains(c.Message(), "same") {
		t.Fatalf("expected message to mention same, got %q", c.Message())
	}
	if c.State() != StateIdleWithError || c.Submitting() {
		t.Fatalf("unexpected state %s submitting=%v", c.State(), c.Submitting())
	}
	if rec.Submissions(metrics.ResultValidation) != 1 {
		t.Fatal("expected validation submission recorded")
	}
}

func TestSubmitLeagueWithoutDivisionMakesNoNetworkCalls(t *testing.T) {
	client := &testutil.StubLeagueClient{}
	d := testutil.ScheduleDraft()
	d.MatchTypeID = testutil.LeagueTypeID
	c, _ := newTestController(client, d)

	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(c.Message(), "Division") {
		t.Fatalf("expected Division message, got %q", c.Message())
	}
	if n := len(client.Calls()); n != 0 {
		t.Fatalf("expected zero network calls, got %d", n)
	}
}

func TestSubmitScheduleCreate(t *testing.T) {
	client := &testutil.StubLeagueClient{}
	c, rec := newTestController(client, testutil.ScheduleDraft())

	out, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Verb != fixtures.VerbCreate || out.Record.Date != "2025-01-15" {
		t.Fatalf("unexpected outcome %+v", out)
	}

	if n := len(client.CallsTo(leagueapi.OpCheckConflict)); n != 1 {
		t.Fatalf("expected one conflict check, got %d", n)
	}
	creates := client.CallsTo(leagueapi.OpCreateMatch)
	if len(creates) != 1 || len(client.Mutations()) != 1 {
		t.Fatalf("expected exactly one create, got %+v", client.Calls())
	}
	if creates[0].Payload.HomeScore != nil || creates[0].Payload.AwayScore != nil {
		t.Fatalf("expected no scores in schedule create, got %+v", creates[0].Payload)
	}

	if c.Message() != "create succeeded" {
		t.Fatalf("unexpected message %q", c.Message())
	}
	f := c.Draft().Common()
	if f.Date != "" || f.HomeTeamID != 0 || c.Draft().Mode() != fixtures.ModeSchedule {
		t.Fatalf("expected draft reset, got %+v", f)
	}
	if c.State() != StateIdleReset || c.Submitting() {
		t.Fatalf("unexpected state %s submitting=%v", c.State(), c.Submitting())
	}
	if rec.Submissions(metrics.ResultOK) != 1 {
		t.Fatal("expected ok submission recorded")
	}
}

func TestSubmitScheduleDuplicate(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true, MatchID: 99}}
	c, rec := newTestController(client, testutil.ScheduleDraft())

	_, err := c.Submit(context.Background())
	var conflict *ConflictError
	if !errors.As(err, &conflict) || conflict.MatchID != 99 {
		t.Fatalf("expected conflict error for 99, got %v", err)
	}
	if n := len(client.Mutations()); n != 0 {
		t.Fatalf("expected zero mutating calls, got %d", n)
	}
	if !strings.Contains(c.Message(), "already scheduled") {
		t.Fatalf("expected already scheduled message, got %q", c.Message())
	}
	if c.Draft().Common().Date != "2025-01-15" {
		t.Fatal("expected draft preserved on error")
	}
	if rec.Submissions(metrics.ResultConflict) != 1 {
		t.Fatal("expected conflict submission recorded")
	}
}

func TestSubmitScheduleDuplicateWithoutMatchID(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true}}
	c, rec := newTestController(client, testutil.ScheduleDraft())

	_, err := c.Submit(context.Background())
	if !errors.Is(err, ErrAlreadyScheduled) {
		t.Fatalf("expected already scheduled error, got %v", err)
	}
	if !strings.Contains(c.Message(), "already scheduled") {
		t.Fatalf("expected already scheduled message, got %q", c.Message())
	}
	if n := len(client.Mutations()); n != 0 {
		t.Fatalf("expected zero mutating calls, got %d", n)
	}
	if c.State() != StateIdleWithError {
		t.Fatalf("expected idle_with_error, got %s", c.State())
	}
	if rec.Submissions(metrics.ResultConflict) != 1 {
		t.Fatal("expected conflict submission recorded")
	}
}

func TestSubmitScoreDuplicateWithoutMatchIDFails(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true}}
	c, _ := newTestController(client, testutil.ScoreDraft(1, 1))

	_, err := c.Submit(context.Background())
	if !errors.Is(err, ErrConflictWithoutID) {
		t.Fatalf("expected ErrConflictWithoutID, got %v", err)
	}
	if c.Message() != MsgSubmitFailed {
		t.Fatalf("unexpected message %q", c.Message())
	}
	if n := len(client.Mutations()); n != 0 {
		t.Fatalf("expected zero mutating calls, got %d", n)
	}
}

func TestSubmitScoreCreate(t *testing.T) {
	client := &testutil.StubLeagueClient{}
	c, _ := newTestController(client, testutil.ScoreDraft(3, 1))

	out, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	creates := client.CallsTo(leagueapi.OpCreateMatch)
	if len(creates) != 1 {
		t.Fatalf("expected one create, got %+v", client.Calls())
	}
	p := creates[0].Payload
	if p.HomeScore == nil || *p.HomeScore != 3 || p.AwayScore == nil || *p.AwayScore != 1 {
		t.Fatalf("expected scores 3-1, got %+v", p)
	}
	if p.Status != fixtures.StatusCompleted {
		t.Fatalf("expected completed status, got %s", p.Status)
	}
	if out.Verb != fixtures.VerbCreate {
		t.Fatalf("unexpected verb %s", out.Verb)
	}
	if c.Draft().Common().Date != "2025-01-15" {
		t.Fatal("expected score draft not to reset")
	}
}

func TestSubmitScoreUpdate(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true, MatchID: 99}}
	c, _ := newTestController(client, testutil.ScoreDraft(2, 1))

	out, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	updates := client.CallsTo(leagueapi.OpUpdateMatch)
	if len(updates) != 1 || len(client.Mutations()) != 1 {
		t.Fatalf("expected exactly one update, got %+v", client.Calls())
	}
	if updates[0].ID != 99 {
		t.Fatalf("expected update to target 99, got %d", updates[0].ID)
	}
	p := updates[0].Payload
	if *p.HomeScore != 2 || *p.AwayScore != 1 {
		t.Fatalf("expected scores 2-1, got %+v", p)
	}
	if out.Verb != fixtures.VerbUpdate || out.TargetID != 99 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if c.Message() != "update succeeded" {
		t.Fatalf("unexpected message %q", c.Message())
	}
	sd, ok := c.Draft().(fixtures.ScoreDraft)
	if !ok || sd.HomeScore != "2" {
		t.Fatalf("expected score draft kept, got %+v", c.Draft())
	}
}

func TestSubmitConflictCheckFailureAborts(t *testing.T) {
	client := &testutil.StubLeagueClient{ConflictErr: &leagueapi.APIError{Op: leagueapi.OpCheckConflict, Kind: leagueapi.KindNetwork}}
	c, rec := newTestController(client, testutil.ScheduleDraft())

	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if n := len(client.Mutations()); n != 0 {
		t.Fatalf("expected no mutation after failed check, got %d", n)
	}
	if c.Message() != MsgSubmitFailed {
		t.Fatalf("expected generic message, got %q", c.Message())
	}
	if c.Draft().Common().HomeTeamID != 1 {
		t.Fatal("expected draft preserved")
	}
	if rec.Submissions(metrics.ResultError) != 1 {
		t.Fatal("expected error submission recorded")
	}
}

func TestSubmitUnauthorizedAsksForSignIn(t *testing.T) {
	client := &testutil.StubLeagueClient{CreateErr: &leagueapi.APIError{Op: leagueapi.OpCreateMatch, Kind: leagueapi.KindUnauthorized, StatusCode: 401}}
	c, rec := newTestController(client, testutil.ScheduleDraft())

	_, err := c.Submit(context.Background())
	if !leagueapi.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if c.Message() != MsgSessionExpired {
		t.Fatalf("expected session message, got %q", c.Message())
	}
	if !strings.Contains(c.Message(), "session") {
		t.Fatal("expected message to reference the session")
	}
	if rec.Submissions(metrics.ResultUnauthorized) != 1 {
		t.Fatal("expected unauthorized submission recorded")
	}
	if len(client.CallsTo(leagueapi.OpCreateMatch)) != 1 {
		t.Fatal("expected no retry after failure")
	}
}

func TestSubmitServerFailureIsGeneric(t *testing.T) {
	client := &testutil.StubLeagueClient{
		Conflict:  fixtures.ConflictResult{Exists: true, MatchID: 4},
		UpdateErr: &leagueapi.APIError{Op: leagueapi.OpUpdateMatch, Kind: leagueapi.KindServer, StatusCode: 503},
	}
	c, _ := newTestController(client, testutil.ScoreDraft(1, 1))

	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(c.Message(), "error:") {
		t.Fatalf("expected error-labelled message, got %q", c.Message())
	}
	if c.State() != StateIdleWithError || c.Submitting() {
		t.Fatalf("unexpected state %s submitting=%v", c.State(), c.Submitting())
	}
}

func TestSubmitRejectsOverlap(t *testing.T) {
	client := &testutil.StubLeagueClient{Gate: make(chan struct{}), Entered: make(chan struct{})}
	c, _ := newTestController(client, testutil.ScheduleDraft())

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	select {
	case <-client.Entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the conflict check")
	}

	if !c.Submitting() {
		t.Fatal("expected submitting while in flight")
	}
	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}
	if err := c.SetMode(fixtures.ModeScore); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected mode change rejected, got %v", err)
	}

	close(client.Gate)
	if err := <-done; err != nil {
		t.Fatalf("expected first submit to succeed, got %v", err)
	}
	if n := len(client.CallsTo(leagueapi.OpCheckConflict)); n != 1 {
		t.Fatalf("expected one conflict check, got %d", n)
	}
	if c.Submitting() {
		t.Fatal("expected submitting cleared")
	}
}

func TestSubmitAfterCloseSkipsStateChanges(t *testing.T) {
	client := &testutil.StubLeagueClient{Gate: make(chan struct{}), Entered: make(chan struct{})}
	c, _ := newTestController(client, testutil.ScheduleDraft())

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-client.Entered

	c.Close()
	close(client.Gate)
	if err := <-done; err != nil {
		t.Fatalf("expected in-flight submit to complete, got %v", err)
	}

	if c.Message() != "" {
		t.Fatalf("expected message untouched after close, got %q", c.Message())
	}
	if c.Draft().Common().Date != "2025-01-15" {
		t.Fatal("expected draft untouched after close")
	}
	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := c.UpdateDraft(func(d fixtures.Draft) fixtures.Draft { return d }); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on edit, got %v", err)
	}
}

func TestSetModeClearsScores(t *testing.T) {
	c, _ := newTestController(&testutil.StubLeagueClient{}, testutil.ScoreDraft(3, 1))

	if err := c.SetMode(fixtures.ModeSchedule); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.View().Mode != fixtures.ModeSchedule {
		t.Fatalf("expected schedule mode, got %s", c.View().Mode)
	}
	if err := c.SetMode(fixtures.ModeScore); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	sd := c.Draft().(fixtures.ScoreDraft)
	if sd.HomeScore != "" || sd.AwayScore != "" {
		t.Fatalf("expected scores cleared, got %q/%q", sd.HomeScore, sd.AwayScore)
	}
	if sd.Date != "2025-01-15" {
		t.Fatal("expected shared fields kept")
	}
}

func TestResubmitAfterErrorStartsFresh(t *testing.T) {
	client := &testutil.StubLeagueClient{Conflict: fixtures.ConflictResult{Exists: true, MatchID: 99}}
	c, _ := newTestController(client, testutil.ScheduleDraft())

	if _, err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected conflict")
	}
	err := c.UpdateDraft(func(d fixtures.Draft) fixtures.Draft {
		f := d.Common()
		f.Date = "2025-01-22"
		return fixtures.WithFields(d, f)
	})
	if err != nil {
		t.Fatalf("expected edit to succeed, got %v", err)
	}
	client.Conflict = fixtures.ConflictResult{}

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("expected second submit to succeed, got %v", err)
	}
	if n := len(client.CallsTo(leagueapi.OpCheckConflict)); n != 2 {
		t.Fatalf("expected a fresh conflict check, got %d", n)
	}
	if got := client.CallsTo(leagueapi.OpCreateMatch)[0].Payload.Date; got != "2025-01-22" {
		t.Fatalf("expected edited date, got %s", got)
	}
}

func TestMessageFor(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ValidationErrors{{Message: MsgDateRequired}}, MsgDateRequired},
		{&ConflictError{MatchID: 1}, "fixture already scheduled for this date and teams (match 1)"},
		{&leagueapi.APIError{Kind: leagueapi.KindUnauthorized}, MsgSessionExpired},
		{&leagueapi.APIError{Kind: leagueapi.KindForbidden}, MsgSubmitFailed},
		{errors.New("boom"), MsgSubmitFailed},
		{ErrSubmitInProgress, ErrSubmitInProgress.Error()},
	}
	for _, tc := range cases {
		if got := MessageFor(tc.err); got != tc.want {
			t.Fatalf("MessageFor(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
