package matchform

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/leagueapi"
	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
)

// State is where the controller sits in the submit workflow.
type State string

const (
	StateIdle             State = "idle"
	StateValidating       State = "validating"
	StateCheckingConflict State = "checking_conflict"
	StateDispatching      State = "dispatching"
	StateIdleReset        State = "idle_reset"
	StateIdleWithError    State = "idle_with_error"
)

// User-facing outcome messages.
const (
	MsgSessionExpired = "session is invalid or has expired, please sign in again"
	MsgSubmitFailed   = "error: could not submit fixture, please try again"
)

var (
	// ErrSubmitInProgress rejects a submit or edit while another submit is in flight.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrClosed rejects work on a controller whose form has been torn down.
	ErrClosed = errors.New("form is closed")
)

// Config wires a Controller.
type Config struct {
	Client   AuthenticatedClient
	Lookup   MatchTypeLookup
	Draft    fixtures.Draft
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// View is a consistent copy of the controller's presentation state.
type View struct {
	Mode       fixtures.Mode  `json:"mode"`
	State      State          `json:"state"`
	Draft      fixtures.Draft `json:"draft"`
	Message    string         `json:"message"`
	Submitting bool           `json:"submitting"`
}

// Controller owns one form's draft and runs the validate, conflict check,
// dispatch sequence. Only one submit may be in flight at a time.
type Controller struct {
	checker    *ConflictChecker
	dispatcher *Dispatcher
	lookup     MatchTypeLookup
	logger     *slog.Logger
	recorder   *metrics.Recorder

	mu         sync.Mutex
	draft      fixtures.Draft
	state      State
	message    string
	submitting bool
	closed     bool
}

// NewController builds a controller. A nil Draft starts an empty schedule form.
func NewController(cfg Config) *Controller {
	draft := cfg.Draft
	if draft == nil {
		draft = fixtures.EmptyDraft(fixtures.ModeSchedule)
	}
	return &Controller{
		checker:    NewConflictChecker(cfg.Client),
		dispatcher: NewDispatcher(cfg.Client),
		lookup:     cfg.Lookup,
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
		draft:      draft,
		state:      StateIdle,
	}
}

// View returns the current presentation state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Mode:       c.draft.Mode(),
		State:      c.state,
		Draft:      c.draft,
		Message:    c.message,
		Submitting: c.submitting,
	}
}

// Draft returns the current draft.
func (c *Controller) Draft() fixtures.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Message returns the last user-facing message.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// State returns the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submitting reports whether a submit is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// SetMode switches the form between scheduling and scoring. Scores never
// survive leaving score mode.
func (c *Controller) SetMode(mode fixtures.Mode) error {
	return c.UpdateDraft(func(d fixtures.Draft) fixtures.Draft {
		return fixtures.ApplyModeChange(d, mode)
	})
}

// UpdateDraft applies a user edit to the draft.
func (c *Controller) UpdateDraft(edit func(fixtures.Draft) fixtures.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.submitting {
		return ErrSubmitInProgress
	}
	next := edit(c.draft)
	if next == nil {
		next = fixtures.EmptyDraft(c.draft.Mode())
	}
	c.draft = next
	return nil
}

// Close marks the hosting form as torn down. A submit still in flight
// finishes its calls but no longer touches controller state.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Submit validates the draft, checks for a duplicate fixture, and issues at
// most one create or update. Validation failures make no network calls.
func (c *Controller) Submit(ctx context.Context) (fixtures.SubmissionOutcome, error) {
	start := time.Now()
	logger := logging.FromContext(ctx, c.logger)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fixtures.SubmissionOutcome{}, ErrClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return fixtures.SubmissionOutcome{}, ErrSubmitInProgress
	}
	draft := c.draft
	c.state = StateValidating
	logging.Debug(logger, "fixture form transition", logging.FieldState, StateValidating, logging.FieldMode, draft.Mode())

	if errs := Validate(draft, c.lookup); len(errs) > 0 {
		err := ValidationErrors(errs)
		c.message = err.Error()
		c.state = StateIdleWithError
		c.mu.Unlock()
		c.recorder.RecordSubmission("", metrics.ResultValidation, time.Since(start))
		logging.Info(logger, "fixture rejected by validation", logging.FieldMode, draft.Mode(), "reason", err.Error())
		return fixtures.SubmissionOutcome{}, err
	}
	c.submitting = true
	c.mu.Unlock()

	defer c.endSubmit()

	c.transition(logger, StateCheckingConflict)
	conflict, err := c.checker.Check(ctx, draft)
	if err != nil {
		c.fail(logger, draft, err, start)
		return fixtures.SubmissionOutcome{}, err
	}

	c.transition(logger, StateDispatching)
	outcome, err := c.dispatcher.Dispatch(ctx, draft, conflict)
	if err != nil {
		c.fail(logger, draft, err, start)
		return fixtures.SubmissionOutcome{}, err
	}

	c.succeed(logger, draft, outcome, start)
	return outcome, nil
}

func (c *Controller) endSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.submitting = false
}

func (c *Controller) transition(logger *slog.Logger, next State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = next
	logging.Debug(logger, "fixture form transition", logging.FieldState, next)
}

func (c *Controller) succeed(logger *slog.Logger, draft fixtures.Draft, outcome fixtures.SubmissionOutcome, start time.Time) {
	c.recorder.RecordSubmission(string(outcome.Verb), metrics.ResultOK, time.Since(start))
	logging.Info(logger, "fixture submitted",
		logging.FieldVerb, outcome.Verb,
		logging.FieldMode, draft.Mode(),
		logging.FieldMatchID, outcome.Record.ID,
	)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.message = string(outcome.Verb) + " succeeded"
	c.state = StateIdleReset
	if outcome.Verb == fixtures.VerbCreate && draft.Mode() == fixtures.ModeSchedule {
		c.draft = fixtures.EmptyDraft(fixtures.ModeSchedule)
	}
}

func (c *Controller) fail(logger *slog.Logger, draft fixtures.Draft, err error, start time.Time) {
	result := resultFor(err)
	c.recorder.RecordSubmission("", result, time.Since(start))
	logging.Warn(logger, "fixture submission failed", logging.FieldMode, draft.Mode(), "result", result, "error", err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.message = MessageFor(err)
	c.state = StateIdleWithError
}

// MessageFor maps a submit error to the text shown to the user.
func MessageFor(err error) string {
	var verrs ValidationErrors
	var conflict *ConflictError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.As(err, &conflict):
		return conflict.Error()
	case errors.Is(err, ErrSubmitInProgress), errors.Is(err, ErrClosed):
		return err.Error()
	case leagueapi.IsUnauthorized(err):
		return MsgSessionExpired
	default:
		return MsgSubmitFailed
	}
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return metrics.ResultValidation
	case errors.Is(err, ErrAlreadyScheduled):
		return metrics.ResultConflict
	case leagueapi.IsUnauthorized(err):
		return metrics.ResultUnauthorized
	default:
		return metrics.ResultError
	}
}
