package matchform

import (
	"errors"
	"strings"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/timeutil"
)

// Validation messages surfaced to the user. Callers match on "same",
// "Division" and "required", so keep those words stable.
const (
	MsgSameTeams        = "home and away teams cannot be the same"
	MsgDivisionRequired = "Division is required for League matches"
	MsgDateRequired     = "date is required"
	MsgScoresRequired   = "scores are required"
	MsgDateFormat       = "date must be in YYYY-MM-DD format"
	MsgMatchTypeMissing = "match type is required"
	MsgTeamsRequired    = "home and away teams are required"
	MsgStatusInvalid    = "status is invalid"
	MsgMatchTypeUnknown = "match type is unknown"
)

// ErrValidation is matched by errors.Is on every ValidationErrors value.
var ErrValidation = errors.New("fixture failed validation")

// MatchTypeLookup resolves match types against the loaded reference data.
type MatchTypeLookup interface {
	IsLeague(matchTypeID int64) bool
	HasMatchType(matchTypeID int64) bool
}

// ValidationError is one rule violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string { return e.Message }

// ValidationErrors is the ordered violation list. Its message is the first violation's.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	return v[0].Message
}

func (v ValidationErrors) Unwrap() error { return ErrValidation }

// Validate checks d against the fixture rules without any I/O. Violations
// come back in precedence order; the UI surfaces only the first.
func Validate(d fixtures.Draft, lookup MatchTypeLookup) []ValidationError {
	if d == nil {
		d = fixtures.EmptyDraft(fixtures.ModeSchedule)
	}
	f := d.Common()
	var errs []ValidationError

	if f.HomeTeamID != 0 && f.HomeTeamID == f.AwayTeamID {
		errs = append(errs, ValidationError{Field: "awayTeamId", Message: MsgSameTeams})
	}
	if lookup != nil && lookup.IsLeague(f.MatchTypeID) && f.DivisionID == 0 {
		errs = append(errs, ValidationError{Field: "divisionId", Message: MsgDivisionRequired})
	}
	date := strings.TrimSpace(f.Date)
	if date == "" {
		errs = append(errs, ValidationError{Field: "date", Message: MsgDateRequired})
	}
	if sd, ok := d.(fixtures.ScoreDraft); ok {
		_, homeOK := sd.HomeScore.Int()
		_, awayOK := sd.AwayScore.Int()
		if !homeOK || !awayOK {
			errs = append(errs, ValidationError{Field: "scores", Message: MsgScoresRequired})
		}
	}

	if date != "" && !timeutil.IsCalendarDate(date) {
		errs = append(errs, ValidationError{Field: "date", Message: MsgDateFormat})
	}
	if f.MatchTypeID == 0 {
		errs = append(errs, ValidationError{Field: "matchTypeId", Message: MsgMatchTypeMissing})
	}
	if f.HomeTeamID == 0 || f.AwayTeamID == 0 {
		errs = append(errs, ValidationError{Field: "homeTeamId", Message: MsgTeamsRequired})
	}
	if f.Status != "" && !f.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: MsgStatusInvalid})
	}
	// An unknown type cannot be checked for the division rule.
	if lookup != nil && f.MatchTypeID != 0 && !lookup.HasMatchType(f.MatchTypeID) {
		errs = append(errs, ValidationError{Field: "matchTypeId", Message: MsgMatchTypeUnknown})
	}
	return errs
}
