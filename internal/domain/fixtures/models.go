package fixtures

import (
	"strconv"
	"strings"
)

// Mode selects whether the form schedules a future fixture or records a result.
type Mode string

const (
	ModeSchedule Mode = "schedule"
	ModeScore    Mode = "score"
)

// ParseMode accepts the wire form of a Mode.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeSchedule:
		return ModeSchedule, true
	case ModeScore:
		return ModeScore, true
	default:
		return "", false
	}
}

// Status mirrors the fixture lifecycle states accepted by the league API.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Verb is the mutation the dispatcher chose.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbUpdate Verb = "update"
)

// ScoreEntry is a score exactly as the user typed it.
type ScoreEntry string

// NewScore builds an entry from a known value.
func NewScore(v int) ScoreEntry {
	return ScoreEntry(strconv.Itoa(v))
}

// Int parses the entry. ok is false for empty, non-integer, or negative input.
func (e ScoreEntry) Int() (int, bool) {
	raw := strings.TrimSpace(string(e))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Fields are shared by both draft variants. Zero IDs mean unset.
type Fields struct {
	Date        string `json:"date"`
	MatchTypeID int64  `json:"matchTypeId"`
	AgeGroupID  int64  `json:"ageGroupId"`
	SeasonID    int64  `json:"seasonId"`
	DivisionID  int64  `json:"divisionId"`
	HomeTeamID  int64  `json:"homeTeamId"`
	AwayTeamID  int64  `json:"awayTeamId"`
	Status      Status `json:"status"`
}

// Draft is the in-progress fixture being created or amended.
// It is either a ScheduleDraft or a ScoreDraft; scores only exist on the latter.
type Draft interface {
	Mode() Mode
	Common() Fields
	isDraft()
}

// ScheduleDraft plans a future fixture.
type ScheduleDraft struct {
	Fields
}

func (ScheduleDraft) Mode() Mode       { return ModeSchedule }
func (d ScheduleDraft) Common() Fields { return d.Fields }
func (ScheduleDraft) isDraft()         {}

// ScoreDraft records or amends a result.
type ScoreDraft struct {
	Fields
	HomeScore ScoreEntry `json:"homeScore"`
	AwayScore ScoreEntry `json:"awayScore"`
}

func (ScoreDraft) Mode() Mode       { return ModeScore }
func (d ScoreDraft) Common() Fields { return d.Fields }
func (ScoreDraft) isDraft()         {}

// EmptyDraft returns the blank draft for a mode.
func EmptyDraft(mode Mode) Draft {
	fields := Fields{Status: StatusScheduled}
	if mode == ModeScore {
		return ScoreDraft{Fields: fields}
	}
	return ScheduleDraft{Fields: fields}
}

// ApplyModeChange moves a draft into mode. Shared fields carry over; scores
// never survive leaving score mode.
func ApplyModeChange(d Draft, mode Mode) Draft {
	if d == nil {
		return EmptyDraft(mode)
	}
	if d.Mode() == mode {
		return d
	}
	fields := d.Common()
	if mode == ModeScore {
		return ScoreDraft{Fields: fields}
	}
	return ScheduleDraft{Fields: fields}
}

// WithFields returns a copy of d with its shared fields replaced.
func WithFields(d Draft, fields Fields) Draft {
	switch v := d.(type) {
	case ScoreDraft:
		v.Fields = fields
		return v
	case ScheduleDraft:
		v.Fields = fields
		return v
	default:
		return ScheduleDraft{Fields: fields}
	}
}

// DraftFromFixture pre-populates a draft for editing a stored fixture.
// Fixtures that already carry a result open in score mode.
func DraftFromFixture(f Fixture) Draft {
	fields := Fields{
		Date:        f.Date,
		MatchTypeID: f.MatchTypeID,
		AgeGroupID:  f.AgeGroupID,
		SeasonID:    f.SeasonID,
		DivisionID:  f.DivisionID,
		HomeTeamID:  f.HomeTeamID,
		AwayTeamID:  f.AwayTeamID,
		Status:      f.Status,
	}
	if fields.Status == "" {
		fields.Status = StatusScheduled
	}
	if f.HomeScore != nil && f.AwayScore != nil {
		return ScoreDraft{
			Fields:    fields,
			HomeScore: NewScore(*f.HomeScore),
			AwayScore: NewScore(*f.AwayScore),
		}
	}
	return ScheduleDraft{Fields: fields}
}

// ConflictResult is the outcome of the duplicate lookup. MatchID is only
// meaningful when Exists; the backend may omit it.
type ConflictResult struct {
	Exists  bool  `json:"exists"`
	MatchID int64 `json:"matchId,omitempty"`
}

// Fixture is the server-confirmed record.
type Fixture struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	MatchTypeID int64  `json:"matchTypeId"`
	AgeGroupID  int64  `json:"ageGroupId"`
	SeasonID    int64  `json:"seasonId"`
	DivisionID  int64  `json:"divisionId"`
	HomeTeamID  int64  `json:"homeTeamId"`
	AwayTeamID  int64  `json:"awayTeamId"`
	HomeScore   *int   `json:"homeScore,omitempty"`
	AwayScore   *int   `json:"awayScore,omitempty"`
	Status      Status `json:"status"`
}

// SubmissionOutcome reports what the dispatcher did. TargetID is set iff Verb is VerbUpdate.
type SubmissionOutcome struct {
	Verb     Verb    `json:"verb"`
	TargetID int64   `json:"targetId,omitempty"`
	Record   Fixture `json:"record"`
}
