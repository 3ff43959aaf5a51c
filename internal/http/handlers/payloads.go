package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/matchform"
)

var errScoresOutsideScoreMode = errors.New("scores can only be entered in score mode")

type createFormRequest struct {
	Mode    string `json:"mode"`
	MatchID int64  `json:"matchId"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

// draftPatch carries the fields a user edited. Absent fields are left alone.
type draftPatch struct {
	Date        *string     `json:"date"`
	MatchTypeID *int64      `json:"matchTypeId"`
	AgeGroupID  *int64      `json:"ageGroupId"`
	SeasonID    *int64      `json:"seasonId"`
	DivisionID  *int64      `json:"divisionId"`
	HomeTeamID  *int64      `json:"homeTeamId"`
	AwayTeamID  *int64      `json:"awayTeamId"`
	Status      *string     `json:"status"`
	HomeScore   *scoreInput `json:"homeScore"`
	AwayScore   *scoreInput `json:"awayScore"`
}

// scoreInput accepts a score typed as either a JSON number or a string.
type scoreInput string

func (s *scoreInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = scoreInput(raw)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = scoreInput(normalizeNumber(n))
	return nil
}

// normalizeNumber rewrites integral numbers such as 3.0 or 1e1 in plain
// integer form. Anything else is kept verbatim for the validator to reject.
func normalizeNumber(n json.Number) string {
	if v, err := n.Int64(); err == nil {
		return strconv.FormatInt(v, 10)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

func (p draftPatch) hasScores() bool {
	return p.HomeScore != nil || p.AwayScore != nil
}

// apply returns d with the patch applied.
func (p draftPatch) apply(d fixtures.Draft) (fixtures.Draft, error) {
	f := d.Common()
	setString(&f.Date, p.Date)
	setID(&f.MatchTypeID, p.MatchTypeID)
	setID(&f.AgeGroupID, p.AgeGroupID)
	setID(&f.SeasonID, p.SeasonID)
	setID(&f.DivisionID, p.DivisionID)
	setID(&f.HomeTeamID, p.HomeTeamID)
	setID(&f.AwayTeamID, p.AwayTeamID)
	if p.Status != nil {
		f.Status = fixtures.Status(*p.Status)
	}

	next := fixtures.WithFields(d, f)
	if !p.hasScores() {
		return next, nil
	}
	sd, ok := next.(fixtures.ScoreDraft)
	if !ok {
		return nil, errScoresOutsideScoreMode
	}
	if p.HomeScore != nil {
		sd.HomeScore = fixtures.ScoreEntry(*p.HomeScore)
	}
	if p.AwayScore != nil {
		sd.AwayScore = fixtures.ScoreEntry(*p.AwayScore)
	}
	return sd, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setID(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

type formResponse struct {
	ID string `json:"id"`
	matchform.View
	Reference *refdata.Catalog `json:"reference,omitempty"`
}

type submitResponse struct {
	Outcome fixtures.SubmissionOutcome `json:"outcome"`
	Form    formResponse               `json:"form"`
}

func parseMatchID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid match id")
	}
	return id, nil
}
