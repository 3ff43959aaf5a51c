package leagueapi

import (
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
)

// ConflictQuery identifies a candidate fixture for the duplicate lookup.
type ConflictQuery struct {
	Date        string
	HomeTeamID  int64
	AwayTeamID  int64
	MatchTypeID int64
}

// MatchPayload is the body of POST /matches and PUT /matches/{id}.
// Optional ids are sent as null when unset; scores are omitted outside score mode.
type MatchPayload struct {
	MatchTypeID int64           `json:"match_type_id"`
	AgeGroupID  *int64          `json:"age_group_id"`
	DivisionID  *int64          `json:"division_id"`
	SeasonID    *int64          `json:"season_id"`
	HomeTeamID  int64           `json:"home_team_id"`
	AwayTeamID  int64           `json:"away_team_id"`
	Date        string          `json:"date"`
	Status      fixtures.Status `json:"status"`
	HomeScore   *int            `json:"home_score,omitempty"`
	AwayScore   *int            `json:"away_score,omitempty"`
}

type conflictResponse struct {
	Exists  bool   `json:"exists"`
	MatchID *int64 `json:"match_id"`
}

type matchRecord struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	MatchTypeID int64           `json:"match_type_id"`
	AgeGroupID  *int64          `json:"age_group_id"`
	SeasonID    *int64          `json:"season_id"`
	DivisionID  *int64          `json:"division_id"`
	HomeTeamID  int64           `json:"home_team_id"`
	AwayTeamID  int64           `json:"away_team_id"`
	HomeScore   *int            `json:"home_score"`
	AwayScore   *int            `json:"away_score"`
	Status      fixtures.Status `json:"status"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OptionalID returns nil for the zero id.
func OptionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func mapConflict(resp conflictResponse) fixtures.ConflictResult {
	if !resp.Exists {
		return fixtures.ConflictResult{}
	}
	result := fixtures.ConflictResult{Exists: true}
	if resp.MatchID != nil {
		result.MatchID = *resp.MatchID
	}
	return result
}

func mapMatch(m matchRecord) fixtures.Fixture {
	return fixtures.Fixture{
		ID:          m.ID,
		Date:        m.Date,
		MatchTypeID: m.MatchTypeID,
		AgeGroupID:  derefID(m.AgeGroupID),
		SeasonID:    derefID(m.SeasonID),
		DivisionID:  derefID(m.DivisionID),
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Status:      m.Status,
	}
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
