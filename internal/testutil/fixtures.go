package testutil

import (
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
)

// Match type ids in SampleCatalog.
const (
	LeagueTypeID   int64 = 1
	FriendlyTypeID int64 = 2
)

// SampleCatalog returns a small catalog with one League and one Friendly type.
func SampleCatalog() refdata.Catalog {
	return refdata.Catalog{
		Seasons:    []refdata.Season{{ID: 1, Name: "2025"}},
		AgeGroups:  []refdata.AgeGroup{{ID: 1, Name: "U12"}},
		MatchTypes: []refdata.MatchType{{ID: LeagueTypeID, Name: "League"}, {ID: FriendlyTypeID, Name: "Friendly"}},
		Divisions:  []refdata.Division{{ID: 1, Name: "North", AgeGroupID: 1}},
		Teams:      []refdata.Team{{ID: 1, Name: "Riverside"}, {ID: 2, Name: "Hillcrest"}},
	}
}

// ScheduleDraft returns a valid friendly fixture between teams 1 and 2 on 2025-01-15.
func ScheduleDraft() fixtures.ScheduleDraft {
	return fixtures.ScheduleDraft{Fields: fixtures.Fields{
		Date:        "2025-01-15",
		MatchTypeID: FriendlyTypeID,
		HomeTeamID:  1,
		AwayTeamID:  2,
		Status:      fixtures.StatusScheduled,
	}}
}

// ScoreDraft returns ScheduleDraft's fixture in score mode with the given result.
func ScoreDraft(home, away int) fixtures.ScoreDraft {
	return fixtures.ScoreDraft{
		Fields:    ScheduleDraft().Fields,
		HomeScore: fixtures.NewScore(home),
		AwayScore: fixtures.NewScore(away),
	}
}
