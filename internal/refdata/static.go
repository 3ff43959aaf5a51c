package refdata

import (
	"context"

	domain "github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
)

// StaticSource returns a deterministic catalog for local development.
type StaticSource struct{}

// NewStaticSource creates a static source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (StaticSource) Seasons(context.Context) ([]domain.Season, error) {
	return []domain.Season{
		{ID: 1, Name: "2024-2025"},
		{ID: 2, Name: "2025-2026"},
	}, nil
}

func (StaticSource) AgeGroups(context.Context) ([]domain.AgeGroup, error) {
	return []domain.AgeGroup{
		{ID: 1, Name: "U10"},
		{ID: 2, Name: "U12"},
		{ID: 3, Name: "U14"},
	}, nil
}

func (StaticSource) MatchTypes(context.Context) ([]domain.MatchType, error) {
	return []domain.MatchType{
		{ID: 1, Name: domain.LeagueMatchType},
		{ID: 2, Name: "Cup"},
		{ID: 3, Name: "Friendly"},
		{ID: 4, Name: "Tournament"},
	}, nil
}

func (StaticSource) Divisions(context.Context) ([]domain.Division, error) {
	return []domain.Division{
		{ID: 1, Name: "North", AgeGroupID: 2},
		{ID: 2, Name: "South", AgeGroupID: 2},
		{ID: 3, Name: "Premier", AgeGroupID: 3},
	}, nil
}

func (StaticSource) Teams(context.Context) ([]domain.Team, error) {
	return []domain.Team{
		{ID: 1, Name: "Riverside U12", ClubName: "Riverside FC", AgeGroupID: 2},
		{ID: 2, Name: "Hillcrest U12", ClubName: "Hillcrest United", AgeGroupID: 2},
		{ID: 3, Name: "Lakeside U12", ClubName: "Lakeside Athletic", AgeGroupID: 2},
		{ID: 4, Name: "Riverside U14", ClubName: "Riverside FC", AgeGroupID: 3},
	}, nil
}
