package refdata

import "strings"

// LeagueMatchType is the match type name that requires a division.
const LeagueMatchType = "League"

// Season is a playing season.
type Season struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AgeGroup is an age bracket such as U12.
type AgeGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MatchType classifies fixtures (League, Cup, Friendly, ...).
type MatchType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Division groups teams within a league.
type Division struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	AgeGroupID int64  `json:"age_group_id,omitempty"`
}

// Team is a club side.
type Team struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ClubName   string `json:"club_name,omitempty"`
	AgeGroupID int64  `json:"age_group_id,omitempty"`
}

// Catalog is the reference data loaded when a form mounts.
type Catalog struct {
	Seasons    []Season    `json:"seasons"`
	AgeGroups  []AgeGroup  `json:"ageGroups"`
	MatchTypes []MatchType `json:"matchTypes"`
	Divisions  []Division  `json:"divisions"`
	Teams      []Team      `json:"teams"`
}

// IsLeague reports whether the match type id resolves to the League type.
func (c Catalog) IsLeague(matchTypeID int64) bool {
	if matchTypeID == 0 {
		return false
	}
	for _, mt := range c.MatchTypes {
		if mt.ID == matchTypeID {
			return strings.EqualFold(strings.TrimSpace(mt.Name), LeagueMatchType)
		}
	}
	return false
}

// HasMatchType reports whether the catalog lists the match type id.
func (c Catalog) HasMatchType(matchTypeID int64) bool {
	for _, mt := range c.MatchTypes {
		if mt.ID == matchTypeID {
			return true
		}
	}
	return false
}

// TeamName returns the display name for a team id, or "" when unknown.
func (c Catalog) TeamName(id int64) string {
	for _, t := range c.Teams {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}
