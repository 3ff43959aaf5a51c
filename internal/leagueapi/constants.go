package leagueapi

import "time"

const (
	defaultBaseURL     = "http://localhost:8080/api"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512

	headerIdempotencyKey = "Idempotency-Key"
)

// Operation names used for metrics and logs.
const (
	OpCheckConflict = "check_conflict"
	OpCreateMatch   = "create_match"
	OpUpdateMatch   = "update_match"
	OpGetMatch      = "get_match"
	OpSeasons       = "list_seasons"
	OpAgeGroups     = "list_age_groups"
	OpMatchTypes    = "list_match_types"
	OpDivisions     = "list_divisions"
	OpTeams         = "list_teams"
)
