// Package entities contains core business entities.
package entities

import "time"

// DefaultGameType is used when a game request carries no type tag.
const DefaultGameType = "reg"

// GameDraft carries the fields of a game creation request before team
// abbreviations are resolved and the kickoff string is parsed.
type GameDraft struct {
	Season          int
	Week            int
	GameType        string
	Start           string
	HomeTeamAbbr    string
	AwayTeamAbbr    string
	HomeScore       *int
	AwayScore       *int
	TieBreaker      bool
	TieBreakerOrder *int
}

// Game is a single matchup in a season week. HomeTeam and AwayTeam are
// populated when the repository loads the game with its relations.
type Game struct {
	ID              int64
	Season          int
	Week            int
	GameType        string
	Start           time.Time
	HomeTeamID      int64
	AwayTeamID      int64
	HomeTeam        *Team
	AwayTeam        *Team
	HomeScore       *int
	AwayScore       *int
	TieBreaker      bool
	TieBreakerOrder *int
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}
