// Package api defines the transport request and response shapes.
// Request DTOs carry validator tags and are distinct from stored entities;
// response models are the public projections returned to clients.
package api

import "time"

// CreateUserRequest is the body of POST /users and PATCH /users/:id.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// User is the public projection of a user: internal fields
// (password hash, expiration, delete marker) are stripped.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	City string `json:"city" validate:"required"`
	Name string `json:"name" validate:"required"`
	Abbr string `json:"abbr" validate:"required,max=3"`
}

// Team is the public projection of a team.
type Team struct {
	ID   int64  `json:"id"`
	City string `json:"city"`
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// CreateGameRequest is the body of POST /games. Home and away teams are
// referenced by abbreviation; Start uses the "2006-01-02 15:04:05" layout.
type CreateGameRequest struct {
	Season          int    `json:"season" validate:"required"`
	Week            int    `json:"week" validate:"required"`
	GameType        string `json:"gameType"`
	Start           string `json:"start" validate:"required"`
	HomeTeam        string `json:"homeTeam" validate:"required"`
	AwayTeam        string `json:"awayTeam" validate:"required"`
	HomeScore       *int   `json:"homeScore"`
	AwayScore       *int   `json:"awayScore"`
	TieBreaker      *bool  `json:"tieBreaker"`
	TieBreakerOrder *int   `json:"tieBreakerOrder"`
}

// Game is the full game row with nested team data.
type Game struct {
	ID              int64      `json:"id"`
	Season          int        `json:"season"`
	Week            int        `json:"week"`
	GameType        string     `json:"gameType"`
	Start           time.Time  `json:"start"`
	HomeTeam        *Team      `json:"homeTeam,omitempty"`
	AwayTeam        *Team      `json:"awayTeam,omitempty"`
	HomeScore       *int       `json:"homeScore,omitempty"`
	AwayScore       *int       `json:"awayScore,omitempty"`
	TieBreaker      bool       `json:"tieBreaker"`
	TieBreakerOrder *int       `json:"tieBreakerOrder,omitempty"`
	CreatedAt       *time.Time `json:"created,omitempty"`
	UpdatedAt       *time.Time `json:"updated,omitempty"`
}

// CreatePickRequest is the body of POST /picks.
type CreatePickRequest struct {
	UserID int64 `json:"userID" validate:"required"`
	GameID int64 `json:"gameID" validate:"required"`
	TeamID int64 `json:"teamID" validate:"required"`
	Score  *int  `json:"score"`
}

// Pick is the response shape for a stored pick.
type Pick struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userID"`
	GameID int64 `json:"gameID"`
	TeamID int64 `json:"teamID"`
	Score  *int  `json:"score,omitempty"`
}
