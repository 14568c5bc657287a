// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
)

// ToAPIUser maps entities.User to its public shape.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:       u.ID,
		Username: u.Username,
	}
}

// ToAPIUserList maps a slice of users to their public shapes.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITeam maps entities.Team to its public shape.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{
		ID:   t.ID,
		City: t.City,
		Name: t.Name,
		Abbr: t.Abbr,
	}
}

// ToAPITeamList maps a slice of teams to their public shapes.
func ToAPITeamList(list []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// ToAPIGame maps entities.Game to the full transport row, including nested
// teams when the repository loaded them.
func ToAPIGame(g entities.Game) api.Game {
	out := api.Game{
		ID:              g.ID,
		Season:          g.Season,
		Week:            g.Week,
		GameType:        g.GameType,
		Start:           g.Start,
		HomeScore:       g.HomeScore,
		AwayScore:       g.AwayScore,
		TieBreaker:      g.TieBreaker,
		TieBreakerOrder: g.TieBreakerOrder,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if g.HomeTeam != nil {
		home := ToAPITeam(*g.HomeTeam)
		out.HomeTeam = &home
	}
	if g.AwayTeam != nil {
		away := ToAPITeam(*g.AwayTeam)
		out.AwayTeam = &away
	}
	return out
}

// ToAPIGameList maps a slice of games to transport rows.
func ToAPIGameList(list []entities.Game) []api.Game {
	res := make([]api.Game, 0, len(list))
	for _, g := range list {
		res = append(res, ToAPIGame(g))
	}
	return res
}

// ToAPIPick maps entities.Pick to its transport shape.
func ToAPIPick(p entities.Pick) api.Pick {
	return api.Pick{
		ID:     p.ID,
		UserID: p.UserID,
		GameID: p.GameID,
		TeamID: p.TeamID,
		Score:  p.TieBreakerScore,
	}
}

// ToAPIPickList maps a slice of picks to transport shapes.
func ToAPIPickList(list []entities.Pick) []api.Pick {
	res := make([]api.Pick, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIPick(p))
	}
	return res
}
