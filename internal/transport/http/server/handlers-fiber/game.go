package handlers_fiber

import (
	"net/http"

	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
	"github.com/HumboldtCodeClub/pickem-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListGames returns all games with nested home and away team data.
func (h *Handler) ListGames(c *fiber.Ctx) error {
	games, err := h.uc.Games(c.Context())
	if err != nil {
		h.log.Errorw("failed to list games", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIGameList(games))
}

// GetGame returns a game by id with nested team data.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	id, err := paramID(c, "gameID")
	if err != nil {
		return writeError(c, entities.ErrGameNotFound)
	}

	game, err := h.uc.Game(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIGame(*game))
}

// CreateGame creates a game, resolving teams by abbreviation.
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	var body api.CreateGameRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, err.Error()))
	}

	tieBreaker := false
	if body.TieBreaker != nil {
		tieBreaker = *body.TieBreaker
	}

	game, err := h.uc.CreateGame(c.Context(), entities.GameDraft{
		Season:          body.Season,
		Week:            body.Week,
		GameType:        body.GameType,
		Start:           body.Start,
		HomeTeamAbbr:    body.HomeTeam,
		AwayTeamAbbr:    body.AwayTeam,
		HomeScore:       body.HomeScore,
		AwayScore:       body.AwayScore,
		TieBreaker:      tieBreaker,
		TieBreakerOrder: body.TieBreakerOrder,
	})
	if err != nil {
		h.log.Errorw("failed to create game", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIGame(*game))
}

// SearchGames is not implemented yet.
// TODO: filter games by season/week once the query contract is settled.
func (h *Handler) SearchGames(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusTeapot)
}
