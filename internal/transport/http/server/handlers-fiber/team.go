package handlers_fiber

import (
	"net/http"

	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
	"github.com/HumboldtCodeClub/pickem-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListTeams returns all teams.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// GetTeam returns a team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "teamID")
	if err != nil {
		return writeError(c, entities.ErrTeamNotFound)
	}

	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// CreateTeam creates a team with a unique abbreviation.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, err.Error()))
	}

	team, err := h.uc.CreateTeam(c.Context(), entities.Team{
		City: body.City,
		Name: body.Name,
		Abbr: body.Abbr,
	})
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}
