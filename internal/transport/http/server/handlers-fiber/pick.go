package handlers_fiber

import (
	"net/http"

	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
	"github.com/HumboldtCodeClub/pickem-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListPicks returns all picks.
func (h *Handler) ListPicks(c *fiber.Ctx) error {
	picks, err := h.uc.Picks(c.Context())
	if err != nil {
		h.log.Errorw("failed to list picks", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPickList(picks))
}

// GetPick returns a pick by id.
func (h *Handler) GetPick(c *fiber.Ctx) error {
	id, err := paramID(c, "pickID")
	if err != nil {
		return writeError(c, entities.ErrPickNotFound)
	}

	pick, err := h.uc.Pick(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPick(*pick))
}

// CreatePick records a user's predicted winner for a game.
func (h *Handler) CreatePick(c *fiber.Ctx) error {
	var body api.CreatePickRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, err.Error()))
	}

	pick, err := h.uc.CreatePick(c.Context(), entities.Pick{
		UserID:          body.UserID,
		GameID:          body.GameID,
		TeamID:          body.TeamID,
		TieBreakerScore: body.Score,
	})
	if err != nil {
		h.log.Errorw("failed to create pick", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPick(*pick))
}
