package handlers_fiber

import (
	"net/http"

	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"
	"github.com/HumboldtCodeClub/pickem-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns all active users in their public shape.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

// GetUser returns one active user; soft-deleted users read as missing.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, entities.ErrUserNotFound)
	}

	user, err := h.uc.User(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// CreateUser signs up a user with a generated password.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, err.Error()))
	}

	user, err := h.uc.CreateUser(c.Context(), body.Username)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// UpdateUser renames a user; only the username is mutable.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, entities.ErrUserNotFound)
	}

	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, err.Error()))
	}

	user, err := h.uc.UpdateUsername(c.Context(), id, body.Username)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// DeleteUser soft-deletes a user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, entities.ErrUserNotFound)
	}

	if err := h.uc.DeleteUser(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// RestoreUser reactivates a soft-deleted user.
func (h *Handler) RestoreUser(c *fiber.Ctx) error {
	id, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, entities.ErrUserNotFound)
	}

	if err := h.uc.RestoreUser(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusOK)
}
