// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/HumboldtCodeClub/pickem-api/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the resource routes using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	validate *validator.Validate
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log:      log,
		uc:       uc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all resource routes on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Get("/:userID", h.GetUser)
	users.Patch("/:userID", h.UpdateUser)
	users.Delete("/:userID", h.DeleteUser)
	users.Get("/:userID/restore", h.RestoreUser)

	teams := app.Group("/teams")
	teams.Get("/", h.ListTeams)
	teams.Post("/", h.CreateTeam)
	teams.Get("/:teamID", h.GetTeam)

	games := app.Group("/games")
	games.Get("/", h.ListGames)
	games.Post("/", h.CreateGame)
	games.Post("/search", h.SearchGames)
	games.Get("/:gameID", h.GetGame)

	picks := app.Group("/picks")
	picks.Get("/", h.ListPicks)
	picks.Post("/", h.CreatePick)
	picks.Get("/:pickID", h.GetPick)
}
