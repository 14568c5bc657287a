package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/HumboldtCodeClub/pickem-api/internal/api"
	"github.com/HumboldtCodeClub/pickem-api/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALID
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrGameNotFound),
		errors.Is(err, entities.ErrPickNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusBadRequest
		code = api.USEREXISTS
		msg = "username already exists"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusBadRequest
		code = api.TEAMEXISTS
		msg = "team abbr already exists"
	case errors.Is(err, entities.ErrPickExists):
		status = http.StatusBadRequest
		code = api.PICKEXISTS
		msg = "pick already exists for this user and game"
	case errors.Is(err, entities.ErrUnknownReference):
		status = http.StatusBadRequest
		code = api.UNKNOWNREF
		msg = "referenced user, game or team does not exist"
	case errors.Is(err, entities.ErrNoChanges):
		status = http.StatusTeapot
		code = api.NOCHANGES
		msg = "nothing to change"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorCode `json:"code"`
		Message string        `json:"message"`
	}{Code: code, Message: msg}}
}

// paramID parses a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidArgument
	}
	return id, nil
}
