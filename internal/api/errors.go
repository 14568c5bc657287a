package api

// ErrorCode identifies a failure class in error responses.
type ErrorCode string

const (
	// INVALID marks malformed or missing input.
	INVALID ErrorCode = "INVALID"
	// NOTFOUND marks an unknown identifier.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// USEREXISTS marks a username conflict.
	USEREXISTS ErrorCode = "USER_EXISTS"
	// TEAMEXISTS marks a team abbreviation conflict.
	TEAMEXISTS ErrorCode = "TEAM_EXISTS"
	// PICKEXISTS marks a duplicate pick for a user and game.
	PICKEXISTS ErrorCode = "PICK_EXISTS"
	// UNKNOWNREF marks a pick referencing a missing row.
	UNKNOWNREF ErrorCode = "UNKNOWN_REFERENCE"
	// NOCHANGES marks an update with nothing to change.
	NOCHANGES ErrorCode = "NO_CHANGES"
	// INTERNAL marks a persistence or unexpected failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope for non-2xx responses.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}
