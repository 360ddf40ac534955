package errors

import "net/http"

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeDuplicateKey   = "DUPLICATE_KEY"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

var (
	ErrValidation = New(
		CodeValidation,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Unauthorized",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrMapPOINotFound = New(
		CodeNotFound,
		"Map POI not found",
		http.StatusNotFound,
	)

	ErrTimelineItemNotFound = New(
		CodeNotFound,
		"Timeline item not found",
		http.StatusNotFound,
	)

	ErrCollectionNotFound = New(
		CodeNotFound,
		"Collection not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		CodeNotFound,
		"Route not found",
		http.StatusNotFound,
	)

	ErrDuplicateKey = New(
		CodeDuplicateKey,
		"A record with this key already exists",
		http.StatusConflict,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
