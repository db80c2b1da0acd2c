package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mimistyle/backend/internal/service"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// writeServiceError maps service errors onto the response envelope:
// ErrNotFound to 404, InvalidRequestError to 400 with its client-facing
// message, anything else to a generic 500.
func writeServiceError(c echo.Context, err error, fallback string) error {
	var ir *service.InvalidRequestError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
	case errors.As(err, &ir):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", ir.Message))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", fallback))
	}
}
