package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"asq/internal/errors"
)

// failure maps err to the status code and message a client sees.
func failure(err error) (int, *string) {
	httpErr := errors.MapErrorToHTTP(err)
	return httpErr.StatusCode, &httpErr.Message
}

// invalidRequest is the response to a body or query that cannot be bound or
// does not validate.
func invalidRequest() (int, *string) {
	return failure(errors.ErrInvalidRequest)
}

// ErrorHandler writes errors that never reached a handler, such as unknown
// routes, oversized bodies or recovered panics, in the same envelope handlers
// use. An oversized body is an invalid request.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := failure(err)
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusRequestEntityTooLarge:
			status, msg = invalidRequest()
		case httpErr.Code < http.StatusInternalServerError:
			status = httpErr.Code
			text := http.StatusText(httpErr.Code)
			msg = &text
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errors.ErrorResponse{Error: *msg})
}
