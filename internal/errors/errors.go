package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidRequest is returned when the request body or query is missing or malformed.
	ErrInvalidRequest = errors.New("Missing or invalid request data.")
	// ErrEmailTaken is returned for any registration failure.
	ErrEmailTaken = errors.New("Email address taken.")
	// ErrInvalidCredentials is returned for any login failure.
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	// ErrUnknownPresenter is returned when listing presentations of an unregistered presenter.
	ErrUnknownPresenter = errors.New("Unknown presenter.")
	// ErrInvalidPresentation is returned when a presentation cannot be found or listed.
	ErrInvalidPresentation = errors.New("Invalid presentation.")
	// ErrInvalidQuestion is returned when a question cannot be found or nodded.
	ErrInvalidQuestion = errors.New("Invalid question.")
	// ErrInvalidSession is returned when a session token does not match any session.
	ErrInvalidSession = errors.New("Invalid session token.")
	// ErrNotAllowed is returned when the session owner does not own the presentation.
	ErrNotAllowed = errors.New("You are not allowed to do that!")
	// ErrAlreadyAnswered is returned when a question already has an answer.
	ErrAlreadyAnswered = errors.New("Question already answered.")
	// ErrSaveQuestion is returned when a new question cannot be stored.
	ErrSaveQuestion = errors.New("Unable to save question.")
	// ErrSavePresentation is returned when a new presentation cannot be stored.
	ErrSavePresentation = errors.New("Unable to save presentation.")
	// ErrSaveAnswer is returned when an authorized answer cannot be stored.
	ErrSaveAnswer = errors.New("Unable to save answer.")
	// ErrInternal is returned when a valid request fails for reasons outside
	// the client's control.
	ErrInternal = errors.New("Something went wrong.")
)

// ErrorResponse is the body of an error raised outside a handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

var badRequests = []error{
	ErrInvalidRequest,
	ErrEmailTaken,
	ErrInvalidCredentials,
	ErrUnknownPresenter,
	ErrInvalidPresentation,
	ErrInvalidQuestion,
	ErrInvalidSession,
	ErrNotAllowed,
	ErrAlreadyAnswered,
}

var serverErrors = []error{
	ErrSaveQuestion,
	ErrSavePresentation,
	ErrSaveAnswer,
	ErrInternal,
}

// MapErrorToHTTP maps domain errors to HTTP errors. Errors outside the domain
// vocabulary never leak their text.
func MapErrorToHTTP(err error) *HTTPError {
	for _, target := range badRequests {
		if errors.Is(err, target) {
			return NewHTTPError(http.StatusBadRequest, target.Error())
		}
	}
	for _, target := range serverErrors {
		if errors.Is(err, target) {
			return NewHTTPError(http.StatusInternalServerError, target.Error())
		}
	}
	return NewHTTPError(http.StatusInternalServerError, ErrInternal.Error())
}
