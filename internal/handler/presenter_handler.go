package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"asq/internal/model"
	"asq/internal/service"
)

// PresenterHandler handles presenter registration and login.
type PresenterHandler struct {
	authService service.AuthService
}

// NewPresenterHandler creates a new presenter handler.
func NewPresenterHandler(authService service.AuthService) *PresenterHandler {
	return &PresenterHandler{authService: authService}
}

// CredentialsRequest carries a presenter's email address and password.
type CredentialsRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// SessionResponse carries the token of a newly opened session.
type SessionResponse struct {
	Error        *string   `json:"error"`
	SessionToken *model.ID `json:"sessionToken"`
}

// Register godoc
// @Summary Register a new presenter
// @Tags presenters
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Presenter credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} SessionResponse
// @Router /presenters/register [post]
func (h *PresenterHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, SessionResponse{Error: msg})
	}

	session, err := h.authService.Register(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, SessionResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionToken: &session.Token})
}

// Login godoc
// @Summary Log a presenter in
// @Tags presenters
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Presenter credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} SessionResponse
// @Router /presenters/login [post]
func (h *PresenterHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, SessionResponse{Error: msg})
	}

	session, err := h.authService.Login(c.Request().Context(), model.ID(req.EmailAddress), req.Password)
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, SessionResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, SessionResponse{SessionToken: &session.Token})
}

// bindAndValidate decodes the request into req and checks its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
