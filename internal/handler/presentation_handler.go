package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"asq/internal/model"
	"asq/internal/service"
)

// PresentationHandler handles presentation endpoints.
type PresentationHandler struct {
	presentationService service.PresentationService
}

// NewPresentationHandler creates a new presentation handler.
func NewPresentationHandler(presentationService service.PresentationService) *PresentationHandler {
	return &PresentationHandler{presentationService: presentationService}
}

// ListPresentationsRequest selects the presenter whose presentations to list.
type ListPresentationsRequest struct {
	Presenter string `query:"presenter" validate:"required"`
}

// CreatePresentationRequest represents a new presentation owned by the
// session's presenter.
type CreatePresentationRequest struct {
	SessionToken      string `json:"sessionToken" validate:"required"`
	Title             string `json:"title" validate:"required"`
	IsOpenToQuestions bool   `json:"isOpenToQuestions"`
}

// PresentationsResponse carries a list of presentations.
type PresentationsResponse struct {
	Error         *string              `json:"error"`
	Presentations []model.Presentation `json:"presentations"`
}

// PresentationResponse carries one presentation.
type PresentationResponse struct {
	Error        *string             `json:"error"`
	Presentation *model.Presentation `json:"presentation"`
}

// List godoc
// @Summary List a presenter's presentations
// @Tags presentations
// @Produce json
// @Param presenter query string true "Presenter email address"
// @Success 200 {object} PresentationsResponse
// @Failure 400 {object} PresentationsResponse
// @Router /presentations [get]
func (h *PresentationHandler) List(c echo.Context) error {
	var req ListPresentationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, PresentationsResponse{Error: msg})
	}

	presentations, err := h.presentationService.List(c.Request().Context(), model.ID(req.Presenter))
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, PresentationsResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, PresentationsResponse{Presentations: presentations})
}

// Create godoc
// @Summary Create a presentation
// @Tags presentations
// @Accept json
// @Produce json
// @Param request body CreatePresentationRequest true "Presentation data"
// @Success 200 {object} PresentationResponse
// @Failure 400 {object} PresentationResponse
// @Failure 500 {object} PresentationResponse
// @Router /presentations [post]
func (h *PresentationHandler) Create(c echo.Context) error {
	var req CreatePresentationRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, PresentationResponse{Error: msg})
	}

	presentation, err := h.presentationService.Create(c.Request().Context(),
		model.ID(req.SessionToken), req.Title, req.IsOpenToQuestions)
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, PresentationResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, PresentationResponse{Presentation: &presentation})
}
