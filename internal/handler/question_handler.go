package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"asq/internal/model"
	"asq/internal/service"
)

// QuestionHandler handles the question lifecycle: asking, nodding, listing
// and answering.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestionsRequest selects the presentation whose questions to list.
type ListQuestionsRequest struct {
	Presentation string `query:"presentation" validate:"required"`
}

// AskRequest represents a question from the audience.
type AskRequest struct {
	Presentation string `json:"presentation" validate:"required"`
	Question     string `json:"question" validate:"required"`
}

// NodRequest names the question to nod.
type NodRequest struct {
	Question string `json:"question" validate:"required"`
}

// AnswerRequest represents the presentation owner's answer.
type AnswerRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
	Question     string `json:"question" validate:"required"`
	Text         string `json:"text" validate:"required"`
}

// QuestionsResponse carries a list of questions.
type QuestionsResponse struct {
	Error     *string          `json:"error"`
	Questions []model.Question `json:"questions"`
}

// QuestionResponse carries one question.
type QuestionResponse struct {
	Error    *string         `json:"error"`
	Question *model.Question `json:"question"`
}

// AnswerResponse carries one answer.
type AnswerResponse struct {
	Error  *string       `json:"error"`
	Answer *model.Answer `json:"answer"`
}

// List godoc
// @Summary List the questions of a presentation
// @Tags questions
// @Produce json
// @Param presentation query string true "Presentation ID"
// @Success 200 {object} QuestionsResponse
// @Failure 400 {object} QuestionsResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	var req ListQuestionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, QuestionsResponse{Error: msg})
	}

	questions, err := h.questionService.List(c.Request().Context(), model.ID(req.Presentation))
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, QuestionsResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, QuestionsResponse{Questions: questions})
}

// Ask godoc
// @Summary Ask a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} QuestionResponse
// @Failure 400 {object} QuestionResponse
// @Failure 500 {object} QuestionResponse
// @Router /questions/ask [post]
func (h *QuestionHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, QuestionResponse{Error: msg})
	}

	question, err := h.questionService.Ask(c.Request().Context(), model.ID(req.Presentation), req.Question)
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, QuestionResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, QuestionResponse{Question: &question})
}

// Nod godoc
// @Summary Nod a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body NodRequest true "Question to nod"
// @Success 200 {object} QuestionResponse
// @Failure 400 {object} QuestionResponse
// @Router /questions/nod [put]
func (h *QuestionHandler) Nod(c echo.Context) error {
	var req NodRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, QuestionResponse{Error: msg})
	}

	question, err := h.questionService.Nod(c.Request().Context(), model.ID(req.Question))
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, QuestionResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, QuestionResponse{Question: &question})
}

// Answer godoc
// @Summary Answer a question
// @Description Only the presenter who created the question's presentation may answer, once.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body AnswerRequest true "Answer"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} AnswerResponse
// @Failure 500 {object} AnswerResponse
// @Router /questions/answer [post]
func (h *QuestionHandler) Answer(c echo.Context) error {
	var req AnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		status, msg := invalidRequest()
		return c.JSON(status, AnswerResponse{Error: msg})
	}

	answer, err := h.questionService.Answer(c.Request().Context(),
		model.ID(req.SessionToken), model.ID(req.Question), req.Text)
	if err != nil {
		status, msg := failure(err)
		return c.JSON(status, AnswerResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, AnswerResponse{Answer: &answer})
}
