package handler

import (
	"kazvocab/internal/config"
	"kazvocab/internal/dto"
	"kazvocab/internal/middleware"
	"kazvocab/internal/service"
	"kazvocab/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService service.QuizService
	wordService service.WordService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, wordService service.WordService, cfg *config.Config) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		wordService: wordService,
		validator:   validation.NewValidator(cfg.Quiz.MaxQuestionCount),
	}
}

// StartQuiz godoc
// @Summary Start a quiz session
// @Description Builds a multiple-choice quiz from the user's word pool and opens a session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Quiz parameters"
// @Success 200 {object} dto.StartQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse "Not enough words to build a quiz"
// @Router /quiz/start [post]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateStartQuizRequest(req.Count, req.Tier); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.StartQuiz(c.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Records the answer for one question of a running session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Session expired or unknown question"
// @Failure 409 {object} middleware.ErrorResponse "Question already answered"
// @Router /quiz/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(req.SessionID, req.QuestionID, req.SelectedIndex); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.SubmitAnswer(c.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CompleteQuiz godoc
// @Summary Complete a quiz session
// @Description Scores the session, records the attempt and closes the session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CompleteQuizRequest true "Session to complete"
// @Success 200 {object} dto.CompleteQuizResponse
// @Failure 404 {object} middleware.ErrorResponse "Session expired"
// @Router /quiz/complete [post]
func (h *QuizHandler) CompleteQuiz(c *fiber.Ctx) error {
	var req dto.CompleteQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateCompleteQuizRequest(req.SessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.CompleteQuiz(c.Context(), middleware.UserIDFromContext(c), req.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListWords godoc
// @Summary List vocabulary
// @Description Returns a page of the vocabulary
// @Tags words
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} dto.WordListResponse
// @Router /words [get]
func (h *QuizHandler) ListWords(c *fiber.Ctx) error {
	var pagination dto.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	resp, err := h.wordService.ListWords(c.Context(), pagination)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
