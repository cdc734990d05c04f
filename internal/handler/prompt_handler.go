package handler

import (
	"edugenie/internal/domain"
	"edugenie/internal/dto"
	"edugenie/internal/logger"
	"edugenie/internal/middleware"
	"edugenie/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const quizFailureMessage = "Failed to generate structured quiz"

// PromptHandler handles the model-backed API routes
type PromptHandler struct {
	service service.PromptService
}

// NewPromptHandler creates a new PromptHandler instance
func NewPromptHandler(service service.PromptService) *PromptHandler {
	return &PromptHandler{
		service: service,
	}
}

// Ask godoc
// @Summary Ask an academic question
// @Description Forwards the question to the text model and returns its markdown answer
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.ModelAnswerResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ask [post]
func (h *PromptHandler) Ask(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedBodyKey).(*dto.AskRequest)

	answer, err := h.service.Ask(c.UserContext(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.ModelAnswerResponse{Response: answer})
}

// Explain godoc
// @Summary Explain a concept
// @Description Explains a topic at the requested level (default Beginner)
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body dto.ExplainRequest true "Topic and level"
// @Success 200 {object} dto.ModelAnswerResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/explain [post]
func (h *PromptHandler) Explain(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedBodyKey).(*dto.ExplainRequest)

	answer, err := h.service.Explain(c.UserContext(), req.Topic, req.Level)
	if err != nil {
		return err
	}
	return c.JSON(dto.ModelAnswerResponse{Response: answer})
}

// Quiz godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz. When the model output is not a JSON array the
// @Description response is still 200 and carries the raw text under raw_response.
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Topic and difficulty"
// @Success 200 {object} dto.QuizResponse{quiz=[]domain.QuizItem}
// @Success 200 {object} dto.QuizFallbackResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quiz [post]
func (h *PromptHandler) Quiz(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedBodyKey).(*dto.QuizRequest)

	text, err := h.service.Quiz(c.UserContext(), req.Topic, req.Difficulty)
	if err != nil {
		return err
	}

	items, err := domain.ParseQuizPayload(text)
	if err != nil {
		logger.Get().Warn("Quiz JSON parse error",
			zap.String("topic", req.Topic),
			zap.Error(err))
		return c.JSON(dto.QuizFallbackResponse{
			Error:       quizFailureMessage,
			RawResponse: text,
		})
	}

	return c.JSON(dto.QuizResponse{Quiz: items})
}

// Summarize godoc
// @Summary Summarize text
// @Description Summarizes the given text in the requested mode (default Bullet points)
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body dto.SummarizeRequest true "Text and mode"
// @Success 200 {object} dto.ModelAnswerResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/summarize [post]
func (h *PromptHandler) Summarize(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedBodyKey).(*dto.SummarizeRequest)

	answer, err := h.service.Summarize(c.UserContext(), req.Text, req.Mode)
	if err != nil {
		return err
	}
	return c.JSON(dto.ModelAnswerResponse{Response: answer})
}
