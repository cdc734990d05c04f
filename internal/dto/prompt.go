package dto

import (
	"encoding/json"

	"edugenie/internal/domain"
)

// AskRequest represents a free-form academic question
// @Description Request body for /api/ask
type AskRequest struct {
	Question string `json:"question" example:"What is gravity?"`
}

// ExplainRequest asks for an explanation pitched at a given level
// @Description Request body for /api/explain
type ExplainRequest struct {
	Topic string `json:"topic" example:"Photosynthesis"`
	Level string `json:"level,omitempty" example:"Beginner"`
}

// QuizRequest asks for a multiple-choice quiz on a topic
// @Description Request body for /api/quiz
type QuizRequest struct {
	Topic      string `json:"topic" example:"World War II"`
	Difficulty string `json:"difficulty,omitempty" example:"Medium"`
}

// SummarizeRequest asks for a summary of the given text
// @Description Request body for /api/summarize
type SummarizeRequest struct {
	Text string `json:"text" example:"The mitochondria is the powerhouse of the cell..."`
	Mode string `json:"mode,omitempty" example:"Bullet points"`
}

// ModelAnswerResponse carries the model's text unchanged
type ModelAnswerResponse struct {
	Response string `json:"response"`
}

// QuizResponse carries the parsed quiz array exactly as the model produced it
type QuizResponse struct {
	Quiz []json.RawMessage `json:"quiz" swaggertype:"array,object"`
}

// QuizFallbackResponse is returned with 200 when the model output could not be parsed
type QuizFallbackResponse struct {
	Error       string `json:"error" example:"Failed to generate structured quiz"`
	RawResponse string `json:"raw_response"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse lists every invalid field
type ValidationErrorResponse struct {
	Detail []domain.ValidationError `json:"detail"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
