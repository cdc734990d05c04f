package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edugenie/internal/domain"
	"edugenie/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultLevel      = "Beginner"
	DefaultDifficulty = "Medium"
	DefaultMode       = "Bullet points"
)

const askInstruction = "You are EduGenie, a helpful AI academic assistant. " +
	"Provide clear, concise, and accurate answers to academic questions. " +
	"Use markdown formatting for better readability. " +
	"For mathematical or chemical formulas, use standard LaTeX notation " +
	`(e.g., $E=mc^2$ or $\text{H}_2\text{O}$) as it will be rendered.`

// PromptService turns user requests into single model calls.
type PromptService interface {
	Ask(ctx context.Context, question string) (string, error)
	Explain(ctx context.Context, topic, level string) (string, error)
	// Quiz returns the model text with any surrounding code fence removed.
	// The text is not guaranteed to be valid JSON.
	Quiz(ctx context.Context, topic, difficulty string) (string, error)
	Summarize(ctx context.Context, text, mode string) (string, error)
}

type promptService struct {
	generator domain.TextGenerator
}

// NewPromptService creates a PromptService backed by generator.
func NewPromptService(generator domain.TextGenerator) PromptService {
	return &promptService{generator: generator}
}

// BuildPrompt frames content with a role-labelled instruction. Without an
// instruction the content is sent verbatim.
func BuildPrompt(content, instruction string) string {
	if instruction == "" {
		return content
	}
	return fmt.Sprintf("System: %s\n\nUser: %s", instruction, content)
}

// invoke issues exactly one model call. Every failure, including a blank
// response, comes back as an UPSTREAM_FAULT.
func (s *promptService) invoke(ctx context.Context, op, content, instruction string) (string, error) {
	l := logger.Get()

	text, err := s.generator.Generate(ctx, BuildPrompt(content, instruction))
	if err != nil {
		l.Debug("Model call failed", zap.String("operation", op), zap.Error(err))
		if errors.Is(err, domain.ErrUpstream) {
			return "", err
		}
		return "", domain.NewUpstreamError(err)
	}
	if strings.TrimSpace(text) == "" {
		l.Debug("Model returned blank text", zap.String("operation", op))
		return "", domain.NewUpstreamError(errors.New("empty response from model"))
	}
	return text, nil
}

func (s *promptService) Ask(ctx context.Context, question string) (string, error) {
	return s.invoke(ctx, "ask", question, askInstruction)
}

func (s *promptService) Explain(ctx context.Context, topic, level string) (string, error) {
	if level == "" {
		level = DefaultLevel
	}
	instruction := fmt.Sprintf("Explain the following topic for a %s level student: %s. ", level, topic) +
		"Break down complex concepts into simple steps, use real-life examples, " +
		"and keep the language easy to understand. Use markdown."
	return s.invoke(ctx, "explain", "Explain "+topic, instruction)
}

func (s *promptService) Quiz(ctx context.Context, topic, difficulty string) (string, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	instruction := fmt.Sprintf("Generate a quiz on the topic: %s with %s difficulty. ", topic, difficulty) +
		"The output MUST be a valid JSON array of objects. " +
		"Each object must have: 'question', 'options' (list of 4 strings), 'answer' (the correct option string). " +
		"Generate at least 5 questions."

	raw, err := s.invoke(ctx, "quiz", "Generate quiz for "+topic, instruction)
	if err != nil {
		return "", err
	}

	extracted := ExtractFencedJSON(raw)
	if extracted != raw {
		logger.Get().Debug("Stripped code fence from quiz response",
			zap.Int("raw_length", len(raw)),
			zap.Int("extracted_length", len(extracted)))
	}
	return extracted, nil
}

func (s *promptService) Summarize(ctx context.Context, text, mode string) (string, error) {
	if mode == "" {
		mode = DefaultMode
	}
	instruction := fmt.Sprintf("Summarize the following text in %s mode. ", mode) +
		"Highlight key terms and keep it concise. Use markdown."
	return s.invoke(ctx, "summarize", "Summarize this: "+text, instruction)
}
