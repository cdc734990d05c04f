package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edugenie/internal/domain"
	"edugenie/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Generator implements domain.TextGenerator on top of a langchaingo model.
// It is built once at startup and shared by every request.
type Generator struct {
	model    llms.Model
	provider string
	name     string
}

// NewGenerator wraps an already constructed langchaingo model.
func NewGenerator(model llms.Model, provider, name string) (*Generator, error) {
	if model == nil {
		return nil, errors.New("llm model cannot be nil")
	}
	return &Generator{model: model, provider: provider, name: name}, nil
}

// Generate sends prompt as a single human message and returns the first
// choice's text. Zero choices or blank text is reported as an upstream fault.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()
	l.Debug("Calling text model",
		zap.String("provider", g.provider),
		zap.String("model", g.name),
		zap.Int("prompt_length", len(prompt)))

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := g.model.GenerateContent(ctx, messages)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			l.Debug("Text model request aborted", zap.Error(err))
		} else {
			l.Debug("Failed to get response from text model", zap.Error(err))
		}
		return "", domain.NewUpstreamError(fmt.Errorf("%s call failed: %w", g.provider, err))
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		l.Debug("Text model returned no choices", zap.String("provider", g.provider))
		return "", domain.NewUpstreamError(fmt.Errorf("empty response from %s", g.provider))
	}

	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		l.Debug("Text model returned empty text",
			zap.String("provider", g.provider),
			zap.String("stop_reason", resp.Choices[0].StopReason))
		return "", domain.NewUpstreamError(fmt.Errorf("empty response from %s", g.provider))
	}

	l.Debug("Raw model response received", zap.Int("response_length", len(text)))
	return text, nil
}

var _ domain.TextGenerator = (*Generator)(nil)
