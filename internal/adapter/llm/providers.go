package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"edugenie/internal/config"
	"edugenie/internal/domain"
	"edugenie/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOllamaModel = "qwen3:0.6b"
)

// New builds the generator for the configured provider. Missing credentials
// surface as CONFIGURATION_FAULT before any client is constructed.
func New(ctx context.Context, cfg config.ModelConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		model llms.Model
		name  = cfg.Name
		err   error
	)

	switch cfg.Provider {
	case config.ProviderGoogleAI:
		if name == "" {
			name = DefaultGeminiModel
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(name),
		)
	case config.ProviderOpenAI:
		if name == "" {
			name = DefaultOpenAIModel
		}
		model, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(name),
		)
	case config.ProviderOllama:
		if name == "" {
			name = DefaultOllamaModel
		}
		// No client timeout: request lifetime is bounded by the caller's context.
		httpClient := &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		}
		model, err = ollama.New(
			ollama.WithServerURL(cfg.OllamaServerURL),
			ollama.WithModel(name),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, domain.NewConfigurationError(fmt.Sprintf("unsupported model provider: %q", cfg.Provider))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	logger.Get().Info("Text model client initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", name))

	return NewGenerator(model, cfg.Provider, name)
}
