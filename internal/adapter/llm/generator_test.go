package llm

import (
	"context"
	"errors"
	"testing"

	"edugenie/internal/config"
	"edugenie/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// MockModel is a testify mock of llms.Model.
type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func singlePrompt(prompt string) interface{} {
	return mock.MatchedBy(func(msgs []llms.MessageContent) bool {
		if len(msgs) != 1 || msgs[0].Role != llms.ChatMessageTypeHuman || len(msgs[0].Parts) != 1 {
			return false
		}
		part, ok := msgs[0].Parts[0].(llms.TextContent)
		return ok && part.Text == prompt
	})
}

func TestNewGenerator_NilModel(t *testing.T) {
	g, err := NewGenerator(nil, "googleai", "x")
	assert.Nil(t, g)
	assert.Error(t, err)
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		model := new(MockModel)
		model.On("GenerateContent", ctx, singlePrompt("What is gravity?")).
			Return(&llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "Gravity is a force."}}}, nil)

		g, err := NewGenerator(model, "googleai", DefaultGeminiModel)
		require.NoError(t, err)

		text, err := g.Generate(ctx, "What is gravity?")
		require.NoError(t, err)
		assert.Equal(t, "Gravity is a force.", text)
		model.AssertExpectations(t)
	})

	t.Run("ModelError", func(t *testing.T) {
		model := new(MockModel)
		model.On("GenerateContent", ctx, mock.Anything).Return(nil, errors.New("quota exceeded"))

		g, _ := NewGenerator(model, "googleai", DefaultGeminiModel)
		text, err := g.Generate(ctx, "hi")
		assert.Empty(t, text)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("NoChoices", func(t *testing.T) {
		model := new(MockModel)
		model.On("GenerateContent", ctx, mock.Anything).Return(&llms.ContentResponse{}, nil)

		g, _ := NewGenerator(model, "googleai", DefaultGeminiModel)
		_, err := g.Generate(ctx, "hi")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("BlankText", func(t *testing.T) {
		model := new(MockModel)
		model.On("GenerateContent", ctx, mock.Anything).
			Return(&llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "  \n"}}}, nil)

		g, _ := NewGenerator(model, "googleai", DefaultGeminiModel)
		_, err := g.Generate(ctx, "hi")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestNew_ConfigurationFault(t *testing.T) {
	_, err := New(context.Background(), config.ModelConfig{Provider: config.ProviderGoogleAI})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = New(context.Background(), config.ModelConfig{Provider: "unknown"})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNew_Ollama(t *testing.T) {
	g, err := New(context.Background(), config.ModelConfig{
		Provider:        config.ProviderOllama,
		OllamaServerURL: "http://localhost:11434",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultOllamaModel, g.name)
	assert.Equal(t, config.ProviderOllama, g.provider)
}
