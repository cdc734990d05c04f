package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"edugenie/internal/domain"
	"edugenie/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "raw content", BuildPrompt("raw content", ""))
	assert.Equal(t, "System: be brief\n\nUser: hello", BuildPrompt("hello", "be brief"))
}

func TestPromptService_PromptsCarryParameters(t *testing.T) {
	ctx := context.Background()
	echo := &echoGenerator{}
	svc := NewPromptService(echo)

	t.Run("Ask", func(t *testing.T) {
		out, err := svc.Ask(ctx, "What is gravity?")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "System: You are EduGenie"))
		assert.True(t, strings.HasSuffix(out, "\n\nUser: What is gravity?"))
		assert.Contains(t, out, `$\text{H}_2\text{O}$`)
		assert.Contains(t, out, "markdown")
	})

	t.Run("Explain", func(t *testing.T) {
		out, err := svc.Explain(ctx, "Photosynthesis", "Advanced")
		require.NoError(t, err)
		assert.Contains(t, out, "for a Advanced level student: Photosynthesis.")
		assert.Contains(t, out, "User: Explain Photosynthesis")
	})

	t.Run("Quiz", func(t *testing.T) {
		out, err := svc.Quiz(ctx, "Algebra", "Hard")
		require.NoError(t, err)
		assert.Contains(t, out, "Generate a quiz on the topic: Algebra with Hard difficulty.")
		assert.Contains(t, out, "valid JSON array")
		assert.Contains(t, out, "at least 5 questions")
		assert.Contains(t, out, "User: Generate quiz for Algebra")
	})

	t.Run("Summarize", func(t *testing.T) {
		out, err := svc.Summarize(ctx, "Cells are the unit of life.", "Paragraph")
		require.NoError(t, err)
		assert.Contains(t, out, "in Paragraph mode.")
		assert.Contains(t, out, "User: Summarize this: Cells are the unit of life.")
	})

	assert.Len(t, echo.prompts, 4, "each operation makes exactly one model call")
}

func TestPromptService_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewPromptService(&echoGenerator{})

	out, err := svc.Explain(ctx, "Gravity", "")
	require.NoError(t, err)
	assert.Contains(t, out, "for a Beginner level student")

	out, err = svc.Quiz(ctx, "Gravity", "")
	require.NoError(t, err)
	assert.Contains(t, out, "with Medium difficulty")

	out, err = svc.Summarize(ctx, "text", "")
	require.NoError(t, err)
	assert.Contains(t, out, "in Bullet points mode")
}

func TestPromptService_QuizStripsFence(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.AnythingOfType("string")).
		Return("Sure!\n```json\n[{\"question\":\"q\"}]\n```\n", nil).Once()

	svc := NewPromptService(gen)
	out, err := svc.Quiz(ctx, "Biology", "Easy")
	require.NoError(t, err)
	assert.Equal(t, `[{"question":"q"}]`, out)
	gen.AssertExpectations(t)
}

func TestPromptService_UpstreamFailures(t *testing.T) {
	ctx := context.Background()

	calls := map[string]func(PromptService) (string, error){
		"ask":       func(s PromptService) (string, error) { return s.Ask(ctx, "q") },
		"explain":   func(s PromptService) (string, error) { return s.Explain(ctx, "t", "") },
		"quiz":      func(s PromptService) (string, error) { return s.Quiz(ctx, "t", "") },
		"summarize": func(s PromptService) (string, error) { return s.Summarize(ctx, "t", "") },
	}

	for name, call := range calls {
		t.Run(name+" model error", func(t *testing.T) {
			gen := new(MockTextGenerator)
			gen.On("Generate", ctx, mock.Anything).Return("", errors.New("connection reset")).Once()

			out, err := call(NewPromptService(gen))
			assert.Empty(t, out)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstream)
			assert.Contains(t, err.Error(), "connection reset")
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})

		for _, blank := range []string{"", "   \n", "\t \n "} {
			t.Run(name+" blank text", func(t *testing.T) {
				gen := new(MockTextGenerator)
				gen.On("Generate", ctx, mock.Anything).Return(blank, nil).Once()

				out, err := call(NewPromptService(gen))
				assert.Empty(t, out)
				assert.ErrorIs(t, err, domain.ErrUpstream)
			})
		}
	}
}

func TestPromptService_PassesUpstreamFaultThrough(t *testing.T) {
	ctx := context.Background()
	fault := domain.NewUpstreamError(errors.New("quota"))
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("", fault)

	_, err := NewPromptService(gen).Ask(ctx, "q")
	assert.Same(t, fault, err)
}

func TestPromptService_FailuresAreNotLoggedAsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("", errors.New("connection reset")).Once()
	gen.On("Generate", ctx, mock.Anything).Return(" ", nil).Once()

	svc := NewPromptService(gen)
	_, err := svc.Ask(ctx, "q")
	require.Error(t, err)
	_, err = svc.Summarize(ctx, "t", "")
	require.Error(t, err)

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, entry.Level, entry.Message)
	}
}
