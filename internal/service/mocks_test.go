package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// echoGenerator returns the prompt it was given.
type echoGenerator struct {
	prompts []string
}

func (e *echoGenerator) Generate(_ context.Context, prompt string) (string, error) {
	e.prompts = append(e.prompts, prompt)
	return prompt, nil
}
