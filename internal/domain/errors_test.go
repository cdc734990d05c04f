package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := NewUpstreamError(cause)

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrConfiguration)

	wrapped := fmt.Errorf("ask: %w", err)
	assert.ErrorIs(t, wrapped, ErrUpstream)

	var de *DomainError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, CodeUpstream, de.Code)
}

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "index.html not found", NewNotFoundError("index.html not found").Error())
	assert.Equal(t, "empty or failed model response: boom", NewUpstreamError(errors.New("boom")).Error())
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{NewMissingFieldError("topic"), NewInvalidFormatError("question", "must not be blank")}
	assert.Equal(t, "validation failed: topic: field required; question: must not be blank", errs.Error())
}
