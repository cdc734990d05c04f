package validation

import (
	"testing"

	"edugenie/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateAskRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateAskRequest(&dto.AskRequest{Question: "What is gravity?"}))

	errs := v.ValidateAskRequest(&dto.AskRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "question", errs[0].Field)
	assert.Equal(t, "field required", errs[0].Message)

	errs = v.ValidateAskRequest(&dto.AskRequest{Question: "   "})
	require.Len(t, errs, 1)
	assert.Equal(t, "must not be blank", errs[0].Message)
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateExplainRequest(&dto.ExplainRequest{Topic: "Gravity"}))
	assert.Len(t, v.ValidateExplainRequest(&dto.ExplainRequest{Level: "Expert"}), 1)

	assert.Empty(t, v.ValidateQuizRequest(&dto.QuizRequest{Topic: "Gravity"}))
	errs := v.ValidateQuizRequest(&dto.QuizRequest{Difficulty: "Hard"})
	require.Len(t, errs, 1)
	assert.Equal(t, "topic", errs[0].Field)

	assert.Empty(t, v.ValidateSummarizeRequest(&dto.SummarizeRequest{Text: "abc"}))
	errs = v.ValidateSummarizeRequest(&dto.SummarizeRequest{Mode: "Paragraph"})
	require.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
}
