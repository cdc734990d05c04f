package validation

import (
	"strings"

	"edugenie/internal/domain"
	"edugenie/internal/dto"
)

// Validator checks request bodies before they reach the prompt service.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAskRequest requires a non-blank question.
func (v *Validator) ValidateAskRequest(req *dto.AskRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Question == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, domain.NewInvalidFormatError("question", "must not be blank"))
	}
	return errors
}

func (v *Validator) ValidateExplainRequest(req *dto.ExplainRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Topic == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	return errors
}

func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Topic == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	return errors
}

func (v *Validator) ValidateSummarizeRequest(req *dto.SummarizeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Text == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	}
	return errors
}
