package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// TextGenerator is the port to the external text model.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// QuizItem is the item shape the quiz prompt asks the model for. Quiz
// payloads are relayed as the model wrote them, so items are not decoded
// into this type on the request path.
type QuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// AnswerInOptions reports whether the answer is one of the options.
func (q QuizItem) AnswerInOptions() bool {
	for _, o := range q.Options {
		if o == q.Answer {
			return true
		}
	}
	return false
}

// ParseQuizPayload checks that model text is a JSON array and returns its
// elements verbatim. Anything else yields a MALFORMED_OUTPUT error. Item
// shape, counts and option membership are not enforced here.
func ParseQuizPayload(text string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, NewMalformedOutputError(err)
	}
	if items == nil {
		return nil, NewMalformedOutputError(fmt.Errorf("quiz payload is null"))
	}
	return items, nil
}
