package aiquiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuizSchema(t *testing.T) {
	raw, err := QuizSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, draft07, doc["$schema"])
	require.ElementsMatch(t, []interface{}{"title", "questions"}, doc["required"])
}

func TestValidatorValidate(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{
			name:  "valid",
			doc:   validQuizJSON,
			valid: true,
		},
		{
			name:  "extra fields and missing optional ones",
			doc:   `{"title":"t","difficulty":"easy","questions":[{"question":"q","options":["a","b","c","d"],"correct_answer":3}]}`,
			valid: true,
		},
		{
			name: "three options",
			doc:  `{"title":"t","questions":[{"question":"q","options":["a","b","c"],"correct_answer":0}]}`,
		},
		{
			name: "five options",
			doc:  `{"title":"t","questions":[{"question":"q","options":["a","b","c","d","e"],"correct_answer":0}]}`,
		},
		{
			name: "answer out of range",
			doc:  `{"title":"t","questions":[{"question":"q","options":["a","b","c","d"],"correct_answer":4}]}`,
		},
		{
			name: "negative answer",
			doc:  `{"title":"t","questions":[{"question":"q","options":["a","b","c","d"],"correct_answer":-1}]}`,
		},
		{
			name: "answer as letter",
			doc:  `{"title":"t","questions":[{"question":"q","options":["a","b","c","d"],"correct_answer":"B"}]}`,
		},
		{
			name: "missing question text",
			doc:  `{"title":"t","questions":[{"options":["a","b","c","d"],"correct_answer":1}]}`,
		},
		{
			name: "no questions",
			doc:  `{"title":"t","questions":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate([]byte(tt.doc))
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidQuizShape)
		})
	}
}
