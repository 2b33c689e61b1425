package aiquiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "noise around nested object",
			input: `noise {"a":1,"b":{"c":2}} trailing`,
			want:  `{"a":1,"b":{"c":2}}`,
		},
		{
			name:  "markdown fence",
			input: "Here is your quiz:\n```json\n{\"title\": \"T\"}\n```\nEnjoy!",
			want:  `{"title": "T"}`,
		},
		{
			name:  "first object wins",
			input: `{"a":1} {"b":2}`,
			want:  `{"a":1}`,
		},
		{
			name:  "braces inside strings",
			input: `x {"q":"what does {} mean?","e":"a \"}\" quote"} y`,
			want:  `{"q":"what does {} mean?","e":"a \"}\" quote"}`,
		},
		{
			name:    "no brace",
			input:   "the model refused to answer",
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "unterminated",
			input:   `{ "a": 1 `,
			wantErr: ErrIncompleteJSON,
		},
		{
			name:    "unterminated nested",
			input:   `prefix {"a":{"b":2}`,
			wantErr: ErrIncompleteJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

const validQuizJSON = `{
	"title": "Go Quiz",
	"description": "About Go",
	"questions": [
		{
			"id": 1,
			"question": "Which keyword starts a goroutine?",
			"options": ["go", "async", "spawn", "thread"],
			"correct_answer": 0,
			"explanation": "The go statement starts a goroutine."
		},
		{
			"id": 2,
			"question": "What does defer do?",
			"options": ["Skips", "Delays a call until return", "Panics", "Loops"],
			"correct_answer": 1,
			"explanation": "Deferred calls run when the function returns."
		}
	]
}`

func TestParseQuiz(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	t.Run("valid with commentary", func(t *testing.T) {
		quiz, err := ParseQuiz("Sure! "+validQuizJSON+" Good luck.", validator)
		require.NoError(t, err)
		require.Equal(t, "Go Quiz", quiz.Title)
		require.Len(t, quiz.Questions, 2)
		require.Equal(t, 1, quiz.Questions[1].CorrectAnswer)
		require.Len(t, quiz.Questions[0].Options, 4)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseQuiz(`{"title": "x", "questions": [,]}`, validator)
		require.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ParseQuiz(`{"questions": []}`, validator)
		require.ErrorIs(t, err, ErrInvalidQuizShape)
	})

	t.Run("missing questions", func(t *testing.T) {
		_, err := ParseQuiz(`{"title": "x", "description": "y"}`, validator)
		require.ErrorIs(t, err, ErrInvalidQuizShape)
	})

	t.Run("no json", func(t *testing.T) {
		_, err := ParseQuiz("I cannot help with that.", validator)
		require.ErrorIs(t, err, ErrNoJSONFound)
	})

	t.Run("without validator only shape is checked", func(t *testing.T) {
		quiz, err := ParseQuiz(`{"title":"x","questions":[{"question":"q","options":["a"],"correct_answer":7}]}`, nil)
		require.NoError(t, err)
		require.Equal(t, 7, quiz.Questions[0].CorrectAnswer)
	})
}
