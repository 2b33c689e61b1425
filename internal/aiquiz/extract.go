package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONFound      = errors.New("no JSON object found in model output")
	ErrIncompleteJSON   = errors.New("unterminated JSON object in model output")
	ErrInvalidJSON      = errors.New("model output is not valid JSON")
	ErrInvalidQuizShape = errors.New("model output is not a valid quiz")
)

// ExtractJSONObject returns the first balanced {...} object in text, starting
// at the first '{'. Commentary or markdown fences around the object are
// ignored. Braces inside JSON string literals do not affect the nesting depth.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONFound
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrIncompleteJSON
}

// ParseQuiz recovers a Quiz from raw model output. The object must carry
// "title" and "questions" and pass the quiz schema before it is decoded.
func ParseQuiz(text string, validator *Validator) (*Quiz, error) {
	candidate, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	for _, key := range []string{"title", "questions"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidQuizShape, key)
		}
	}

	if validator != nil {
		if err := validator.Validate([]byte(candidate)); err != nil {
			return nil, err
		}
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(candidate), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizShape, err)
	}
	return &quiz, nil
}

func isExtractionError(err error) bool {
	return errors.Is(err, ErrNoJSONFound) ||
		errors.Is(err, ErrIncompleteJSON) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidQuizShape)
}
