package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// Validator checks decoded model output against the schema reflected from
// Quiz: every question has exactly four options and a correct_answer in [0,3].
type Validator struct {
	schema *gojsonschema.Schema
}

func NewValidator() (*Validator, error) {
	raw, err := QuizSchema()
	if err != nil {
		return nil, err
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile quiz schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// QuizSchema returns the JSON Schema document for Quiz.
func QuizSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Quiz{})
	s.Version = draft07

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quiz schema: %w", err)
	}
	return raw, nil
}

func (v *Validator) Validate(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if result.Valid() {
		return nil
	}

	messages := lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) string {
		return e.String()
	})
	return fmt.Errorf("%w: %s", ErrInvalidQuizShape, strings.Join(messages, "; "))
}
