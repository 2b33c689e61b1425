package aiquiz

const (
	DefaultDifficulty   = "medium"
	DefaultNumQuestions = 5
	OptionsPerQuestion  = 4
)

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question" jsonschema:"required,minLength=1"`
	Options       []string `json:"options" jsonschema:"required,minItems=4,maxItems=4"`
	CorrectAnswer int      `json:"correct_answer" jsonschema:"required,minimum=0,maximum=3"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	Title       string     `json:"title" jsonschema:"required"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions" jsonschema:"required,minItems=1"`
}

type QuizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}
