package aiquiz

import "fmt"

const quizShapeExample = `{
    "title": "Quiz Title",
    "description": "Quiz description",
    "questions": [
        {
            "id": 1,
            "question": "Question text here?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Explanation of why this is the correct answer"
        }
    ]
}`

const quizRequirements = `Requirements:
- Each question should have exactly 4 options (A, B, C, D)
- correct_answer should be the index (0-3) of the correct option
- Questions should be engaging and educational
- Explanations should be clear and informative
- Make sure the JSON is valid and properly formatted
- Respond with the JSON object only`

// systemPrompt is sent as a separate system message by chat-style providers.
const systemPrompt = "You are a quiz generator for an educational app. You answer with a single valid JSON object and nothing else."

func BuildPrompt(topic, difficulty string, numQuestions int) string {
	return fmt.Sprintf(
		"Generate a %s difficulty quiz about %s with %d multiple choice questions.\n\n"+
			"Format the response as a JSON object with this exact structure:\n%s\n\n%s\n",
		difficulty, topic, numQuestions, quizShapeExample, quizRequirements,
	)
}
