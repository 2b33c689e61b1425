package aiquiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackLookupKnownTopic(t *testing.T) {
	table := DefaultFallbackTable()

	quiz, err := table.Lookup("Mathematics", "easy", 3)
	require.NoError(t, err)

	require.Equal(t, "Mathematics Quiz", quiz.Title)
	require.Equal(t, "A easy difficulty quiz about Mathematics", quiz.Description)
	require.Len(t, quiz.Questions, 3)
	require.Equal(t, fallbackQuizzes["Mathematics"][:3], quiz.Questions)

	for i, q := range quiz.Questions {
		require.Equal(t, i+1, q.ID)
		require.Len(t, q.Options, OptionsPerQuestion)
		require.GreaterOrEqual(t, q.CorrectAnswer, 0)
		require.LessOrEqual(t, q.CorrectAnswer, 3)
	}
}

func TestFallbackLookupUnknownTopicUsesDefault(t *testing.T) {
	table := DefaultFallbackTable()

	first, err := table.Lookup("Quantum Basket Weaving", "hard", 2)
	require.NoError(t, err)
	second, err := table.Lookup("Quantum Basket Weaving", "hard", 2)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, "Quantum Basket Weaving Quiz", first.Title)
	require.Equal(t, fallbackQuizzes[DefaultFallbackTopic][:2], first.Questions)
}

func TestFallbackLookupTruncatesNeverPads(t *testing.T) {
	table := DefaultFallbackTable()

	quiz, err := table.Lookup("World Geography", "medium", 10)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, len(fallbackQuizzes["World Geography"]))
}

func TestFallbackLookupReturnsCopies(t *testing.T) {
	table := DefaultFallbackTable()

	quiz, err := table.Lookup("Art and Artists", "medium", 1)
	require.NoError(t, err)

	quiz.Questions[0].Options[0] = "mutated"
	quiz.Questions[0].Question = "mutated"

	again, err := table.Lookup("Art and Artists", "medium", 1)
	require.NoError(t, err)
	require.Equal(t, "Michelangelo", again.Questions[0].Options[0])
	require.Equal(t, "Who painted the Mona Lisa?", again.Questions[0].Question)
}

func TestFallbackLookupMisconfigured(t *testing.T) {
	tests := []struct {
		name  string
		table *FallbackTable
		topic string
	}{
		{"empty table", NewFallbackTable(map[string][]Question{}, DefaultFallbackTopic), "Mathematics"},
		{"missing default", NewFallbackTable(map[string][]Question{"Mathematics": fallbackQuizzes["Mathematics"]}, "Nope"), "Biology"},
		{"empty topic entry", NewFallbackTable(map[string][]Question{"Mathematics": nil}, "Mathematics"), "Mathematics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.Lookup(tt.topic, "easy", 3)
			require.ErrorIs(t, err, ErrFallbackUnavailable)
		})
	}
}

func TestFallbackTableIsWellFormed(t *testing.T) {
	table := DefaultFallbackTable()
	require.Len(t, table.Topics(), 7)
	require.Contains(t, table.Topics(), DefaultFallbackTopic)

	for topic, questions := range fallbackQuizzes {
		require.Len(t, questions, 5, topic)
		for i, q := range questions {
			require.Equal(t, i+1, q.ID, topic)
			require.Len(t, q.Options, OptionsPerQuestion, topic)
			require.True(t, q.CorrectAnswer >= 0 && q.CorrectAnswer < OptionsPerQuestion, topic)
			require.NotEmpty(t, q.Explanation, topic)
		}
	}
}
