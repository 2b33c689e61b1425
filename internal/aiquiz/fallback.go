package aiquiz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

const DefaultFallbackTopic = "Historical Events"

var ErrFallbackUnavailable = errors.New("no fallback quiz available")

// FallbackTable serves pre-authored quizzes when generation fails. Lookups
// are exact matches on topic; unknown topics get the default topic's
// questions. The table is read-only after construction.
type FallbackTable struct {
	quizzes      map[string][]Question
	defaultTopic string
}

func NewFallbackTable(quizzes map[string][]Question, defaultTopic string) *FallbackTable {
	return &FallbackTable{quizzes: quizzes, defaultTopic: defaultTopic}
}

func DefaultFallbackTable() *FallbackTable {
	return NewFallbackTable(fallbackQuizzes, DefaultFallbackTopic)
}

// Lookup returns at most numQuestions questions. It never pads: a topic with
// fewer entries than requested yields a shorter quiz.
func (f *FallbackTable) Lookup(topic, difficulty string, numQuestions int) (*Quiz, error) {
	questions, ok := f.quizzes[topic]
	if !ok {
		questions, ok = f.quizzes[f.defaultTopic]
	}
	if !ok || len(questions) == 0 {
		return nil, ErrFallbackUnavailable
	}

	if numQuestions <= 0 {
		numQuestions = DefaultNumQuestions
	}
	if numQuestions < len(questions) {
		questions = questions[:numQuestions]
	}

	return &Quiz{
		Title:       fmt.Sprintf("%s Quiz", topic),
		Description: fmt.Sprintf("A %s difficulty quiz about %s", difficulty, topic),
		Questions: lo.Map(questions, func(q Question, _ int) Question {
			q.Options = append([]string(nil), q.Options...)
			return q
		}),
	}, nil
}

func (f *FallbackTable) Topics() []string {
	topics := lo.Keys(f.quizzes)
	sort.Strings(topics)
	return topics
}
