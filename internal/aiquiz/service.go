package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-generator/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidRequest = errors.New("invalid quiz request")

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error)
}

type ServiceConfig struct {
	Timeout      time.Duration
	StrictMode   bool
	MaxQuestions int
}

type service struct {
	provider  Provider
	validator *Validator
	fallback  *FallbackTable
	cfg       ServiceConfig
}

// NewService wires generation and fallback. provider may be nil, in which
// case every quiz comes from the fallback table.
func NewService(provider Provider, validator *Validator, fallback *FallbackTable, cfg ServiceConfig) Service {
	return &service{
		provider:  provider,
		validator: validator,
		fallback:  fallback,
		cfg:       cfg,
	}
}

func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error) {
	req, err := NormalizeRequest(req, s.cfg.MaxQuestions)
	if err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"generation_id": uuid.NewString(),
		"topic":         req.Topic,
		"difficulty":    req.Difficulty,
		"num_questions": req.NumQuestions,
	})

	if s.provider == nil {
		log.Info("[AIQUIZ] No model backend configured, serving fallback quiz")
		return s.fallbackQuiz(log, req)
	}

	quiz, err := s.generate(ctx, req)
	if err == nil {
		log.WithField("provider", s.provider.Name()).Infof("[AIQUIZ] Generated %d questions", len(quiz.Questions))
		return quiz, nil
	}

	log = log.WithError(err).WithField("provider", s.provider.Name())
	switch {
	case isBackendFailure(err):
		log.Warn("[AIQUIZ] Model backend failed, serving fallback quiz")
	case isExtractionError(err) && s.cfg.StrictMode:
		log.Error("[AIQUIZ] Model output rejected")
		return nil, err
	case isExtractionError(err):
		log.Warn("[AIQUIZ] Model output rejected, serving fallback quiz")
	default:
		log.Error("[AIQUIZ] Unexpected generation error, serving fallback quiz")
	}
	return s.fallbackQuiz(log, req)
}

func (s *service) generate(ctx context.Context, req QuizRequest) (*Quiz, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	raw, err := s.provider.Generate(ctx, BuildPrompt(req.Topic, req.Difficulty, req.NumQuestions))
	if err != nil {
		return nil, err
	}

	quiz, err := ParseQuiz(raw, s.validator)
	if err != nil {
		return nil, err
	}

	if len(quiz.Questions) > req.NumQuestions {
		quiz.Questions = quiz.Questions[:req.NumQuestions]
	}
	for i := range quiz.Questions {
		quiz.Questions[i].ID = i + 1
	}
	return quiz, nil
}

func (s *service) fallbackQuiz(log logrus.FieldLogger, req QuizRequest) (*Quiz, error) {
	quiz, err := s.fallback.Lookup(req.Topic, req.Difficulty, req.NumQuestions)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Fallback table cannot serve request")
		return nil, err
	}
	return quiz, nil
}

// NormalizeRequest applies defaults and rejects requests that cannot be served.
func NormalizeRequest(req QuizRequest, maxQuestions int) (QuizRequest, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	req.Difficulty = strings.TrimSpace(req.Difficulty)

	if req.Topic == "" {
		return req, fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = DefaultNumQuestions
	}
	if req.NumQuestions < 0 {
		return req, fmt.Errorf("%w: num_questions must be positive", ErrInvalidRequest)
	}
	if maxQuestions > 0 && req.NumQuestions > maxQuestions {
		return req, fmt.Errorf("%w: num_questions must not exceed %d", ErrInvalidRequest, maxQuestions)
	}
	return req, nil
}
