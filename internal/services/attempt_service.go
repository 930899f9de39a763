package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/cache"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/events"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/questionbank"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/scoring"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/validator"
)

// AttemptService drives the assessment lifecycle: create, start, answer,
// complete.
type AttemptService interface {
	Create(ctx context.Context, req *CreateAttemptRequest) (*models.AssessmentAttempt, error)
	Start(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *SubmitAnswerRequest) (*scoring.ScoreResult, error)
	Complete(ctx context.Context, sessionID string) (*AttemptOutcome, error)

	GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error)
	GetOutcome(ctx context.Context, sessionID string) (*AttemptOutcome, error)
	GetQuestions(ctx context.Context, sessionID string) ([]models.PublicQuestion, error)

	// GetResults returns the attempt with its per-question responses
	// loaded.
	GetResults(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error)
	ListByCrewMember(ctx context.Context, crewMemberID uint, limit, offset int) ([]*models.AssessmentAttempt, int64, error)
	GetStats(ctx context.Context, division *models.DivisionType) (*repositories.AttemptStats, error)

	// ExpireOverdue marks in-progress attempts past their deadline as
	// completed with their partial scores.
	ExpireOverdue(ctx context.Context) (int, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type CreateAttemptRequest struct {
	CrewMemberID uint                `json:"crew_member_id" validate:"required"`
	Division     models.DivisionType `json:"division" validate:"required,division_type"`
}

type SubmitAnswerRequest struct {
	QuestionID       uint   `json:"question_id" validate:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds *int   `json:"time_spent_seconds" validate:"omitempty,min=0"`
}

// AttemptOutcome pairs the stored attempt with its aggregated scores.
type AttemptOutcome struct {
	Attempt *models.AssessmentAttempt `json:"attempt"`
	Outcome scoring.AssessmentOutcome `json:"outcome"`
}

type attemptService struct {
	attempts   repositories.AttemptRepository
	responses  repositories.ResponseRepository
	crew       repositories.CrewRepository
	bank       *questionbank.Bank
	engine     *scoring.Engine
	aggregator *scoring.Aggregator
	publisher  events.EventPublisher
	cache      cache.CacheService
	logger     *slog.Logger
	validator  *validator.Validator

	attemptDuration time.Duration
}

func NewAttemptService(
	attempts repositories.AttemptRepository,
	responses repositories.ResponseRepository,
	crew repositories.CrewRepository,
	bank *questionbank.Bank,
	engine *scoring.Engine,
	aggregator *scoring.Aggregator,
	publisher events.EventPublisher,
	cacheService cache.CacheService,
	logger *slog.Logger,
	v *validator.Validator,
	attemptDuration time.Duration,
) AttemptService {
	return &attemptService{
		attempts:        attempts,
		responses:       responses,
		crew:            crew,
		bank:            bank,
		engine:          engine,
		aggregator:      aggregator,
		publisher:       publisher,
		cache:           cacheService,
		logger:          logger,
		validator:       v,
		attemptDuration: attemptDuration,
	}
}

// ===== CORE ATTEMPT OPERATIONS =====

func (s *attemptService) Create(ctx context.Context, req *CreateAttemptRequest) (*models.AssessmentAttempt, error) {
	s.logger.Info("Creating assessment attempt",
		"crew_member_id", req.CrewMemberID,
		"division", req.Division)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.crew.GetByID(ctx, req.CrewMemberID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	active, err := s.attempts.GetActiveAttempt(ctx, req.CrewMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active attempt: %w", err)
	}
	if active != nil {
		return nil, ErrAttemptInProgress
	}

	attempt := &models.AssessmentAttempt{
		SessionID:    uuid.NewString(),
		CrewMemberID: req.CrewMemberID,
		Division:     req.Division,
		Status:       models.AttemptStatusNotStarted,
		ExpiresAt:    time.Now().Add(s.attemptDuration),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	s.logger.Info("Assessment attempt created",
		"attempt_id", attempt.ID,
		"session_id", attempt.SessionID)

	return attempt, nil
}

func (s *attemptService) Start(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error) {
	attempt, err := s.getAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch attempt.Status {
	case models.AttemptStatusInProgress:
		return nil, ErrAttemptAlreadyStarted
	case models.AttemptStatusCompleted:
		return nil, ErrAttemptAlreadyComplete
	}

	now := time.Now()
	if attempt.IsExpired(now) {
		return nil, ErrAttemptExpired
	}

	attempt.Status = models.AttemptStatusInProgress
	attempt.StartedAt = &now
	attempt.ExpiresAt = now.Add(s.attemptDuration)
	if err := s.attempts.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to start attempt: %w", err)
	}

	if err := s.publisher.PublishAssessmentEvent(ctx, events.NewAttemptStartedEvent(attempt)); err != nil {
		s.logger.Error("Failed to publish attempt started event",
			"attempt_id", attempt.ID, "error", err)
	}

	s.logger.Info("Assessment attempt started",
		"attempt_id", attempt.ID,
		"session_id", attempt.SessionID,
		"expires_at", attempt.ExpiresAt)

	return attempt, nil
}

func (s *attemptService) SubmitAnswer(ctx context.Context, sessionID string, req *SubmitAnswerRequest) (*scoring.ScoreResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	attempt, err := s.getAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if attempt.Status != models.AttemptStatusInProgress {
		return nil, ErrAttemptNotActive
	}
	if attempt.IsExpired(time.Now()) {
		return nil, ErrAttemptExpired
	}

	question, err := s.bank.Get(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, req.QuestionID)
	}

	answered, err := s.responses.HasResponse(ctx, attempt.ID, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing response: %w", err)
	}
	if answered {
		return nil, ErrQuestionAlreadyAnswered
	}

	result, err := s.engine.Score(question, req.Answer)
	if err != nil {
		return nil, fmt.Errorf("failed to score answer: %w", err)
	}

	response := &models.AssessmentResponse{
		AttemptID:        attempt.ID,
		QuestionID:       question.ID,
		Module:           question.Module,
		RawAnswer:        req.Answer,
		IsCorrect:        result.IsCorrect,
		PointsEarned:     result.PointsEarned,
		PointsPossible:   result.PointsPossible,
		Feedback:         result.Feedback,
		IsSafetyRelated:  result.IsSafetyRelated,
		TimeSpentSeconds: req.TimeSpentSeconds,
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	if err := s.publisher.PublishAssessmentEvent(ctx, events.NewAttemptSubmittedEvent(attempt, response)); err != nil {
		s.logger.Error("Failed to publish answer submitted event",
			"attempt_id", attempt.ID, "question_id", question.ID, "error", err)
	}

	s.logger.Info("Answer submitted",
		"attempt_id", attempt.ID,
		"question_id", question.ID,
		"module", question.Module,
		"is_correct", result.IsCorrect,
		"points_earned", result.PointsEarned)

	return &result, nil
}

func (s *attemptService) Complete(ctx context.Context, sessionID string) (*AttemptOutcome, error) {
	attempt, err := s.getAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if attempt.Status == models.AttemptStatusCompleted {
		return nil, ErrAttemptAlreadyComplete
	}
	if attempt.Status != models.AttemptStatusInProgress {
		return nil, ErrAttemptNotActive
	}

	count, err := s.responses.CountByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}
	if count < models.QuestionCount {
		return nil, fmt.Errorf("%w: %d of %d answered", ErrAttemptIncomplete, count, models.QuestionCount)
	}

	return s.finalize(ctx, attempt)
}

// finalize aggregates the stored responses into the attempt's outcome and
// marks it completed.
func (s *attemptService) finalize(ctx context.Context, attempt *models.AssessmentAttempt) (*AttemptOutcome, error) {
	responses, err := s.responses.GetByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	results := make([]scoring.ScoreResult, 0, len(responses))
	for _, r := range responses {
		results = append(results, scoring.ScoreResult{
			QuestionID:      r.QuestionID,
			Module:          r.Module,
			IsCorrect:       r.IsCorrect,
			PointsEarned:    r.PointsEarned,
			PointsPossible:  r.PointsPossible,
			IsSafetyRelated: r.IsSafetyRelated,
		})
	}
	outcome := s.aggregator.Finalize(results)

	now := time.Now()
	attempt.Status = models.AttemptStatusCompleted
	attempt.CompletedAt = &now
	applyOutcome(attempt, outcome)

	if err := s.attempts.Update(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to complete attempt: %w", err)
	}

	if err := s.cache.Delete(ctx, outcomeCacheKey(attempt.SessionID)); err != nil {
		s.logger.Warn("Failed to invalidate outcome cache",
			"session_id", attempt.SessionID, "error", err)
	}

	event := events.NewAttemptCompletedEvent(attempt, outcome.TotalScore, outcome.MaxScore, outcome.OverallPass)
	if err := s.publisher.PublishAssessmentEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish attempt completed event",
			"attempt_id", attempt.ID, "error", err)
	}

	s.logger.Info("Assessment attempt completed",
		"attempt_id", attempt.ID,
		"session_id", attempt.SessionID,
		"total_score", outcome.TotalScore,
		"overall_pass", outcome.OverallPass)

	return &AttemptOutcome{Attempt: attempt, Outcome: outcome}, nil
}

// ===== QUERY OPERATIONS =====

func (s *attemptService) GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error) {
	return s.getAttempt(ctx, sessionID)
}

func (s *attemptService) GetOutcome(ctx context.Context, sessionID string) (*AttemptOutcome, error) {
	var cached AttemptOutcome
	if err := s.cache.Get(ctx, outcomeCacheKey(sessionID), &cached); err == nil {
		return &cached, nil
	}

	attempt, err := s.getAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptStatusCompleted {
		return nil, ErrAttemptNotActive
	}

	responses, err := s.responses.GetByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	results := make([]scoring.ScoreResult, 0, len(responses))
	for _, r := range responses {
		results = append(results, scoring.ScoreResult{
			QuestionID:      r.QuestionID,
			Module:          r.Module,
			IsCorrect:       r.IsCorrect,
			PointsEarned:    r.PointsEarned,
			PointsPossible:  r.PointsPossible,
			IsSafetyRelated: r.IsSafetyRelated,
		})
	}

	outcome := &AttemptOutcome{Attempt: attempt, Outcome: s.aggregator.Finalize(results)}

	if err := s.cache.Set(ctx, outcomeCacheKey(sessionID), outcome, 10*time.Minute); err != nil {
		s.logger.Warn("Failed to cache outcome", "session_id", sessionID, "error", err)
	}

	return outcome, nil
}

func (s *attemptService) GetQuestions(ctx context.Context, sessionID string) ([]models.PublicQuestion, error) {
	if _, err := s.getAttempt(ctx, sessionID); err != nil {
		return nil, err
	}

	var public []models.PublicQuestion
	if err := s.cache.Get(ctx, questionsCacheKey, &public); err == nil {
		return public, nil
	}

	questions, err := s.bank.Questions()
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	public = make([]models.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.PublicView())
	}

	if err := s.cache.Set(ctx, questionsCacheKey, public, time.Hour); err != nil {
		s.logger.Warn("Failed to cache question set", "error", err)
	}
	return public, nil
}

func (s *attemptService) GetResults(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error) {
	attempt, err := s.getAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	loaded, err := s.attempts.GetByIDWithResponses(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt responses: %w", err)
	}
	return loaded, nil
}

func (s *attemptService) ListByCrewMember(ctx context.Context, crewMemberID uint, limit, offset int) ([]*models.AssessmentAttempt, int64, error) {
	if _, err := s.crew.GetByID(ctx, crewMemberID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, 0, ErrCrewMemberNotFound
		}
		return nil, 0, fmt.Errorf("failed to get crew member: %w", err)
	}

	attempts, total, err := s.attempts.GetByCrewMember(ctx, crewMemberID, repositories.AttemptFilters{
		Limit:     limit,
		Offset:    offset,
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, total, nil
}

func (s *attemptService) GetStats(ctx context.Context, division *models.DivisionType) (*repositories.AttemptStats, error) {
	stats, err := s.attempts.GetStats(ctx, division)
	if err != nil {
		return nil, fmt.Errorf("failed to compute attempt stats: %w", err)
	}
	return stats, nil
}

// ===== EXPIRY SWEEP =====

func (s *attemptService) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.attempts.GetExpiredAttempts(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired attempts: %w", err)
	}

	expired := 0
	for _, attempt := range overdue {
		if _, err := s.finalize(ctx, attempt); err != nil {
			s.logger.Error("Failed to finalize expired attempt",
				"attempt_id", attempt.ID, "error", err)
			continue
		}
		if err := s.publisher.PublishAssessmentEvent(ctx, events.NewAttemptExpiredEvent(attempt)); err != nil {
			s.logger.Error("Failed to publish attempt expired event",
				"attempt_id", attempt.ID, "error", err)
		}
		expired++
	}

	if expired > 0 {
		s.logger.Info("Expired overdue attempts", "count", expired)
	}
	return expired, nil
}

// ===== HELPERS =====

func (s *attemptService) getAttempt(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error) {
	attempt, err := s.attempts.GetBySessionID(ctx, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return attempt, nil
}

// questionsCacheKey holds the answer-free question set shared by all
// attempts.
const questionsCacheKey = "assessment:questions:public"

func outcomeCacheKey(sessionID string) string {
	return "assessment:outcome:" + sessionID
}

// applyOutcome copies the aggregate onto the attempt's flattened outcome
// columns.
func applyOutcome(attempt *models.AssessmentAttempt, outcome scoring.AssessmentOutcome) {
	intPtr := func(v int) *int { return &v }
	boolPtr := func(v bool) *bool { return &v }
	floatPtr := func(v float64) *float64 { return &v }

	attempt.TotalScore = intPtr(outcome.TotalScore)
	attempt.ListeningScore = intPtr(outcome.ModuleScores[models.ModuleListening])
	attempt.TimeNumbersScore = intPtr(outcome.ModuleScores[models.ModuleTimeNumbers])
	attempt.GrammarScore = intPtr(outcome.ModuleScores[models.ModuleGrammar])
	attempt.VocabularyScore = intPtr(outcome.ModuleScores[models.ModuleVocabulary])
	attempt.ReadingScore = intPtr(outcome.ModuleScores[models.ModuleReading])
	attempt.SpeakingScore = intPtr(outcome.ModuleScores[models.ModuleSpeaking])
	attempt.SafetyQuestionsCorrect = intPtr(outcome.SafetyQuestionsCorrect)
	attempt.SafetyQuestionsTotal = intPtr(outcome.SafetyQuestionsTotal)
	attempt.SafetyPassRate = floatPtr(outcome.SafetyPassRate)
	attempt.PassTotal = boolPtr(outcome.PassTotal)
	attempt.PassSafety = boolPtr(outcome.PassSafety)
	attempt.PassSpeaking = boolPtr(outcome.PassSpeaking)
	attempt.OverallPass = boolPtr(outcome.OverallPass)
}
