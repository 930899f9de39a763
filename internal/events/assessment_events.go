package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// EventType represents different types of assessment events
type EventType string

const (
	EventAttemptStarted   EventType = "attempt.started"
	EventAttemptSubmitted EventType = "attempt.submitted"
	EventAttemptCompleted EventType = "attempt.completed"
	EventAttemptExpired   EventType = "attempt.expired"
)

// AssessmentEvent is the base event structure for all assessment events
type AssessmentEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Attempt event payloads

type AttemptStartedEvent struct {
	AttemptID    uint                `json:"attempt_id"`
	SessionID    string              `json:"session_id"`
	CrewMemberID uint                `json:"crew_member_id"`
	Division     models.DivisionType `json:"division"`
	StartedAt    time.Time           `json:"started_at"`
	ExpiresAt    time.Time           `json:"expires_at"`
}

type AttemptSubmittedEvent struct {
	AttemptID    uint              `json:"attempt_id"`
	SessionID    string            `json:"session_id"`
	CrewMemberID uint              `json:"crew_member_id"`
	QuestionID   uint              `json:"question_id"`
	Module       models.ModuleType `json:"module"`
	IsCorrect    bool              `json:"is_correct"`
	PointsEarned int               `json:"points_earned"`
	SubmittedAt  time.Time         `json:"submitted_at"`
}

type AttemptCompletedEvent struct {
	AttemptID    uint                `json:"attempt_id"`
	SessionID    string              `json:"session_id"`
	CrewMemberID uint                `json:"crew_member_id"`
	Division     models.DivisionType `json:"division"`
	CompletedAt  time.Time           `json:"completed_at"`
	TotalScore   int                 `json:"total_score"`
	MaxScore     int                 `json:"max_score"`
	OverallPass  bool                `json:"overall_pass"`
}

type AttemptExpiredEvent struct {
	AttemptID    uint      `json:"attempt_id"`
	SessionID    string    `json:"session_id"`
	CrewMemberID uint      `json:"crew_member_id"`
	ExpiredAt    time.Time `json:"expired_at"`
}

// Event factory functions

func NewAttemptStartedEvent(attempt *models.AssessmentAttempt) *AssessmentEvent {
	startedAt := time.Now()
	if attempt.StartedAt != nil {
		startedAt = *attempt.StartedAt
	}
	return newEvent(EventAttemptStarted, AttemptStartedEvent{
		AttemptID:    attempt.ID,
		SessionID:    attempt.SessionID,
		CrewMemberID: attempt.CrewMemberID,
		Division:     attempt.Division,
		StartedAt:    startedAt,
		ExpiresAt:    attempt.ExpiresAt,
	})
}

func NewAttemptSubmittedEvent(attempt *models.AssessmentAttempt, response *models.AssessmentResponse) *AssessmentEvent {
	return newEvent(EventAttemptSubmitted, AttemptSubmittedEvent{
		AttemptID:    attempt.ID,
		SessionID:    attempt.SessionID,
		CrewMemberID: attempt.CrewMemberID,
		QuestionID:   response.QuestionID,
		Module:       response.Module,
		IsCorrect:    response.IsCorrect,
		PointsEarned: response.PointsEarned,
		SubmittedAt:  time.Now(),
	})
}

func NewAttemptCompletedEvent(attempt *models.AssessmentAttempt, totalScore, maxScore int, overallPass bool) *AssessmentEvent {
	completedAt := time.Now()
	if attempt.CompletedAt != nil {
		completedAt = *attempt.CompletedAt
	}
	return newEvent(EventAttemptCompleted, AttemptCompletedEvent{
		AttemptID:    attempt.ID,
		SessionID:    attempt.SessionID,
		CrewMemberID: attempt.CrewMemberID,
		Division:     attempt.Division,
		CompletedAt:  completedAt,
		TotalScore:   totalScore,
		MaxScore:     maxScore,
		OverallPass:  overallPass,
	})
}

func NewAttemptExpiredEvent(attempt *models.AssessmentAttempt) *AssessmentEvent {
	return newEvent(EventAttemptExpired, AttemptExpiredEvent{
		AttemptID:    attempt.ID,
		SessionID:    attempt.SessionID,
		CrewMemberID: attempt.CrewMemberID,
		ExpiredAt:    time.Now(),
	})
}

func newEvent(eventType EventType, data interface{}) *AssessmentEvent {
	return &AssessmentEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "english-assessment",
		Version:   "1.0",
		Data:      data,
	}
}
