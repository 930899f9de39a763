package models

import (
	"time"

	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptStatusNotStarted AttemptStatus = "not_started"
	AttemptStatusInProgress AttemptStatus = "in_progress"
	AttemptStatusCompleted  AttemptStatus = "completed"
)

// AssessmentAttempt is one crew member's run through the 21-question set.
// Pass/fail is recorded on the completed attempt, not modeled as a separate
// terminal status.
type AssessmentAttempt struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	SessionID    string        `json:"session_id" gorm:"not null;uniqueIndex;size:64"`
	CrewMemberID uint          `json:"crew_member_id" gorm:"not null;index"`
	Division     DivisionType  `json:"division" gorm:"not null" validate:"required,division_type"`
	Status       AttemptStatus `json:"status" gorm:"not null;default:not_started;index"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	ExpiresAt   time.Time  `json:"expires_at" gorm:"not null"`

	// Finalized outcome, populated once on completion.
	TotalScore       *int `json:"total_score"`
	ListeningScore   *int `json:"listening_score"`
	TimeNumbersScore *int `json:"time_numbers_score"`
	GrammarScore     *int `json:"grammar_score"`
	VocabularyScore  *int `json:"vocabulary_score"`
	ReadingScore     *int `json:"reading_score"`
	SpeakingScore    *int `json:"speaking_score"`

	SafetyQuestionsCorrect *int     `json:"safety_questions_correct"`
	SafetyQuestionsTotal   *int     `json:"safety_questions_total"`
	SafetyPassRate         *float64 `json:"safety_pass_rate"`

	PassTotal    *bool `json:"pass_total"`
	PassSafety   *bool `json:"pass_safety"`
	PassSpeaking *bool `json:"pass_speaking"`
	OverallPass  *bool `json:"overall_pass"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CrewMember CrewMember           `json:"crew_member,omitempty" gorm:"foreignKey:CrewMemberID"`
	Responses  []AssessmentResponse `json:"responses,omitempty" gorm:"foreignKey:AttemptID"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}

// IsExpired reports whether the attempt passed its hard deadline.
func (a *AssessmentAttempt) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// AssessmentResponse is the persisted ScoreResult for one submitted answer.
// The attempt_id+question_id unique index serializes double submissions at
// the storage layer.
type AssessmentResponse struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	AttemptID  uint `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	QuestionID uint `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`

	Module          ModuleType `json:"module" gorm:"not null;index"`
	RawAnswer       string     `json:"raw_answer" gorm:"type:text"`
	IsCorrect       bool       `json:"is_correct"`
	PointsEarned    int        `json:"points_earned"`
	PointsPossible  int        `json:"points_possible"`
	Feedback        string     `json:"feedback" gorm:"type:text"`
	IsSafetyRelated bool       `json:"is_safety_related"`

	TimeSpentSeconds *int      `json:"time_spent_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}
