package repositories

import (
	"context"
	"time"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// AttemptRepository persists assessment attempts.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.AssessmentAttempt) error
	GetByID(ctx context.Context, id uint) (*models.AssessmentAttempt, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error)
	GetByIDWithResponses(ctx context.Context, id uint) (*models.AssessmentAttempt, error)
	Update(ctx context.Context, attempt *models.AssessmentAttempt) error

	List(ctx context.Context, filters AttemptFilters) ([]*models.AssessmentAttempt, int64, error)
	GetByCrewMember(ctx context.Context, crewMemberID uint, filters AttemptFilters) ([]*models.AssessmentAttempt, int64, error)

	// GetActiveAttempt returns the crew member's in-progress attempt, or
	// nil when there is none.
	GetActiveAttempt(ctx context.Context, crewMemberID uint) (*models.AssessmentAttempt, error)
	GetExpiredAttempts(ctx context.Context, cutoff time.Time) ([]*models.AssessmentAttempt, error)

	GetStats(ctx context.Context, division *models.DivisionType) (*AttemptStats, error)
}

// ResponseRepository persists per-question answers within an attempt.
type ResponseRepository interface {
	Create(ctx context.Context, response *models.AssessmentResponse) error
	GetByAttempt(ctx context.Context, attemptID uint) ([]*models.AssessmentResponse, error)
	GetByAttemptAndQuestion(ctx context.Context, attemptID, questionID uint) (*models.AssessmentResponse, error)
	HasResponse(ctx context.Context, attemptID, questionID uint) (bool, error)
	CountByAttempt(ctx context.Context, attemptID uint) (int64, error)
}

// CrewRepository persists crew member records.
type CrewRepository interface {
	Create(ctx context.Context, member *models.CrewMember) error
	GetByID(ctx context.Context, id uint) (*models.CrewMember, error)
	GetByEmail(ctx context.Context, email string) (*models.CrewMember, error)
	List(ctx context.Context, filters CrewFilters) ([]*models.CrewMember, int64, error)
}
