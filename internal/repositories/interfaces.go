package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// IsNotFoundError reports whether err is the backing store's missing-row
// error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ===== SHARED FILTER STRUCTS =====

type AttemptFilters struct {
	Status       models.AttemptStatus `json:"status"`
	CrewMemberID *uint                `json:"crew_member_id"`
	Division     *models.DivisionType `json:"division"`
	OverallPass  *bool                `json:"overall_pass"`
	DateFrom     *time.Time           `json:"date_from"`
	DateTo       *time.Time           `json:"date_to"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
	SortBy       string               `json:"sort_by"`    // "created_at", "total_score", "completed_at"
	SortOrder    string               `json:"sort_order"` // "asc", "desc"
}

type CrewFilters struct {
	Division *models.DivisionType `json:"division"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type AttemptStats struct {
	TotalAttempts     int                          `json:"total_attempts"`
	CompletedAttempts int                          `json:"completed_attempts"`
	StatusBreakdown   map[models.AttemptStatus]int `json:"status_breakdown"`
	AverageScore      float64                      `json:"average_score"`
	PassRate          float64                      `json:"pass_rate"`
}
