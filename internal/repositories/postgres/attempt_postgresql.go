package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, attempt *models.AssessmentAttempt) error {
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a *AttemptPostgreSQL) GetByID(ctx context.Context, id uint) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetByIDWithResponses(ctx context.Context, id uint) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Preload("CrewMember").
		Preload("Responses").
		First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) Update(ctx context.Context, attempt *models.AssessmentAttempt) error {
	return a.db.WithContext(ctx).Save(attempt).Error
}

func (a *AttemptPostgreSQL) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.AssessmentAttempt, int64, error) {
	var attempts []*models.AssessmentAttempt
	var total int64

	query := a.db.WithContext(ctx).Model(&models.AssessmentAttempt{})
	query = a.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = a.applyPaginationAndSort(query, filters)
	if err := query.Preload("CrewMember").Find(&attempts).Error; err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}

func (a *AttemptPostgreSQL) GetByCrewMember(ctx context.Context, crewMemberID uint, filters repositories.AttemptFilters) ([]*models.AssessmentAttempt, int64, error) {
	filters.CrewMemberID = &crewMemberID
	return a.List(ctx, filters)
}

func (a *AttemptPostgreSQL) GetActiveAttempt(ctx context.Context, crewMemberID uint) (*models.AssessmentAttempt, error) {
	var attempt models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Where("crew_member_id = ? AND status = ?", crewMemberID, models.AttemptStatusInProgress).
		First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetExpiredAttempts(ctx context.Context, cutoff time.Time) ([]*models.AssessmentAttempt, error) {
	var attempts []*models.AssessmentAttempt
	if err := a.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", models.AttemptStatusInProgress, cutoff).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a *AttemptPostgreSQL) GetStats(ctx context.Context, division *models.DivisionType) (*repositories.AttemptStats, error) {
	query := a.db.WithContext(ctx).Model(&models.AssessmentAttempt{})
	if division != nil {
		query = query.Where("division = ?", *division)
	}

	var rows []struct {
		Status models.AttemptStatus
		Count  int
	}
	if err := query.Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &repositories.AttemptStats{
		StatusBreakdown: make(map[models.AttemptStatus]int),
	}
	for _, row := range rows {
		stats.StatusBreakdown[row.Status] = row.Count
		stats.TotalAttempts += row.Count
		if row.Status == models.AttemptStatusCompleted {
			stats.CompletedAttempts = row.Count
		}
	}

	if stats.CompletedAttempts > 0 {
		completed := a.db.WithContext(ctx).Model(&models.AssessmentAttempt{}).
			Where("status = ?", models.AttemptStatusCompleted)
		if division != nil {
			completed = completed.Where("division = ?", *division)
		}

		var agg struct {
			AverageScore float64
			Passed       int
		}
		if err := completed.
			Select("coalesce(avg(total_score), 0) as average_score, count(*) filter (where overall_pass) as passed").
			Scan(&agg).Error; err != nil {
			return nil, err
		}
		stats.AverageScore = agg.AverageScore
		stats.PassRate = float64(agg.Passed) / float64(stats.CompletedAttempts)
	}

	return stats, nil
}

func (a *AttemptPostgreSQL) applyFilters(query *gorm.DB, filters repositories.AttemptFilters) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.CrewMemberID != nil {
		query = query.Where("crew_member_id = ?", *filters.CrewMemberID)
	}
	if filters.Division != nil {
		query = query.Where("division = ?", *filters.Division)
	}
	if filters.OverallPass != nil {
		query = query.Where("overall_pass = ?", *filters.OverallPass)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

func (a *AttemptPostgreSQL) applyPaginationAndSort(query *gorm.DB, filters repositories.AttemptFilters) *gorm.DB {
	sortBy := filters.SortBy
	switch sortBy {
	case "total_score", "completed_at", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if filters.SortOrder == "asc" {
		sortOrder = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}
