package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
)

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

func (r *ResponsePostgreSQL) Create(ctx context.Context, response *models.AssessmentResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *ResponsePostgreSQL) GetByAttempt(ctx context.Context, attemptID uint) ([]*models.AssessmentResponse, error) {
	var responses []*models.AssessmentResponse
	if err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("question_id asc").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *ResponsePostgreSQL) GetByAttemptAndQuestion(ctx context.Context, attemptID, questionID uint) (*models.AssessmentResponse, error) {
	var response models.AssessmentResponse
	if err := r.db.WithContext(ctx).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		First(&response).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *ResponsePostgreSQL) HasResponse(ctx context.Context, attemptID, questionID uint) (bool, error) {
	_, err := r.GetByAttemptAndQuestion(ctx, attemptID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ResponsePostgreSQL) CountByAttempt(ctx context.Context, attemptID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AssessmentResponse{}).
		Where("attempt_id = ?", attemptID).
		Count(&count).Error
	return count, err
}
