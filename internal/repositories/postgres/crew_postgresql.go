package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
)

type CrewPostgreSQL struct {
	db *gorm.DB
}

func NewCrewPostgreSQL(db *gorm.DB) repositories.CrewRepository {
	return &CrewPostgreSQL{db: db}
}

func (c *CrewPostgreSQL) Create(ctx context.Context, member *models.CrewMember) error {
	return c.db.WithContext(ctx).Create(member).Error
}

func (c *CrewPostgreSQL) GetByID(ctx context.Context, id uint) (*models.CrewMember, error) {
	var member models.CrewMember
	if err := c.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *CrewPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.CrewMember, error) {
	var member models.CrewMember
	if err := c.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *CrewPostgreSQL) List(ctx context.Context, filters repositories.CrewFilters) ([]*models.CrewMember, int64, error) {
	var members []*models.CrewMember
	var total int64

	query := c.db.WithContext(ctx).Model(&models.CrewMember{})
	if filters.Division != nil {
		query = query.Where("division = ?", *filters.Division)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if err := query.Order("id asc").Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}
