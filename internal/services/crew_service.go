package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/validator"
)

// CrewService manages the crew member roster.
type CrewService interface {
	Register(ctx context.Context, req *RegisterCrewRequest) (*models.CrewMember, error)
	GetByID(ctx context.Context, id uint) (*models.CrewMember, error)
	List(ctx context.Context, division *models.DivisionType, limit, offset int) ([]*models.CrewMember, int64, error)
}

type RegisterCrewRequest struct {
	Name     string              `json:"name" validate:"required,max=200"`
	Email    string              `json:"email" validate:"required,email"`
	Division models.DivisionType `json:"division" validate:"required,division_type"`
	Position string              `json:"position" validate:"max=100"`
}

type crewService struct {
	crew      repositories.CrewRepository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCrewService(crew repositories.CrewRepository, logger *slog.Logger, v *validator.Validator) CrewService {
	return &crewService{
		crew:      crew,
		logger:    logger,
		validator: v,
	}
}

func (s *crewService) Register(ctx context.Context, req *RegisterCrewRequest) (*models.CrewMember, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.crew.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrCrewEmailTaken
	} else if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	member := &models.CrewMember{
		Name:     req.Name,
		Email:    req.Email,
		Division: req.Division,
		Position: req.Position,
	}
	if err := s.crew.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}

	s.logger.Info("Crew member registered",
		"crew_member_id", member.ID,
		"division", member.Division)

	return member, nil
}

func (s *crewService) GetByID(ctx context.Context, id uint) (*models.CrewMember, error) {
	member, err := s.crew.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	return member, nil
}

func (s *crewService) List(ctx context.Context, division *models.DivisionType, limit, offset int) ([]*models.CrewMember, int64, error) {
	return s.crew.List(ctx, repositories.CrewFilters{
		Division: division,
		Limit:    limit,
		Offset:   offset,
	})
}
