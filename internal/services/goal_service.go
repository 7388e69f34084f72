package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// GoalInput carries the writable fields of a goal.
type GoalInput struct {
	ID            string
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Status        models.GoalStatus
	Category      string
}

type goalService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB, profiles BusinessProfileServicer) GoalServicer {
	return &goalService{db: db, profiles: profiles}
}

// List returns all goals for the caller's profile.
func (s *goalService) List(userID string) ([]models.Goal, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Goal](s.db, profile.ID)
}

// Upsert inserts or updates a goal scoped to the caller's profile.
func (s *goalService) Upsert(userID string, in GoalInput) (*models.Goal, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.GoalStatusActive
	}

	if in.ID == "" {
		goal := &models.Goal{
			TenantOwned:   models.TenantOwned{BusinessProfileID: profile.ID},
			Title:         in.Title,
			TargetAmount:  in.TargetAmount,
			CurrentAmount: in.CurrentAmount,
			Deadline:      in.Deadline,
			Status:        status,
			Category:      in.Category,
		}
		if err := s.db.Create(goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return goal, nil
	}

	goal, err := fetchOwned[models.Goal](s.db, in.ID, profile.ID, apperrors.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}
	goal.Title = in.Title
	goal.TargetAmount = in.TargetAmount
	goal.CurrentAmount = in.CurrentAmount
	goal.Deadline = in.Deadline
	goal.Status = status
	goal.Category = in.Category
	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// Delete removes a goal owned by the caller's profile.
func (s *goalService) Delete(userID, id string) (*models.Goal, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Goal](s.db, id, profile.ID, apperrors.ErrGoalNotFound)
}
