package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nutriapp/nutriapp-backend/pkg/db"
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"gorm.io/gorm"
)

// Unique constraint names enforced by the users table.
const (
	EmailConstraint    = "users_email_key"
	NicknameConstraint = "users_nickname_key"
)

// Conflict messages surfaced on unique violations.
const (
	MsgEmailTaken    = "email is already registered"
	MsgNicknameTaken = "nickname is already in use"
)

// Service defines the behavior needed by the user profile controller.
type Service interface {
	Profile(ctx context.Context, userID int64) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileDTO) (*ProfileDTO, error)
	RecordWeight(ctx context.Context, userID int64, weight float64) (*models.WeightEntry, error)
	WeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error)
}

type repository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, dto UpdateProfileDTO) (*models.User, error)
	CreateWeightEntry(ctx context.Context, userID int64, weight float64, at time.Time) (*models.WeightEntry, error)
	ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error)
}

type service struct {
	repo repository
}

// NewService constructs a profile service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Profile(ctx context.Context, userID int64) (*ProfileDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileDTO) (*ProfileDTO, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		if conflict := ConflictFromUnique(err); conflict != nil {
			return nil, conflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	return FromModel(user), nil
}

func (s *service) RecordWeight(ctx context.Context, userID int64, weight float64) (*models.WeightEntry, error) {
	entry, err := s.repo.CreateWeightEntry(ctx, userID, weight, time.Now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record weight")
	}
	return entry, nil
}

func (s *service) WeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	entries, err := s.repo.ListWeightHistory(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list weight history")
	}
	return entries, nil
}

// ConflictFromUnique maps a users-table unique violation onto a conflict
// error naming the colliding field. Returns nil for unrelated errors.
func ConflictFromUnique(err error) error {
	switch db.UniqueConstraint(err, EmailConstraint, NicknameConstraint) {
	case EmailConstraint:
		return pkgerrors.New(pkgerrors.CodeConflict, MsgEmailTaken)
	case NicknameConstraint:
		return pkgerrors.New(pkgerrors.CodeConflict, MsgNicknameTaken)
	default:
		return nil
	}
}
