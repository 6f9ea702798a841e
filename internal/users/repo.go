package users

import (
	"context"
	"time"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"gorm.io/gorm"
)

// weightHistoryLimit caps the entries returned per user.
const weightHistoryLimit = 30

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByIdentifier retrieves the user whose email or nickname matches the
// provided login identifier.
func (r *Repository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ? OR nickname = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by their numeric id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of the update and returns the
// refreshed row. A zero-column update degrades to a plain read.
func (r *Repository) UpdateProfile(ctx context.Context, id int64, dto UpdateProfileDTO) (*models.User, error) {
	cols := dto.columns()
	if len(cols) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("user_id = ?", id).
			Updates(cols).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// CreateWeightEntry records a weight measurement for the user.
func (r *Repository) CreateWeightEntry(ctx context.Context, userID int64, weight float64, at time.Time) (*models.WeightEntry, error) {
	entry := &models.WeightEntry{
		UserID:     userID,
		Weight:     weight,
		RecordedAt: at,
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListWeightHistory returns the user's most recent entries, newest first.
func (r *Repository) ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(weightHistoryLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
