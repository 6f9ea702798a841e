package users

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepo struct {
	user      *models.User
	updateErr error
	entries   []models.WeightEntry
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubRepo) UpdateProfile(ctx context.Context, id int64, dto UpdateProfileDTO) (*models.User, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.FindByID(ctx, id)
}

func (s *stubRepo) CreateWeightEntry(ctx context.Context, userID int64, weight float64, at time.Time) (*models.WeightEntry, error) {
	entry := models.WeightEntry{ID: int64(len(s.entries) + 1), UserID: userID, Weight: weight, RecordedAt: at}
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *stubRepo) ListWeightHistory(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	return s.entries, nil
}

func TestProfileNotFound(t *testing.T) {
	svc, err := NewService(&stubRepo{})
	require.NoError(t, err)

	_, err = svc.Profile(context.Background(), 42)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestProfileMapsModel(t *testing.T) {
	weight := 80.0
	svc, err := NewService(&stubRepo{user: &models.User{
		ID:       7,
		Email:    "ana@example.com",
		Nickname: "anita",
		Weight:   &weight,
	}})
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), profile.UserID)
	require.Equal(t, 80.0, *profile.CurrentWeight)
}

func TestUpdateProfileSurfacesEmailConflict(t *testing.T) {
	svc, err := NewService(&stubRepo{
		updateErr: &pgconn.PgError{Code: "23505", ConstraintName: EmailConstraint},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), 7, UpdateProfileDTO{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
	require.Equal(t, MsgEmailTaken, typed.Message())
}

func TestUpdateProfileSurfacesNicknameConflict(t *testing.T) {
	svc, err := NewService(&stubRepo{
		updateErr: &pgconn.PgError{Code: "23505", ConstraintName: NicknameConstraint},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), 7, UpdateProfileDTO{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
	require.Equal(t, MsgNicknameTaken, typed.Message())
}

func TestRecordWeightReturnsEntry(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo)
	require.NoError(t, err)

	entry, err := svc.RecordWeight(context.Background(), 7, 79.4)
	require.NoError(t, err)
	require.Equal(t, int64(7), entry.UserID)
	require.Equal(t, 79.4, entry.Weight)
	require.False(t, entry.RecordedAt.IsZero())
}
