package foods

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the foods controllers.
type Service interface {
	Search(ctx context.Context, term string) ([]models.Food, error)
	FoodByID(ctx context.Context, id int64) (*models.Food, error)
	Seasonal(ctx context.Context) ([]models.Food, error)
	Viability(ctx context.Context, goal, term string) ([]ViabilityDTO, error)
	FoodOfTheDay(ctx context.Context, userID *int64) FoodOfTheDay
}

type repository interface {
	Search(ctx context.Context, term string) ([]models.Food, error)
	FindByID(ctx context.Context, id int64) (*models.Food, error)
	FindByNames(ctx context.Context, names []string) ([]models.Food, error)
	ViabilityByGoal(ctx context.Context, goal, term string) ([]ViabilityDTO, error)
}

type service struct {
	repo     repository
	selector *Selector
}

// NewService constructs a foods service over the repository and selector.
func NewService(repo repository, selector *Selector) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("foods repository is required")
	}
	if selector == nil {
		return nil, fmt.Errorf("selector is required")
	}
	return &service{repo: repo, selector: selector}, nil
}

func (s *service) Search(ctx context.Context, term string) ([]models.Food, error) {
	foods, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search foods")
	}
	return foods, nil
}

func (s *service) FoodByID(ctx context.Context, id int64) (*models.Food, error) {
	food, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "food not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load food")
	}
	return food, nil
}

func (s *service) Seasonal(ctx context.Context) ([]models.Food, error) {
	foods, err := s.repo.FindByNames(ctx, SeasonalNames)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load seasonal suggestions")
	}
	return foods, nil
}

func (s *service) Viability(ctx context.Context, goal, term string) ([]ViabilityDTO, error) {
	if _, ok := ViabilityColumn(goal); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid goal")
	}
	rows, err := s.repo.ViabilityByGoal(ctx, goal, term)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "viability lookup")
	}
	return rows, nil
}

func (s *service) FoodOfTheDay(ctx context.Context, userID *int64) FoodOfTheDay {
	return s.selector.Select(ctx, userID)
}
