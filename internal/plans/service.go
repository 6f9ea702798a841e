package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"gorm.io/gorm"
)

// MsgItemDeleted confirms a successful plan line removal.
const MsgItemDeleted = "Item deleted successfully"

// PremadePlanID maps a goal type onto its fixed curated plan id.
func PremadePlanID(planType string) (int64, bool) {
	switch planType {
	case "weightLoss":
		return 4, true
	case "muscleGain":
		return 5, true
	case "maintenance":
		return 6, true
	default:
		return 0, false
	}
}

// Service defines the behavior needed by the plans controllers.
type Service interface {
	PremadePlan(ctx context.Context, planType string) (*PremadePlanDTO, error)
	CustomPlan(ctx context.Context, userID int64) ([]CustomItemDTO, error)
	AddCustomItem(ctx context.Context, userID int64, req AddCustomItemRequest) (*models.CustomPlanItem, error)
	DeleteCustomItem(ctx context.Context, userID, itemID int64) (string, error)
}

type repository interface {
	PremadePlanByID(ctx context.Context, planID int64) (*models.PremadePlan, error)
	PremadePlanItems(ctx context.Context, planID int64) ([]models.PremadePlanItem, error)
	ListCustomItems(ctx context.Context, userID int64) ([]CustomItemRow, error)
	CreateCustomItem(ctx context.Context, item *models.CustomPlanItem) (*models.CustomPlanItem, error)
	FindCustomItem(ctx context.Context, itemID int64) (*models.CustomPlanItem, error)
	DeleteCustomItem(ctx context.Context, itemID int64) error
}

type service struct {
	repo repository
}

// NewService constructs a plans service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("plans repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) PremadePlan(ctx context.Context, planType string) (*PremadePlanDTO, error) {
	planID, ok := PremadePlanID(planType)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid plan type")
	}

	plan, err := s.repo.PremadePlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "plan not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load premade plan")
	}

	items, err := s.repo.PremadePlanItems(ctx, planID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load premade plan items")
	}

	return &PremadePlanDTO{
		PlanID:      plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Goal:        plan.Goal,
		Items:       items,
	}, nil
}

func (s *service) CustomPlan(ctx context.Context, userID int64) ([]CustomItemDTO, error) {
	rows, err := s.repo.ListCustomItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list custom plan")
	}

	items := make([]CustomItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDTO())
	}
	return items, nil
}

func (s *service) AddCustomItem(ctx context.Context, userID int64, req AddCustomItemRequest) (*models.CustomPlanItem, error) {
	mealType := strings.TrimSpace(req.MealType)
	if mealType == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "meal_type is required")
	}

	quantity := float64(models.DefaultQuantityGrams)
	if req.Quantity != nil && *req.Quantity > 0 {
		quantity = *req.Quantity
	}

	item, err := s.repo.CreateCustomItem(ctx, &models.CustomPlanItem{
		UserID:         userID,
		MealType:       mealType,
		FoodID:         req.FoodID,
		Quantity:       quantity,
		CustomFoodName: req.CustomFoodName,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create custom plan item")
	}
	return item, nil
}

// DeleteCustomItem enforces the ownership policy: missing rows are 404, rows
// owned by another user are 403, and only then is the row removed.
func (s *service) DeleteCustomItem(ctx context.Context, userID, itemID int64) (string, error) {
	item, err := s.repo.FindCustomItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load custom plan item")
	}
	if item.UserID != userID {
		return "", pkgerrors.New(pkgerrors.CodeForbidden, "not allowed to delete this item")
	}

	if err := s.repo.DeleteCustomItem(ctx, itemID); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete custom plan item")
	}
	return MsgItemDeleted, nil
}
