package plans

import (
	"context"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes premade and custom plan persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a plans repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PremadePlanByID loads a curated plan header.
func (r *Repository) PremadePlanByID(ctx context.Context, planID int64) (*models.PremadePlan, error) {
	var plan models.PremadePlan
	if err := r.db.WithContext(ctx).First(&plan, "plan_id = ?", planID).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// PremadePlanItems returns the plan's meal lines ordered by meal type.
func (r *Repository) PremadePlanItems(ctx context.Context, planID int64) ([]models.PremadePlanItem, error) {
	var items []models.PremadePlanItem
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("meal_type").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListCustomItems returns the user's plan lines joined with their food's base
// nutrition, grouped by meal type in insertion order.
func (r *Repository) ListCustomItems(ctx context.Context, userID int64) ([]CustomItemRow, error) {
	var rows []CustomItemRow
	err := r.db.WithContext(ctx).
		Model(&models.CustomPlanItem{}).
		Select("custom_plan_items.*, foods.name AS food_name, foods.kcal AS base_kcal, foods.protein AS base_protein, foods.carbs AS base_carbs, foods.fats AS base_fats").
		Joins("LEFT JOIN foods ON foods.food_id = custom_plan_items.food_id").
		Where("custom_plan_items.user_id = ?", userID).
		Order("custom_plan_items.meal_type, custom_plan_items.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCustomItem inserts a plan line and returns the persisted model.
func (r *Repository) CreateCustomItem(ctx context.Context, item *models.CustomPlanItem) (*models.CustomPlanItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindCustomItem loads a plan line by id regardless of owner.
func (r *Repository) FindCustomItem(ctx context.Context, itemID int64) (*models.CustomPlanItem, error) {
	var item models.CustomPlanItem
	if err := r.db.WithContext(ctx).First(&item, "item_id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCustomItem removes a plan line by id.
func (r *Repository) DeleteCustomItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).
		Delete(&models.CustomPlanItem{}, "item_id = ?", itemID).Error
}
