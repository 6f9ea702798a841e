package plans

import (
	"time"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
)

// PremadePlanDTO is a curated plan together with its meal lines.
type PremadePlanDTO struct {
	PlanID      int64                    `json:"plan_id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	Goal        string                   `json:"goal"`
	Items       []models.PremadePlanItem `json:"items"`
}

// AddCustomItemRequest is the payload for adding a custom plan line. Quantity
// defaults to 100 grams when omitted.
type AddCustomItemRequest struct {
	MealType       string   `json:"meal_type" validate:"required"`
	FoodID         *int64   `json:"food_id"`
	Quantity       *float64 `json:"quantity"`
	CustomFoodName *string  `json:"custom_food_name"`
}

// CustomItemDTO is a plan line as read back by the owner. When the line
// references a food with a known calorie base, the joined name and the scaled
// macros are populated; free-text lines carry neither.
type CustomItemDTO struct {
	ItemID         int64     `json:"item_id"`
	UserID         int64     `json:"user_id"`
	MealType       string    `json:"meal_type"`
	FoodID         *int64    `json:"food_id"`
	Quantity       float64   `json:"quantity"`
	CustomFoodName *string   `json:"custom_food_name"`
	CreatedAt      time.Time `json:"created_at"`
	FoodName       *string   `json:"food_name,omitempty"`
	Calories       *int      `json:"calories,omitempty"`
	Protein        *float64  `json:"protein,omitempty"`
	Carbs          *float64  `json:"carbs,omitempty"`
	Fats           *float64  `json:"fats,omitempty"`
}

// CustomItemRow is the repo-level join of a plan line with its food's base
// nutrition.
type CustomItemRow struct {
	ItemID         int64     `gorm:"column:item_id"`
	UserID         int64     `gorm:"column:user_id"`
	MealType       string    `gorm:"column:meal_type"`
	FoodID         *int64    `gorm:"column:food_id"`
	Quantity       float64   `gorm:"column:quantity"`
	CustomFoodName *string   `gorm:"column:custom_food_name"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	FoodName       *string   `gorm:"column:food_name"`
	BaseKcal       *float64  `gorm:"column:base_kcal"`
	BaseProtein    *float64  `gorm:"column:base_protein"`
	BaseCarbs      *float64  `gorm:"column:base_carbs"`
	BaseFats       *float64  `gorm:"column:base_fats"`
}

func (r CustomItemRow) toDTO() CustomItemDTO {
	dto := CustomItemDTO{
		ItemID:         r.ItemID,
		UserID:         r.UserID,
		MealType:       r.MealType,
		FoodID:         r.FoodID,
		Quantity:       r.Quantity,
		CustomFoodName: r.CustomFoodName,
		CreatedAt:      r.CreatedAt,
		FoodName:       r.FoodName,
	}

	if r.FoodID != nil && r.BaseKcal != nil {
		scaled := Scale(BaseNutrition{
			Kcal:    r.BaseKcal,
			Protein: r.BaseProtein,
			Carbs:   r.BaseCarbs,
			Fats:    r.BaseFats,
		}, r.Quantity)
		dto.Calories = &scaled.Calories
		dto.Protein = &scaled.Protein
		dto.Carbs = &scaled.Carbs
		dto.Fats = &scaled.Fats
	}
	return dto
}
