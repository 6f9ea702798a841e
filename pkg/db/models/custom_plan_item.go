package models

import "time"

// DefaultQuantityGrams is applied when a plan item omits its quantity.
const DefaultQuantityGrams = 100

// CustomPlanItem is one line of a user's meal plan. It either references a
// Food (nutrition is derived from the quantity) or carries a free-text name
// with no nutrition.
type CustomPlanItem struct {
	ID             int64     `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	UserID         int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	MealType       string    `gorm:"column:meal_type;not null" json:"meal_type"`
	FoodID         *int64    `gorm:"column:food_id" json:"food_id"`
	Quantity       float64   `gorm:"column:quantity;not null;default:100" json:"quantity"`
	CustomFoodName *string   `gorm:"column:custom_food_name" json:"custom_food_name"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CustomPlanItem) TableName() string { return "custom_plan_items" }
