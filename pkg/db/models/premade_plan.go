package models

// PremadePlan is one of the small fixed set of curated meal plans.
type PremadePlan struct {
	ID          int64   `gorm:"column:plan_id;primaryKey" json:"plan_id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Description *string `gorm:"column:description" json:"description"`
	Goal        string  `gorm:"column:goal;not null" json:"goal"`
}

func (PremadePlan) TableName() string { return "premade_plans" }

// PremadePlanItem is one meal line inside a premade plan.
type PremadePlanItem struct {
	ID       int64   `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	PlanID   int64   `gorm:"column:plan_id;not null;index" json:"plan_id"`
	MealType string  `gorm:"column:meal_type;not null" json:"meal_type"`
	FoodName string  `gorm:"column:food_name;not null" json:"food_name"`
	Quantity float64 `gorm:"column:quantity;not null;default:100" json:"quantity"`
}

func (PremadePlanItem) TableName() string { return "premade_plan_items" }
