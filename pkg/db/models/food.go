package models

// ViabilityVeryGood is the top tier of the per-goal viability rating.
const ViabilityVeryGood = "very_good"

// Food is an immutable nutritional reference record. Macro values are per
// 100 grams; any of them may be absent.
type Food struct {
	ID          int64    `gorm:"column:food_id;primaryKey;autoIncrement" json:"food_id"`
	Name        string   `gorm:"column:name;not null" json:"name"`
	Description *string  `gorm:"column:description" json:"description,omitempty"`
	Category    *string  `gorm:"column:category" json:"category"`
	Kcal        *float64 `gorm:"column:kcal" json:"kcal"`
	Protein     *float64 `gorm:"column:protein" json:"protein"`
	Carbs       *float64 `gorm:"column:carbs" json:"carbs"`
	Fats        *float64 `gorm:"column:fats" json:"fats"`
	ImageURL    *string  `gorm:"column:image_url" json:"image_url"`

	ViabilityWeightLoss  *string `gorm:"column:viability_weight_loss" json:"viability_weight_loss"`
	ViabilityMuscleGain  *string `gorm:"column:viability_muscle_gain" json:"viability_muscle_gain"`
	ViabilityMaintenance *string `gorm:"column:viability_maintenance" json:"viability_maintenance"`
}

func (Food) TableName() string { return "foods" }
