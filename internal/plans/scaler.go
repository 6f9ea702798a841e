package plans

import "github.com/shopspring/decimal"

// BaseNutrition is a food's per-100g macro profile. Absent values are treated
// as zero when scaling.
type BaseNutrition struct {
	Kcal    *float64
	Protein *float64
	Carbs   *float64
	Fats    *float64
}

// ScaledNutrition holds the macros derived for a concrete quantity: integral
// calories and one-decimal macros.
type ScaledNutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Scale computes the displayed nutrition for quantityGrams of a food. Pure
// and reproducible: decimal arithmetic with half-away-from-zero rounding,
// calories to the unit, macros to one decimal.
func Scale(base BaseNutrition, quantityGrams float64) ScaledNutrition {
	factor := decimal.NewFromFloat(quantityGrams).Div(decimal.NewFromInt(100))

	return ScaledNutrition{
		Calories: int(scaled(base.Kcal, factor).Round(0).IntPart()),
		Protein:  scaled(base.Protein, factor).Round(1).InexactFloat64(),
		Carbs:    scaled(base.Carbs, factor).Round(1).InexactFloat64(),
		Fats:     scaled(base.Fats, factor).Round(1).InexactFloat64(),
	}
}

func scaled(value *float64, factor decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*value).Mul(factor)
}
