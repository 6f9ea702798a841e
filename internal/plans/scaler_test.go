package plans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func f64Ptr(f float64) *float64 { return &f }

func TestScaleReferenceValues(t *testing.T) {
	base := BaseNutrition{
		Kcal:    f64Ptr(100),
		Protein: f64Ptr(10),
		Carbs:   f64Ptr(20),
		Fats:    f64Ptr(5),
	}

	got := Scale(base, 150)
	require.Equal(t, 150, got.Calories)
	require.Equal(t, 15.0, got.Protein)
	require.Equal(t, 30.0, got.Carbs)
	require.Equal(t, 7.5, got.Fats)
}

func TestScaleAbsentValuesAreZero(t *testing.T) {
	base := BaseNutrition{Kcal: f64Ptr(100)}

	got := Scale(base, 250)
	require.Equal(t, 250, got.Calories)
	require.Equal(t, 0.0, got.Protein)
	require.Equal(t, 0.0, got.Carbs)
	require.Equal(t, 0.0, got.Fats)
}

func TestScaleRoundsCaloriesToUnit(t *testing.T) {
	base := BaseNutrition{Kcal: f64Ptr(33)}

	// 33 * 0.55 = 18.15 -> 18; 33 * 0.65 = 21.45 -> 21
	require.Equal(t, 18, Scale(base, 55).Calories)
	require.Equal(t, 21, Scale(base, 65).Calories)

	// 35 * 0.55 = 19.25 -> 19; 35 * 0.5 = 17.5 -> 18 (half away from zero)
	require.Equal(t, 19, Scale(BaseNutrition{Kcal: f64Ptr(35)}, 55).Calories)
	require.Equal(t, 18, Scale(BaseNutrition{Kcal: f64Ptr(35)}, 50).Calories)
}

func TestScaleRoundsMacrosToOneDecimal(t *testing.T) {
	base := BaseNutrition{Protein: f64Ptr(3.3), Carbs: f64Ptr(7), Fats: f64Ptr(0.1)}

	got := Scale(base, 175)
	// 3.3 * 1.75 = 5.775 -> 5.8
	require.Equal(t, 5.8, got.Protein)
	// 7 * 1.75 = 12.25 -> 12.3 (half away from zero)
	require.Equal(t, 12.3, got.Carbs)
	// 0.1 * 1.75 = 0.175 -> 0.2
	require.Equal(t, 0.2, got.Fats)
}

func TestScaleIsReproducible(t *testing.T) {
	base := BaseNutrition{
		Kcal:    f64Ptr(208),
		Protein: f64Ptr(20),
		Carbs:   f64Ptr(0),
		Fats:    f64Ptr(13),
	}

	first := Scale(base, 137)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Scale(base, 137))
	}
}
