package foods

import (
	"context"
	"fmt"
	"testing"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Food{}))
	return conn
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func seedFood(t *testing.T, db *gorm.DB, food models.Food) models.Food {
	t.Helper()
	require.NoError(t, db.Create(&food).Error)
	return food
}

func TestSearchMatchesNameAndCategoryCaseInsensitively(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	seedFood(t, db, models.Food{Name: "Acelga", Category: strPtr("Verdura")})
	seedFood(t, db, models.Food{Name: "Pollo", Category: strPtr("Carne")})
	seedFood(t, db, models.Food{Name: "Verduras Salteadas", Category: strPtr("Plato")})

	byName, err := repo.Search(context.Background(), "ACELGA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Acelga", byName[0].Name)

	byCategory, err := repo.Search(context.Background(), "verdura")
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
}

func TestSearchCapsAt20Rows(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	for i := 0; i < 25; i++ {
		seedFood(t, db, models.Food{Name: fmt.Sprintf("Manzana %d", i)})
	}

	results, err := repo.Search(context.Background(), "manzana")
	require.NoError(t, err)
	require.Len(t, results, 20)
}

func TestFindByNamesReturnsSeasonalSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	for _, name := range SeasonalNames {
		seedFood(t, db, models.Food{Name: name})
	}
	seedFood(t, db, models.Food{Name: "Pollo"})

	results, err := repo.FindByNames(context.Background(), SeasonalNames)
	require.NoError(t, err)
	require.Len(t, results, len(SeasonalNames))
}

func TestViabilityByGoalFiltersNullRatings(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	rated := seedFood(t, db, models.Food{Name: "Acelga", ViabilityWeightLoss: strPtr(models.ViabilityVeryGood)})
	seedFood(t, db, models.Food{Name: "Acelga Cruda"}) // no rating

	rows, err := repo.ViabilityByGoal(context.Background(), "weightLoss", "acelga")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, rated.ID, rows[0].FoodID)
	require.Equal(t, models.ViabilityVeryGood, rows[0].Viability)
}

func TestViabilityByGoalRejectsUnknownGoal(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.ViabilityByGoal(context.Background(), "bulking", "acelga")
	require.Error(t, err)
}

func TestRandomWithImageSkipsImagelessFoods(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	seedFood(t, db, models.Food{Name: "Sin Imagen"})
	seedFood(t, db, models.Food{Name: "Imagen Vacia", ImageURL: strPtr("")})
	withImage := seedFood(t, db, models.Food{Name: "Con Imagen", ImageURL: strPtr("https://example.com/f.jpg")})

	food, err := repo.RandomWithImage(context.Background())
	require.NoError(t, err)
	require.Equal(t, withImage.ID, food.ID)
}

func TestRandomWithImageEmptyTableIsNotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.RandomWithImage(context.Background())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
