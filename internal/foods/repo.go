package foods

import (
	"context"
	"fmt"
	"strings"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"gorm.io/gorm"
)

// searchLimit caps the rows returned by a free-text search.
const searchLimit = 20

// SeasonalNames is the fixed set of foods surfaced as seasonal suggestions.
var SeasonalNames = []string{
	"Mote con Huesillo",
	"Cazuela de Vacuno",
	"Sopaipillas (Fritas)",
}

// ViabilityDTO is one row of a per-goal viability lookup.
type ViabilityDTO struct {
	FoodID    int64  `json:"food_id"`
	Name      string `json:"name"`
	Viability string `json:"viability"`
}

// ViabilityColumn maps a goal name onto its viability column. The second
// return is false for unrecognized goals; only whitelisted column names ever
// reach SQL.
func ViabilityColumn(goal string) (string, bool) {
	switch goal {
	case "weightLoss":
		return "viability_weight_loss", true
	case "muscleGain":
		return "viability_muscle_gain", true
	case "maintenance":
		return "viability_maintenance", true
	default:
		return "", false
	}
}

// Repository exposes read access to the foods reference table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a foods repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Search returns up to 20 foods whose name or category contains the term,
// case-insensitively.
func (r *Repository) Search(ctx context.Context, term string) ([]models.Food, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var foods []models.Food
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Limit(searchLimit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByID loads a single food record.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "food_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// FindByNames returns the foods matching any of the given names.
func (r *Repository) FindByNames(ctx context.Context, names []string) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// ViabilityByGoal returns the foods matching the term that carry a non-null
// rating in the goal's viability column.
func (r *Repository) ViabilityByGoal(ctx context.Context, goal, term string) ([]ViabilityDTO, error) {
	column, ok := ViabilityColumn(goal)
	if !ok {
		return nil, fmt.Errorf("unknown goal %q", goal)
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var rows []ViabilityDTO
	err := r.db.WithContext(ctx).
		Model(&models.Food{}).
		Select(fmt.Sprintf("food_id, name, %s AS viability", column)).
		Where(fmt.Sprintf("LOWER(name) LIKE ? AND %s IS NOT NULL", column), pattern).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RandomWithImage draws one food uniformly at random among those with a
// non-empty image reference.
func (r *Repository) RandomWithImage(ctx context.Context) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).
		Where("image_url IS NOT NULL AND image_url <> ''").
		Order("RANDOM()").
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}
