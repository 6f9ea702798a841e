package foods

import (
	"context"
	"errors"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
	"gorm.io/gorm"
)

// Base rationale strings, evaluated in priority order.
const (
	ReasonWeightLoss  = "Excellent for losing weight"
	ReasonMuscleGain  = "Ideal for gaining muscle mass"
	ReasonMaintenance = "Perfect for maintenance"
	ReasonLowCalorie  = "Low in calories, ideal for weight control"
	ReasonHighProtein = "High in protein, excellent for muscles"
	ReasonBalanced    = "Nutritious and balanced food"
)

// Personalization prefixes applied when the user's goal weight differs from
// their current weight.
const (
	PrefixWeightLossGoal = "Perfect for your weight-loss goal. "
	PrefixMuscleGainGoal = "Ideal for your muscle-gain goal. "
)

const fallbackReason = "Excellent for digestive health and rich in antioxidants. Low in calories and high in essential nutrients."

// FoodOfTheDay pairs the selected food with its rationale.
type FoodOfTheDay struct {
	Food   models.Food `json:"food"`
	Reason string      `json:"reason"`
}

type randomFoodSource interface {
	RandomWithImage(ctx context.Context) (*models.Food, error)
}

type goalSource interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Selector implements the food-of-the-day heuristic. It never fails: any
// store problem degrades to a fixed fallback pair.
type Selector struct {
	foods randomFoodSource
	users goalSource
	logg  *logger.Logger
}

// NewSelector builds a selector over the food and user sources.
func NewSelector(foods randomFoodSource, users goalSource, logg *logger.Logger) *Selector {
	return &Selector{foods: foods, users: users, logg: logg}
}

// Select draws a random eligible food and derives its rationale, personalized
// by the user's weight goal when one is present.
func (s *Selector) Select(ctx context.Context, userID *int64) FoodOfTheDay {
	food, err := s.foods.RandomWithImage(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && s.logg != nil {
			s.logg.Warn(ctx, "food of the day draw failed, serving fallback")
		}
		return Fallback()
	}

	reason := baseReason(food)

	if userID != nil && s.users != nil {
		prefix, err := s.personalization(ctx, *userID)
		if err != nil {
			if s.logg != nil {
				s.logg.Warn(ctx, "food of the day personalization failed, serving fallback")
			}
			return Fallback()
		}
		reason = prefix + reason
	}

	return FoodOfTheDay{Food: *food, Reason: reason}
}

// personalization returns the goal prefix for the user, or empty when the
// user is unknown or has no complete weight goal.
func (s *Selector) personalization(ctx context.Context, userID int64) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if user.Weight == nil || user.GoalWeight == nil {
		return "", nil
	}

	switch {
	case *user.GoalWeight < *user.Weight:
		return PrefixWeightLossGoal, nil
	case *user.GoalWeight > *user.Weight:
		return PrefixMuscleGainGoal, nil
	default:
		return "", nil
	}
}

func baseReason(f *models.Food) string {
	veryGood := func(v *string) bool { return v != nil && *v == models.ViabilityVeryGood }

	switch {
	case veryGood(f.ViabilityWeightLoss):
		return ReasonWeightLoss
	case veryGood(f.ViabilityMuscleGain):
		return ReasonMuscleGain
	case veryGood(f.ViabilityMaintenance):
		return ReasonMaintenance
	case f.Kcal != nil && *f.Kcal < 100:
		return ReasonLowCalorie
	case f.Protein != nil && *f.Protein > 15:
		return ReasonHighProtein
	default:
		return ReasonBalanced
	}
}

// Fallback is the fixed degraded response served when no eligible food can be
// drawn.
func Fallback() FoodOfTheDay {
	desc := "1 taza (175g) de acelga cocida, sin sal."
	category := "Verdura"
	kcal := 35.0
	protein := 3.3
	carbs := 7.0
	fats := 0.1
	image := "https://imagenes2.eltiempo.com/files/image_1200_535/uploads/2023/05/09/645a9c00e1f42.jpeg"

	return FoodOfTheDay{
		Food: models.Food{
			ID:          456,
			Name:        "Acelga",
			Description: &desc,
			Category:    &category,
			Kcal:        &kcal,
			Protein:     &protein,
			Carbs:       &carbs,
			Fats:        &fats,
			ImageURL:    &image,
		},
		Reason: fallbackReason,
	}
}
