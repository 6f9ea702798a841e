package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nutriapp/nutriapp-backend/api/middleware"
	"github.com/nutriapp/nutriapp-backend/api/responses"
	"github.com/nutriapp/nutriapp-backend/api/validators"
	"github.com/nutriapp/nutriapp-backend/internal/foods"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
)

// SearchFoods looks up foods by name or category.
func SearchFoods(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "foods service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		term, err := validators.RequireQuery(r, "q")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		results, err := svc.Search(r.Context(), term)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, results)
	}
}

// GetFood returns a single food by its identifier.
func GetFood(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "foods service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParsePathInt64(strings.TrimSpace(chi.URLParam(r, "id")), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		food, err := svc.FoodByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, food)
	}
}

// SeasonalSuggestions returns the curated seasonal food set.
func SeasonalSuggestions(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "foods service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		results, err := svc.Seasonal(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, results)
	}
}

// FoodViability scores foods against a nutrition goal.
func FoodViability(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "foods service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		goal, err := validators.RequireQuery(r, "goal")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		term, err := validators.RequireQuery(r, "q")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		results, err := svc.Viability(r.Context(), goal, term)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, results)
	}
}

// FoodOfTheDay returns a daily pick with a reason personalized to the
// authenticated user's goal progress.
func FoodOfTheDay(svc foods.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "foods service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var userID *int64
		if id := middleware.UserIDFromContext(r.Context()); id > 0 {
			userID = &id
		}

		responses.WriteSuccess(w, svc.FoodOfTheDay(r.Context(), userID))
	}
}
