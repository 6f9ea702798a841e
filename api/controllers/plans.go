package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nutriapp/nutriapp-backend/api/middleware"
	"github.com/nutriapp/nutriapp-backend/api/responses"
	"github.com/nutriapp/nutriapp-backend/api/validators"
	"github.com/nutriapp/nutriapp-backend/internal/plans"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
)

// GetPremadePlan returns one of the curated plans by its type name.
func GetPremadePlan(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plans service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		planType := strings.TrimSpace(chi.URLParam(r, "type"))
		plan, err := svc.PremadePlan(r.Context(), planType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, plan)
	}
}

// GetCustomPlan lists the authenticated user's custom plan items with
// scaled nutrition.
func GetCustomPlan(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plans service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.CustomPlan(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// AddCustomPlanItem appends an item to the user's custom plan.
func AddCustomPlanItem(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plans service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body plans.AddCustomItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AddCustomItem(r.Context(), middleware.UserIDFromContext(r.Context()), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// DeleteCustomPlanItem removes an item the user owns from their plan.
func DeleteCustomPlanItem(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "plans service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := validators.ParsePathInt64(strings.TrimSpace(chi.URLParam(r, "itemId")), "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := svc.DeleteCustomItem(r.Context(), middleware.UserIDFromContext(r.Context()), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": msg})
	}
}
