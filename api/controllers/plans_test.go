package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nutriapp/nutriapp-backend/internal/plans"
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubPlansService struct {
	plan  *plans.PremadePlanDTO
	items []plans.CustomItemDTO
	item  *models.CustomPlanItem
	msg   string
	err   error

	gotPlanType string
	gotUserID   int64
	gotItemID   int64
	gotReq      plans.AddCustomItemRequest
}

func (s *stubPlansService) PremadePlan(_ context.Context, planType string) (*plans.PremadePlanDTO, error) {
	s.gotPlanType = planType
	return s.plan, s.err
}

func (s *stubPlansService) CustomPlan(_ context.Context, userID int64) ([]plans.CustomItemDTO, error) {
	s.gotUserID = userID
	return s.items, s.err
}

func (s *stubPlansService) AddCustomItem(_ context.Context, userID int64, req plans.AddCustomItemRequest) (*models.CustomPlanItem, error) {
	s.gotUserID = userID
	s.gotReq = req
	return s.item, s.err
}

func (s *stubPlansService) DeleteCustomItem(_ context.Context, userID, itemID int64) (string, error) {
	s.gotUserID = userID
	s.gotItemID = itemID
	return s.msg, s.err
}

func TestGetPremadePlanPassesType(t *testing.T) {
	svc := &stubPlansService{plan: &plans.PremadePlanDTO{PlanID: 4, Name: "Plan Perdida de Peso", Goal: "weightLoss"}}

	router := chi.NewRouter()
	router.Get("/api/plans/premade/{type}", GetPremadePlan(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/premade/weightLoss", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "weightLoss", svc.gotPlanType)

	var envelope struct {
		Data plans.PremadePlanDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, int64(4), envelope.Data.PlanID)
}

func TestGetPremadePlanInvalidType(t *testing.T) {
	svc := &stubPlansService{err: pkgerrors.New(pkgerrors.CodeValidation, "invalid plan type")}

	router := chi.NewRouter()
	router.Get("/api/plans/premade/{type}", GetPremadePlan(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/premade/keto", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomPlanScopedToUser(t *testing.T) {
	svc := &stubPlansService{items: []plans.CustomItemDTO{{ItemID: 1, MealType: "breakfast"}}}
	handler := GetCustomPlan(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authenticatedRequest(http.MethodGet, "/api/plans/custom", "", 9))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(9), svc.gotUserID)
}

func TestAddCustomPlanItemCreated(t *testing.T) {
	svc := &stubPlansService{item: &models.CustomPlanItem{ID: 7, UserID: 9, MealType: "lunch", Quantity: 150}}
	handler := AddCustomPlanItem(svc, nil)

	body := `{"meal_type":"lunch","food_id":456,"quantity":150}`
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authenticatedRequest(http.MethodPost, "/api/plans/custom", body, 9))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "lunch", svc.gotReq.MealType)
	require.NotNil(t, svc.gotReq.FoodID)
	require.Equal(t, int64(456), *svc.gotReq.FoodID)
}

func TestDeleteCustomPlanItemReturnsMessage(t *testing.T) {
	svc := &stubPlansService{msg: plans.MsgItemDeleted}

	router := chi.NewRouter()
	router.Delete("/api/plans/custom/{itemId}", DeleteCustomPlanItem(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticatedRequest(http.MethodDelete, "/api/plans/custom/7", "", 9))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(7), svc.gotItemID)
	require.Equal(t, int64(9), svc.gotUserID)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, plans.MsgItemDeleted, envelope.Data["message"])
}

func TestDeleteCustomPlanItemRejectsBadID(t *testing.T) {
	svc := &stubPlansService{}

	router := chi.NewRouter()
	router.Delete("/api/plans/custom/{itemId}", DeleteCustomPlanItem(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticatedRequest(http.MethodDelete, "/api/plans/custom/abc", "", 9))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, svc.gotItemID)
}

func TestDeleteCustomPlanItemForbidden(t *testing.T) {
	svc := &stubPlansService{err: pkgerrors.New(pkgerrors.CodeForbidden, "item does not belong to user")}

	router := chi.NewRouter()
	router.Delete("/api/plans/custom/{itemId}", DeleteCustomPlanItem(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticatedRequest(http.MethodDelete, "/api/plans/custom/7", "", 9))

	require.Equal(t, http.StatusForbidden, w.Code)
}
