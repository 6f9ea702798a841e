package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nutriapp/nutriapp-backend/internal/foods"
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubFoodsService struct {
	foods     []models.Food
	food      *models.Food
	viability []foods.ViabilityDTO
	daily     foods.FoodOfTheDay
	err       error

	gotTerm   string
	gotGoal   string
	gotID     int64
	gotUserID *int64
}

func (s *stubFoodsService) Search(_ context.Context, term string) ([]models.Food, error) {
	s.gotTerm = term
	return s.foods, s.err
}

func (s *stubFoodsService) FoodByID(_ context.Context, id int64) (*models.Food, error) {
	s.gotID = id
	return s.food, s.err
}

func (s *stubFoodsService) Seasonal(context.Context) ([]models.Food, error) {
	return s.foods, s.err
}

func (s *stubFoodsService) Viability(_ context.Context, goal, term string) ([]foods.ViabilityDTO, error) {
	s.gotGoal = goal
	s.gotTerm = term
	return s.viability, s.err
}

func (s *stubFoodsService) FoodOfTheDay(_ context.Context, userID *int64) foods.FoodOfTheDay {
	s.gotUserID = userID
	return s.daily
}

func TestSearchFoodsRequiresQuery(t *testing.T) {
	svc := &stubFoodsService{}
	handler := SearchFoods(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, svc.gotTerm)
}

func TestSearchFoodsPassesTerm(t *testing.T) {
	svc := &stubFoodsService{foods: []models.Food{{ID: 1, Name: "Manzana"}}}
	handler := SearchFoods(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=manzana", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "manzana", svc.gotTerm)
}

func TestGetFoodParsesPathID(t *testing.T) {
	svc := &stubFoodsService{food: &models.Food{ID: 456, Name: "Acelga"}}

	router := chi.NewRouter()
	router.Get("/api/foods/{id}", GetFood(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/foods/456", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(456), svc.gotID)
}

func TestGetFoodRejectsNonNumericID(t *testing.T) {
	svc := &stubFoodsService{}

	router := chi.NewRouter()
	router.Get("/api/foods/{id}", GetFood(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/foods/acelga", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, svc.gotID)
}

func TestGetFoodNotFound(t *testing.T) {
	svc := &stubFoodsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "food not found")}

	router := chi.NewRouter()
	router.Get("/api/foods/{id}", GetFood(svc, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/foods/999", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodViabilityRequiresGoalAndTerm(t *testing.T) {
	svc := &stubFoodsService{}
	handler := FoodViability(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/viability?q=arroz", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/viability?goal=weightLoss", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/viability?goal=weightLoss&q=arroz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "weightLoss", svc.gotGoal)
	require.Equal(t, "arroz", svc.gotTerm)
}

func TestFoodOfTheDayForwardsAuthenticatedUser(t *testing.T) {
	svc := &stubFoodsService{daily: foods.FoodOfTheDay{
		Food:   models.Food{ID: 456, Name: "Acelga"},
		Reason: "Nutritious and balanced food",
	}}
	handler := FoodOfTheDay(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authenticatedRequest(http.MethodGet, "/api/food-of-the-day", "", 9))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotUserID)
	require.Equal(t, int64(9), *svc.gotUserID)

	var envelope struct {
		Data foods.FoodOfTheDay `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "Acelga", envelope.Data.Food.Name)
}
