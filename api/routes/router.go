package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nutriapp/nutriapp-backend/api/controllers"
	"github.com/nutriapp/nutriapp-backend/api/middleware"
	"github.com/nutriapp/nutriapp-backend/internal/auth"
	"github.com/nutriapp/nutriapp-backend/internal/community"
	"github.com/nutriapp/nutriapp-backend/internal/foods"
	"github.com/nutriapp/nutriapp-backend/internal/plans"
	"github.com/nutriapp/nutriapp-backend/internal/users"
	"github.com/nutriapp/nutriapp-backend/pkg/config"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
	"github.com/nutriapp/nutriapp-backend/pkg/metrics"
	"github.com/nutriapp/nutriapp-backend/pkg/redis"
)

// NewRouter assembles the HTTP surface. Registration and login are public
// and rate limited, the food catalog reads are public, and everything that
// touches a specific user's data requires a bearer token.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	checks controllers.ReadinessChecks,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	redisClient *redis.Client,
	authService auth.Service,
	registerService auth.RegisterService,
	usersService users.Service,
	foodsService foods.Service,
	plansService plans.Service,
	communityService community.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// without Redis the counters have nowhere to live, so the throttle is off
	limit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(checks, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.With(limit(registerPolicy)).Post("/register", controllers.Register(registerService, logg))
		r.With(limit(loginPolicy)).Post("/login", controllers.Login(authService, logg))

		r.Get("/search", controllers.SearchFoods(foodsService, logg))
		r.Get("/foods/{id}", controllers.GetFood(foodsService, logg))
		r.Get("/suggestions/seasonal", controllers.SeasonalSuggestions(foodsService, logg))
		r.Get("/viability", controllers.FoodViability(foodsService, logg))
		r.Get("/plans/premade/{type}", controllers.GetPremadePlan(plansService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Get("/user/profile", controllers.GetProfile(usersService, logg))
			r.Put("/user/profile", controllers.UpdateProfile(usersService, logg))

			r.Post("/weight/history", controllers.RecordWeight(usersService, logg))
			r.Get("/weight/history", controllers.WeightHistory(usersService, logg))

			r.Get("/food-of-the-day", controllers.FoodOfTheDay(foodsService, logg))

			r.Get("/plans/custom", controllers.GetCustomPlan(plansService, logg))
			r.Post("/plans/custom", controllers.AddCustomPlanItem(plansService, logg))
			r.Delete("/plans/custom/{itemId}", controllers.DeleteCustomPlanItem(plansService, logg))

			r.Get("/community/posts", controllers.ListPosts(communityService, logg))
			r.Post("/community/posts", controllers.CreatePost(communityService, logg))
			r.Post("/community/posts/{postId}/comments", controllers.AddComment(communityService, logg))
			r.Delete("/community/posts/{postId}", controllers.DeletePost(communityService, logg))
		})
	})

	return r
}
