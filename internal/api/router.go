package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/mbeaufort/sleep-metrics/docs"
	"github.com/mbeaufort/sleep-metrics/internal/api/handler"
	"github.com/mbeaufort/sleep-metrics/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler     *handler.UserHandler
	sampleHandler   *handler.SampleHandler
	nightHandler    *handler.NightHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	sampleHandler *handler.SampleHandler,
	nightHandler *handler.NightHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:     userHandler,
		sampleHandler:   sampleHandler,
		nightHandler:    nightHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Get("/{userId}/settings", rt.userHandler.GetSettings)
			r.Put("/{userId}/settings", rt.userHandler.UpdateSettings)

			// Raw samples (nested under users)
			r.Route("/{userId}/samples", func(r chi.Router) {
				r.Post("/", rt.sampleHandler.Ingest)
				r.Get("/", rt.sampleHandler.List)
			})

			// Derived nights
			r.Route("/{userId}/nights", func(r chi.Router) {
				r.Get("/", rt.nightHandler.ListNights)
				r.Get("/{date}", rt.nightHandler.GetNight)
			})

			// Goal-relative derivations and insights
			r.Route("/{userId}/sleep", func(r chi.Router) {
				r.Get("/debt", rt.nightHandler.GetDebt)
				r.Get("/recommendation", rt.nightHandler.GetRecommendation)
				r.Get("/insights", rt.insightsHandler.GetInsights)
				r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
			})

			// Activity charts
			r.Get("/{userId}/activity/steps", rt.nightHandler.GetDailySteps)
		})
	})

	return r
}
