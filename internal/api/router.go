package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/logos/internal/api/handlers"
	mw "github.com/Harshitk-cp/logos/internal/api/middleware"
	"github.com/Harshitk-cp/logos/internal/buildconfig"
	"github.com/Harshitk-cp/logos/internal/config"
	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/metrics"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/Harshitk-cp/logos/internal/service"
	"github.com/Harshitk-cp/logos/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const rateLimitCleanup = 10 * time.Minute

// App holds the router and the long-lived pieces main must shut down.
type App struct {
	Router   *chi.Mux
	Engine   *reasoning.Engine
	Analysis *service.AnalysisService
	Learning *service.LearningService
	Metrics  *metrics.Metrics

	limiter   *mw.RateLimiter
	startTime time.Time
}

// NewApp wires the HTTP surface around engine. db may be nil, in which case
// cases live only in the engine's bounded history.
func NewApp(db *pgxpool.Pool, engine *reasoning.Engine, logger *zap.Logger) *App {
	m := metrics.New()

	// Services
	analysisSvc := service.NewAnalysisService(engine, m, logger)
	analysisSvc.SetTimeout(config.AnalysisTimeout())
	analysisSvc.SetConcurrency(config.BatchConcurrency())
	learningSvc := service.NewLearningService(engine, logger)

	if db != nil {
		caseStore := store.NewCaseStore(db)
		profileStore := store.NewProfileStore(db)
		analysisSvc.SetCaseStore(caseStore)
		analysisSvc.SetProfileStore(profileStore)
		learningSvc.SetCaseStore(caseStore)
		learningSvc.SetProfileStore(profileStore)
	}

	// Handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc)
	learningHandler := handlers.NewLearningHandler(learningSvc, config.RestoreMaxBytes())

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		Engine:    engine,
		Analysis:  analysisSvc,
		Learning:  learningSvc,
		Metrics:   m,
		limiter:   mw.NewRateLimiter(config.RateLimitRPS(), config.RateLimitBurst()),
		startTime: time.Now(),
	}
	app.limiter.Start(rateLimitCleanup)

	// Global middleware (order matters)
	r.Use(mw.RequestID)           // Generate/extract request ID first
	r.Use(middleware.RealIP)      // Extract real IP
	r.Use(mw.Metrics(m))          // Collect metrics
	r.Use(mw.Logging(logger))     // Log all requests
	r.Use(middleware.Recoverer)   // Recover from panics
	r.Use(app.limiter.Middleware) // Rate limiting

	r.Get("/health", app.healthHandler(db))
	r.Get("/status", app.statusHandler())
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Post("/analyze", analysisHandler.Analyze)
		r.Post("/analyze/batch", analysisHandler.Batch)
		r.Post("/diagnose", analysisHandler.Diagnose)
		r.Post("/cases/similar", analysisHandler.Similar)
		r.Get("/statistics", analysisHandler.Statistics)

		r.Route("/learning", func(r chi.Router) {
			r.Get("/export", learningHandler.Export)
			r.Post("/reset", learningHandler.Reset)
			r.Post("/restore", learningHandler.Restore)
		})

		r.Get("/users/{id}/profile", learningHandler.Profile)
	})

	return app
}

// Close stops background work. The engine stops accepting new cases.
func (app *App) Close() {
	app.limiter.Stop()
	app.Engine.Close()
}

func (app *App) healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"status":  "ok",
			"version": buildconfig.VersionInfo(),
			"storage": "memory",
		}
		if db != nil {
			resp["storage"] = "postgres"
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				resp["status"] = "error"
				resp["error"] = err.Error()
				writeJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (app *App) statusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		stats := app.Engine.Statistics()

		response := map[string]any{
			"uptime_seconds":  uptime.Seconds(),
			"uptime_human":    uptime.Round(time.Second).String(),
			"total_processed": stats.TotalProcessed,
			"history_length":  stats.HistoryLength,
			"history_cap":     stats.HistoryCap,
			"goroutines":      runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}
		writeJSON(w, http.StatusOK, response)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.CaseStore    = (*store.CaseStore)(nil)
	_ domain.ProfileStore = (*store.ProfileStore)(nil)
	_ domain.RandomSource = (*reasoning.KeyedSource)(nil)
)
