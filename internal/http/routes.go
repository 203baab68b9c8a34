package http

import (
	"os"
	"strconv"
	"time"

	"student_dashboard/internal/config"
	"student_dashboard/internal/http/handlers"
	"student_dashboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// OAuth entry points live outside /api so the redirect URI stays short.
	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)
	r.GET("/auth/google", authRL, h.GoogleLogin)
	r.GET("/auth/google/callback", authRL, h.GoogleCallback)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))

	api.GET("/me", middleware.JWT(), h.Me)

	// Custom tasks (persisted, owner-scoped)
	tasks := api.Group("/custom-tasks")
	tasks.Use(middleware.JWT())
	{
		tasks.POST("", h.CreateCustomTask)
		tasks.GET("", h.ListCustomTasks)
		tasks.GET("/:id", h.GetCustomTask)
		tasks.PUT("/:id", h.UpdateCustomTask)
		tasks.DELETE("/:id", h.DeleteCustomTask)
	}

	// Subtasks attach to tasks of either origin by logical id.
	subtasks := api.Group("/tasks/:taskId/subtasks")
	subtasks.Use(middleware.JWT())
	{
		subtasks.POST("", h.CreateSubtask)
		subtasks.GET("", h.ListSubtasks)
		subtasks.POST("/generate", h.GenerateSubtasks)
		subtasks.PUT("/:id", h.UpdateSubtask)
		subtasks.PATCH("/:id/toggle", h.ToggleSubtask)
		subtasks.DELETE("/:id", h.DeleteSubtask)
	}

	api.POST("/tasks/:taskId/submit", middleware.JWT(), h.SubmitTask)

	// Course colors
	colors := api.Group("/course-colors")
	colors.Use(middleware.JWT())
	{
		colors.GET("", h.GetCourseColors)
		colors.PUT("", h.SetCourseColor)
		colors.DELETE("/:courseName", h.DeleteCourseColor)
	}
	api.GET("/courses", middleware.JWT(), h.Courses)

	// Dashboard views
	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.JWT())
	{
		dashboard.GET("", h.Dashboard)
		dashboard.GET("/pending", h.DashboardPending)
		dashboard.GET("/upcoming", h.DashboardUpcoming)
		dashboard.GET("/recent", h.DashboardRecent)
	}
}
