// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	habitController     *controller.HabitController
	entryController     *controller.EntryController
	stateController     *controller.StateController
	dashboardController *controller.DashboardController
	shareController     *controller.ShareController
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	habitController *controller.HabitController,
	entryController *controller.EntryController,
	stateController *controller.StateController,
	dashboardController *controller.DashboardController,
	shareController *controller.ShareController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		habitController:     habitController,
		entryController:     entryController,
		stateController:     stateController,
		dashboardController: dashboardController,
		shareController:     shareController,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupPublicRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupPublicRoutes configures unauthenticated endpoints. The share token
// in the path is the whole credential for the read-only view.
func (r *Router) setupPublicRoutes() {
	if r.shareController != nil {
		r.engine.GET("/view/:token", r.shareController.View)
	}
}

// setupAPIRoutes configures the main API routes. Everything under /api/v1
// requires a Bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.habitController != nil {
			habits := v1.Group("/habits")
			{
				habits.POST("", r.habitController.Create)
				habits.PATCH("/reorder", r.habitController.Reorder)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		if r.stateController != nil {
			state := v1.Group("/state")
			{
				state.GET("", r.stateController.Get)
				state.POST("/reload", r.stateController.Reload)
				state.PUT("/year", r.stateController.ChangeYear)
			}
			v1.GET("/export", r.stateController.Export)
		}

		if r.entryController != nil {
			entries := v1.Group("/entries")
			{
				entries.POST("", r.entryController.Log)
				entries.DELETE("", r.entryController.Remove)
			}
			v1.GET("/history", r.entryController.History)
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
				dashboard.GET("/series/:id", r.dashboardController.Series)
			}
		}

		if r.shareController != nil {
			v1.POST("/share", r.shareController.Create)
		}
	}
}
