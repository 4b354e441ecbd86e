// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/usecase/export"
	"github.com/habit-tracker/backend/internal/application/usecase/share"
	"github.com/habit-tracker/backend/internal/application/usecase/sync"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *gorm.DB
	Manager *sync.Manager
	Router  *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	habitRepo := persistence.NewHabitRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	shareRepo := persistence.NewShareRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	stateCache := cache.NewRedisStateCache(redisClient)

	// Create the session manager and its status side-channel
	statusTracker := sync.NewStatusTracker(clock)
	manager := sync.NewManager(habitRepo, entryRepo, stateCache, clock, statusTracker)

	// Create use cases
	exportUseCase := export.NewExportStateUseCase(clock)
	createShareLinkUseCase := share.NewCreateShareLinkUseCase(shareRepo, cfg.App.BaseURL)
	getPublicYearUseCase := share.NewGetPublicYearUseCase(shareRepo, habitRepo, entryRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	habitController := controller.NewHabitController(manager)
	entryController := controller.NewEntryController(manager)
	stateController := controller.NewStateController(manager, exportUseCase, clock)
	dashboardController := controller.NewDashboardController(manager, clock)
	shareController := controller.NewShareController(createShareLinkUseCase, getPublicYearUseCase, clock)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		habitController,
		entryController,
		stateController,
		dashboardController,
		shareController,
		authMiddleware,
	)

	return &Injector{
		Config:  cfg,
		DB:      db,
		Manager: manager,
		Router:  r,
	}
}
