// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/export"
	"github.com/habit-tracker/backend/internal/application/usecase/share"
	syncengine "github.com/habit-tracker/backend/internal/application/usecase/sync"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// The suite pins the clock so date-scoped stats stay deterministic.
var testNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

// testContext holds the state for one scenario.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken   string
	currentUserID uuid.UUID
	habitID       string
	shareToken    string
}

type response struct {
	status  int
	headers http.Header
	body    any
	raw     []byte
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"habits":         &model.HabitModel{},
			"entries":        &model.EntryModel{},
			"share_profiles": &model.ShareProfileModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am logged in$`, test.iAmLoggedIn)
	ctx.Given(`^the board is reconciled$`, test.theBoardIsReconciled)
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Step(`^the db should eventually contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldEventuallyContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.habitID = ""
	t.shareToken = ""
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

// startServer boots the full engine once for the whole suite: SQLite-backed
// repositories, a miniredis snapshot cache and the real session manager.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			testClock = mock.NewClock(testNow)
			redisClient := mock.NewRedis()

			// Repositories
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			entryRepo := persistence.NewEntryRepository(testDB.DbConn)
			shareRepo := persistence.NewShareRepository(testDB.DbConn)

			// Adapters/services
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
			stateCache := cache.NewRedisStateCache(redisClient)

			// Session manager and status side-channel
			statusTracker := syncengine.NewStatusTracker(testClock)
			manager := syncengine.NewManager(habitRepo, entryRepo, stateCache, testClock, statusTracker)

			// Use cases
			exportUseCase := export.NewExportStateUseCase(testClock)
			createShareLinkUseCase := share.NewCreateShareLinkUseCase(shareRepo, t.uri)
			getPublicYearUseCase := share.NewGetPublicYearUseCase(shareRepo, habitRepo, entryRepo, testClock)

			// Controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			habitController := controller.NewHabitController(manager)
			entryController := controller.NewEntryController(manager)
			stateController := controller.NewStateController(manager, exportUseCase, testClock)
			dashboardController := controller.NewDashboardController(manager, testClock)
			shareController := controller.NewShareController(createShareLinkUseCase, getPublicYearUseCase, testClock)

			// Middleware
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				habitController,
				entryController,
				stateController,
				dashboardController,
				shareController,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}
