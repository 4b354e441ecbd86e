package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/application/usecase/sync"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles year summary and trend series endpoints. Both
// are pure reads over the session snapshot.
type DashboardController struct {
	manager *sync.Manager
	clock   adapter.Clock
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(manager *sync.Manager, clock adapter.Clock) *DashboardController {
	return &DashboardController{
		manager: manager,
		clock:   clock,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	tree := session.Snapshot()
	year := tree.UI.SelectedYear

	items := stats.YearSummary(tree.Habits, tree.Entries, year, c.clock.Now())
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(year, items))
}

// Series handles GET /dashboard/series/:id requests: the cumulative daily
// trend line for one habit in the selected year.
func (c *DashboardController) Series(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	tree := session.Snapshot()

	habit := tree.FindHabit(habitID)
	if habit == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Habit not found",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	year := tree.UI.SelectedYear
	points := stats.BuildSeries(habit, tree.Entries, year, c.clock.Now())
	ctx.JSON(http.StatusOK, dto.ToSeriesResponse(dto.ToHabitResponse(habit), year, points))
}
