package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/entry"
	"github.com/habit-tracker/backend/internal/application/usecase/sync"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles entry logging and history endpoints.
type EntryController struct {
	manager *sync.Manager
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(manager *sync.Manager) *EntryController {
	return &EntryController{
		manager: manager,
	}
}

// Log handles POST /entries requests. The literal value string travels
// untouched so the typed decimal precision survives to the server.
func (c *EntryController) Log(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LogValueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingEntryFields),
			Details: err.Error(),
		})
		return
	}

	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	out, err := session.LogValue(ctx.Request.Context(), sync.LogValueInput{
		DateISO: req.Date,
		HabitID: habitID,
		Value:   req.Value,
		Checked: req.Checked,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LogValueResponse{
		Entry: dto.ToEntryPayload(out.Entry),
		Habit: dto.ToHabitResponse(out.Habit),
	})
}

// Remove handles DELETE /entries requests, keyed by date and habit_id query
// parameters.
func (c *EntryController) Remove(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	dateISO := ctx.Query("date")
	if dateISO == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date query parameter is required",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Query("habit_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	if err := session.RemoveLog(ctx.Request.Context(), dateISO, habitID); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// History handles GET /history requests with an optional month filter.
func (c *EntryController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month := ctx.DefaultQuery("month", entry.HistoryMonthAll)

	session := c.manager.Session(ctx.Request.Context(), userID)
	tree := session.Snapshot()
	year := tree.UI.SelectedYear

	days, err := entry.ListHistory(tree, year, month)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(year, month, days))
}

// handleEntryError handles entry errors and returns appropriate HTTP
// responses. Logging can also surface habit errors (unknown habit id), so
// both families are mapped here.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		status := http.StatusBadRequest
		if habitErr.Code == domainerror.ErrCodeHabitNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidEntryValue,
		domainerror.ErrCodeInvalidHistoryMonth,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
