package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/export"
	"github.com/habit-tracker/backend/internal/application/usecase/sync"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// StateController handles snapshot, reconciliation and export endpoints.
type StateController struct {
	manager       *sync.Manager
	exportUseCase *export.ExportStateUseCase
	clock         adapter.Clock
}

// NewStateController creates a new state controller instance.
func NewStateController(manager *sync.Manager, exportUseCase *export.ExportStateUseCase, clock adapter.Clock) *StateController {
	return &StateController{
		manager:       manager,
		exportUseCase: exportUseCase,
		clock:         clock,
	}
}

// Get handles GET /state requests: the current snapshot plus sync status.
func (c *StateController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	ctx.JSON(http.StatusOK, dto.ToStateResponse(session.Snapshot(), session.Status(), c.clock.Now()))
}

// Reload handles POST /state/reload requests: a forced reconciliation for
// the active year. A failed fetch keeps the stale snapshot and reports 502.
func (c *StateController) Reload(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	if err := session.Reload(ctx.Request.Context()); err != nil {
		var syncErr *domainerror.SyncError
		if errors.As(err, &syncErr) {
			ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
				Error: syncErr.Message,
				Code:  string(syncErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStateResponse(session.Snapshot(), session.Status(), c.clock.Now()))
}

// ChangeYear handles PUT /state/year requests. The year switches
// immediately; the reconciliation for the new scope runs in the background.
func (c *StateController) ChangeYear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ChangeYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	tree, err := session.ChangeYear(ctx.Request.Context(), req.Year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStateResponse(tree, session.Status(), c.clock.Now()))
}

// Export handles GET /export requests: the full state tree as a JSON
// download with a dated filename.
func (c *StateController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	out, err := c.exportUseCase.Execute(session.Snapshot())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export state",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	ctx.Data(http.StatusOK, "application/json", out.Data)
}
