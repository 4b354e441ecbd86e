package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/sync"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints. All mutations are optimistic:
// the response reflects the local state and the remote write completes in
// the background, reported through the sync status.
type HabitController struct {
	manager *sync.Manager
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(manager *sync.Manager) *HabitController {
	return &HabitController{
		manager: manager,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingHabitFields),
			Details: err.Error(),
		})
		return
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	habit, err := session.AddHabit(ctx.Request.Context(), sync.AddHabitInput{
		Name:  req.Name,
		Kind:  entity.HabitKind(req.Kind),
		Unit:  req.Unit,
		Goals: req.Goals.ToValueObject(),
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(habit))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
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

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingHabitFields),
			Details: err.Error(),
		})
		return
	}

	input := sync.UpdateHabitInput{
		HabitID:  habitID,
		Name:     req.Name,
		Unit:     req.Unit,
		Decimals: req.Decimals,
	}
	if req.Goals != nil {
		goals := req.Goals.ToValueObject()
		input.Goals = &goals
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	habit, err := session.UpdateHabit(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(habit))
}

// Delete handles DELETE /habits/:id requests. Deleting a habit cascades to
// its entries on every date.
func (c *HabitController) Delete(ctx *gin.Context) {
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
	if err := session.DeleteHabit(ctx.Request.Context(), habitID); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PATCH /habits/reorder requests with the full ordered id
// list.
func (c *HabitController) Reorder(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ReorderHabitsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeEmptyReorder),
			Details: err.Error(),
		})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.HabitIDs))
	for _, raw := range req.HabitIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid habit ID format: " + raw,
			})
			return
		}
		ids = append(ids, id)
	}

	session := c.manager.Session(ctx.Request.Context(), userID)
	if err := session.SetOrder(ctx.Request.Context(), ids); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponses(session.Snapshot().Habits))
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		ctx.JSON(c.getStatusCodeForHabitError(habitErr.Code), dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedHabit:
		return http.StatusForbidden
	case domainerror.ErrCodeHabitNameRequired,
		domainerror.ErrCodeInvalidHabitKind,
		domainerror.ErrCodeInvalidDecimals,
		domainerror.ErrCodeEmptyReorder,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
