package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/share"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// ShareController handles share link creation and the public read-only view.
type ShareController struct {
	createUseCase *share.CreateShareLinkUseCase
	viewUseCase   *share.GetPublicYearUseCase
	clock         adapter.Clock
}

// NewShareController creates a new share controller instance.
func NewShareController(
	createUseCase *share.CreateShareLinkUseCase,
	viewUseCase *share.GetPublicYearUseCase,
	clock adapter.Clock,
) *ShareController {
	return &ShareController{
		createUseCase: createUseCase,
		viewUseCase:   viewUseCase,
		clock:         clock,
	}
}

// Create handles POST /share requests: rotate the token and enable sharing.
func (c *ShareController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	out, err := c.createUseCase.Execute(ctx.Request.Context(), share.CreateShareLinkInput{
		UserID: userID,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ShareLinkResponse{
		Token: out.Token,
		URL:   out.URL,
	})
}

// View handles GET /view/:token requests. Unauthenticated: the token is the
// whole credential. The year defaults to the current calendar year.
func (c *ShareController) View(ctx *gin.Context) {
	token := ctx.Param("token")

	year := c.clock.Now().Year()
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		year = parsed
	}

	out, err := c.viewUseCase.Execute(ctx.Request.Context(), share.GetPublicYearInput{
		Token: token,
		Year:  year,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPublicYearResponse(year, out))
}

// handleShareError handles share errors and returns appropriate HTTP responses.
func (c *ShareController) handleShareError(ctx *gin.Context, err error) {
	var shareErr *domainerror.ShareError
	if errors.As(err, &shareErr) {
		ctx.JSON(c.getStatusCodeForShareError(shareErr.Code), dto.ErrorResponse{
			Error: shareErr.Message,
			Code:  string(shareErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForShareError maps share error codes to HTTP status codes.
func (c *ShareController) getStatusCodeForShareError(code domainerror.ShareErrorCode) int {
	switch code {
	case domainerror.ErrCodeShareNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeShareDisabled:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
