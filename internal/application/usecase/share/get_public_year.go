package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetPublicYearInput represents the input for the unauthenticated view-only
// query.
type GetPublicYearInput struct {
	Token string
	Year  int
}

// GetPublicYearOutput is the read-only year data exposed by a share token.
type GetPublicYearOutput struct {
	Habits  []*entity.Habit
	Entries entity.EntryStore
	Summary []stats.SummaryItem
}

// GetPublicYearUseCase serves the server-side query keyed by share token +
// year. It reads the remote store directly; no session state is involved.
type GetPublicYearUseCase struct {
	shareRepo adapter.ShareRepository
	habitRepo adapter.HabitRepository
	entryRepo adapter.EntryRepository
	clock     adapter.Clock
}

// NewGetPublicYearUseCase creates a new GetPublicYearUseCase instance.
func NewGetPublicYearUseCase(
	shareRepo adapter.ShareRepository,
	habitRepo adapter.HabitRepository,
	entryRepo adapter.EntryRepository,
	clock adapter.Clock,
) *GetPublicYearUseCase {
	return &GetPublicYearUseCase{
		shareRepo: shareRepo,
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute resolves the token to a user and returns that user's habit list,
// entry map and year summary.
func (uc *GetPublicYearUseCase) Execute(ctx context.Context, input GetPublicYearInput) (*GetPublicYearOutput, error) {
	profile, err := uc.shareRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerror.ErrShareNotFound) {
			return nil, domainerror.NewShareError(
				domainerror.ErrCodeShareNotFound,
				"share link not found",
				domainerror.ErrShareNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up share token: %w", err)
	}
	if !profile.IsEnabled {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeShareDisabled,
			"sharing is disabled for this profile",
			domainerror.ErrShareDisabled,
		)
	}

	habits, err := uc.habitRepo.FindByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	records, err := uc.entryRepo.FindByUserAndYear(ctx, profile.UserID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	store := make(entity.EntryStore, len(records))
	for _, r := range records {
		day, ok := store[r.DateISO]
		if !ok {
			day = make(map[uuid.UUID]entity.Entry)
			store[r.DateISO] = day
		}
		day[r.HabitID] = r.Entry
	}

	return &GetPublicYearOutput{
		Habits:  habits,
		Entries: store,
		Summary: stats.YearSummary(habits, store, input.Year, uc.clock.Now()),
	}, nil
}
