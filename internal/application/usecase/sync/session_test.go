package sync

import (
	"context"
	"errors"
	stdsync "sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// fixedClock returns a constant instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeHabitRepo records remote habit writes and can fail on demand.
type fakeHabitRepo struct {
	mu       stdsync.Mutex
	err      error
	list     []*entity.Habit
	created  []*entity.Habit
	updated  []*entity.Habit
	deleted  []uuid.UUID
	decimals map[uuid.UUID]int
	batches  [][]adapter.SortIndexUpdate
	ops      chan string
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{
		decimals: make(map[uuid.UUID]int),
		ops:      make(chan string, 32),
	}
}

func (f *fakeHabitRepo) record(op string) {
	select {
	case f.ops <- op:
	default:
	}
}

func (f *fakeHabitRepo) Create(ctx context.Context, h *entity.Habit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("habit.create")
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, h)
	return nil
}

func (f *fakeHabitRepo) Update(ctx context.Context, h *entity.Habit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("habit.update")
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, h)
	return nil
}

func (f *fakeHabitRepo) UpdateDecimals(ctx context.Context, userID, habitID uuid.UUID, decimals int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("habit.decimals")
	if f.err != nil {
		return f.err
	}
	f.decimals[habitID] = decimals
	return nil
}

func (f *fakeHabitRepo) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("habit.delete")
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, habitID)
	return nil
}

func (f *fakeHabitRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeHabitRepo) UpdateSortIndexes(ctx context.Context, userID uuid.UUID, updates []adapter.SortIndexUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("habit.sort")
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, updates)
	return nil
}

// fakeEntryRepo records remote entry writes and can fail on demand. When
// fetchStarted/release are set, FindByUserAndYear signals entry and then
// blocks until released, letting tests interleave with an in-flight reload.
type fakeEntryRepo struct {
	mu           stdsync.Mutex
	err          error
	records      []adapter.EntryRecord
	upserted     []adapter.EntryRecord
	deleted      []string
	ops          chan string
	fetchStarted chan struct{}
	release      chan struct{}
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{ops: make(chan string, 32)}
}

func (f *fakeEntryRepo) record(op string) {
	select {
	case f.ops <- op:
	default:
	}
}

func (f *fakeEntryRepo) Upsert(ctx context.Context, record adapter.EntryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("entry.upsert")
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, record)
	return nil
}

func (f *fakeEntryRepo) Delete(ctx context.Context, userID uuid.UUID, dateISO string, habitID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("entry.delete")
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, dateISO)
	return nil
}

func (f *fakeEntryRepo) DeleteByHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer f.record("entry.deleteByHabit")
	if f.err != nil {
		return f.err
	}
	return nil
}

func (f *fakeEntryRepo) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]adapter.EntryRecord, error) {
	if f.fetchStarted != nil {
		f.fetchStarted <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeCache stores the last saved tree in memory.
type fakeCache struct {
	mu      stdsync.Mutex
	loadErr error
	tree    *entity.StateTree
	saveErr error
	saves   int
}

func (f *fakeCache) Load(ctx context.Context, userID uuid.UUID) (*entity.StateTree, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.tree, nil
}

func (f *fakeCache) Save(ctx context.Context, userID uuid.UUID, tree *entity.StateTree) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.tree = tree
	f.saves++
	return nil
}

type sessionFixture struct {
	session   *Session
	habitRepo *fakeHabitRepo
	entryRepo *fakeEntryRepo
	cache     *fakeCache
	clock     fixedClock
	userID    uuid.UUID
}

// newSessionFixture builds a session with the default seeded tree, wired to
// fakes and without the background reconciliation the manager would start.
func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	clock := fixedClock{now: time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)}
	habitRepo := newFakeHabitRepo()
	entryRepo := newFakeEntryRepo()
	cache := &fakeCache{}
	userID := uuid.New()

	s := &Session{
		userID:    userID,
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		cache:     cache,
		clock:     clock,
		status:    NewStatusTracker(clock),
		tree:      entity.DefaultStateTree(userID, 2026),
	}

	return &sessionFixture{
		session:   s,
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		cache:     cache,
		clock:     clock,
		userID:    userID,
	}
}

func waitOp(t *testing.T, ops chan string, want string) {
	t.Helper()
	select {
	case got := <-ops:
		if got != want {
			t.Fatalf("remote op = %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for remote op %q", want)
	}
}

func waitState(t *testing.T, s *Session, want valueobject.SyncState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Status().State == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status = %q, want %q", s.Status().State, want)
}

func TestSession_AddHabit(t *testing.T) {
	t.Run("appends at the end of the display order", func(t *testing.T) {
		f := newSessionFixture(t)
		h, err := f.session.AddHabit(context.Background(), AddHabitInput{
			Name: "Run",
			Kind: entity.HabitKindNumber,
			Unit: "km",
		})
		if err != nil {
			t.Fatalf("AddHabit() error = %v", err)
		}
		if h.SortIndex != 2 {
			t.Errorf("SortIndex = %d, want 2", h.SortIndex)
		}
		tree := f.session.Snapshot()
		if len(tree.Habits) != 3 || tree.Habits[2].Name != "Run" {
			t.Errorf("habit not appended: %d habits", len(tree.Habits))
		}
		waitOp(t, f.habitRepo.ops, "habit.create")
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.session.AddHabit(context.Background(), AddHabitInput{
			Name: "   ",
			Kind: entity.HabitKindNumber,
		})
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNameRequired {
			t.Fatalf("AddHabit() error = %v, want name-required", err)
		}
		if len(f.session.Snapshot().Habits) != 2 {
			t.Error("failed validation must not change the tree")
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.session.AddHabit(context.Background(), AddHabitInput{
			Name: "X",
			Kind: "slider",
		})
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeInvalidHabitKind {
			t.Fatalf("AddHabit() error = %v, want invalid-kind", err)
		}
	})

	t.Run("remote failure keeps the optimistic habit", func(t *testing.T) {
		f := newSessionFixture(t)
		f.habitRepo.err = errors.New("connection refused")

		_, err := f.session.AddHabit(context.Background(), AddHabitInput{
			Name: "Run",
			Kind: entity.HabitKindNumber,
		})
		if err != nil {
			t.Fatalf("AddHabit() error = %v, want optimistic success", err)
		}

		waitState(t, f.session, valueobject.SyncStateFailed)
		if got := f.session.Status().Message; got != "Failed to add habit" {
			t.Errorf("status message = %q", got)
		}
		if len(f.session.Snapshot().Habits) != 3 {
			t.Error("optimistic habit must survive the remote failure")
		}
	})
}

func TestSession_LogValue(t *testing.T) {
	t.Run("number habit stores the parsed amount", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "42",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Entry.Amount != 42 {
			t.Errorf("Amount = %v, want 42", out.Entry.Amount)
		}
		e, ok := f.session.Snapshot().Entries.Get("2026-08-29", pushups.ID)
		if !ok || e.Amount != 42 {
			t.Errorf("stored entry = %+v, %v", e, ok)
		}
		waitOp(t, f.entryRepo.ops, "entry.upsert")
	})

	t.Run("decimal precision upgrades and never lowers", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "12.5",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Habit.Decimals != 1 {
			t.Errorf("Decimals = %d, want 1 after logging 12.5", out.Habit.Decimals)
		}
		waitOp(t, f.entryRepo.ops, "entry.upsert")
		waitOp(t, f.habitRepo.ops, "habit.decimals")

		out, err = f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-30",
			HabitID: pushups.ID,
			Value:   "12",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Habit.Decimals != 1 {
			t.Errorf("Decimals = %d, want 1 to stay after logging 12", out.Habit.Decimals)
		}
	})

	t.Run("trailing zeros in the literal count as typed precision", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "12.50",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Habit.Decimals != 2 {
			t.Errorf("Decimals = %d, want 2 for literal 12.50", out.Habit.Decimals)
		}
	})

	t.Run("precision caps at six", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "0.123456789",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Habit.Decimals != entity.MaxDecimals {
			t.Errorf("Decimals = %d, want %d", out.Habit.Decimals, entity.MaxDecimals)
		}
	})

	t.Run("checkbox habit stores the checked flag", func(t *testing.T) {
		f := newSessionFixture(t)
		read := f.session.Snapshot().Habits[1]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: read.ID,
			Checked: true,
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if !out.Entry.Checked {
			t.Error("Checked = false, want true")
		}
		if out.Habit.Decimals != 0 {
			t.Error("checkbox logging must not touch decimals")
		}
	})

	t.Run("negative values are accepted as typed", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		out, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "-3",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
		if out.Entry.Amount != -3 {
			t.Errorf("Amount = %v, want -3", out.Entry.Amount)
		}
	})

	t.Run("non-numeric literal is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		_, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "a lot",
		})
		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeInvalidEntryValue {
			t.Fatalf("LogValue() error = %v, want invalid-value", err)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		_, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "29/08/2026",
			HabitID: pushups.ID,
			Value:   "1",
		})
		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeInvalidDate {
			t.Fatalf("LogValue() error = %v, want invalid-date", err)
		}
	})

	t.Run("remote failure keeps the optimistic entry", func(t *testing.T) {
		f := newSessionFixture(t)
		f.entryRepo.err = errors.New("timeout")
		pushups := f.session.Snapshot().Habits[0]

		_, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29",
			HabitID: pushups.ID,
			Value:   "10",
		})
		if err != nil {
			t.Fatalf("LogValue() error = %v, want optimistic success", err)
		}
		waitState(t, f.session, valueobject.SyncStateFailed)
		if _, ok := f.session.Snapshot().Entries.Get("2026-08-29", pushups.ID); !ok {
			t.Error("optimistic entry must survive the remote failure")
		}
	})
}

func TestSession_RemoveLog(t *testing.T) {
	t.Run("removes the entry and empty day", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]
		if _, err := f.session.LogValue(context.Background(), LogValueInput{
			DateISO: "2026-08-29", HabitID: pushups.ID, Value: "5",
		}); err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}

		if err := f.session.RemoveLog(context.Background(), "2026-08-29", pushups.ID); err != nil {
			t.Fatalf("RemoveLog() error = %v", err)
		}
		if _, ok := f.session.Snapshot().Entries["2026-08-29"]; ok {
			t.Error("emptied day must drop its date key")
		}
	})

	t.Run("absent entry is an error", func(t *testing.T) {
		f := newSessionFixture(t)
		pushups := f.session.Snapshot().Habits[0]

		err := f.session.RemoveLog(context.Background(), "2026-08-29", pushups.ID)
		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeEntryNotFound {
			t.Fatalf("RemoveLog() error = %v, want not-found", err)
		}
	})
}

func TestSession_DeleteHabit(t *testing.T) {
	f := newSessionFixture(t)
	pushups := f.session.Snapshot().Habits[0]
	read := f.session.Snapshot().Habits[1]

	for _, in := range []LogValueInput{
		{DateISO: "2026-08-28", HabitID: pushups.ID, Value: "5"},
		{DateISO: "2026-08-29", HabitID: pushups.ID, Value: "6"},
	} {
		if _, err := f.session.LogValue(context.Background(), in); err != nil {
			t.Fatalf("LogValue() error = %v", err)
		}
	}
	if _, err := f.session.LogValue(context.Background(), LogValueInput{
		DateISO: "2026-08-29", HabitID: read.ID, Checked: true,
	}); err != nil {
		t.Fatalf("LogValue() error = %v", err)
	}

	if err := f.session.DeleteHabit(context.Background(), pushups.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}

	tree := f.session.Snapshot()
	if len(tree.Habits) != 1 || tree.Habits[0].ID != read.ID {
		t.Errorf("habit list = %d habits", len(tree.Habits))
	}
	if _, ok := tree.Entries["2026-08-28"]; ok {
		t.Error("day emptied by the cascade must drop its key")
	}
	if _, ok := tree.Entries.Get("2026-08-29", read.ID); !ok {
		t.Error("other habits' entries must survive the cascade")
	}

	// Entry cascade runs before the habit row delete.
	waitOp(t, f.entryRepo.ops, "entry.deleteByHabit")
	waitOp(t, f.habitRepo.ops, "habit.delete")
}

func TestSession_SetOrder(t *testing.T) {
	t.Run("applies the listed order and commits", func(t *testing.T) {
		f := newSessionFixture(t)
		habits := f.session.Snapshot().Habits
		if err := f.session.SetOrder(context.Background(), []uuid.UUID{habits[1].ID, habits[0].ID}); err != nil {
			t.Fatalf("SetOrder() error = %v", err)
		}

		got := f.session.Snapshot().Habits
		if got[0].ID != habits[1].ID || got[1].ID != habits[0].ID {
			t.Error("order not applied")
		}
		if got[0].SortIndex != 0 || got[1].SortIndex != 1 {
			t.Errorf("sort indexes = %d, %d", got[0].SortIndex, got[1].SortIndex)
		}
		waitOp(t, f.habitRepo.ops, "habit.sort")
	})

	t.Run("unknown id fails the whole batch", func(t *testing.T) {
		f := newSessionFixture(t)
		before := f.session.Snapshot().Habits

		err := f.session.SetOrder(context.Background(), []uuid.UUID{uuid.New()})
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNotFound {
			t.Fatalf("SetOrder() error = %v, want not-found", err)
		}
		after := f.session.Snapshot().Habits
		if after[0].ID != before[0].ID || after[1].ID != before[1].ID {
			t.Error("failed reorder must not change the list")
		}
	})

	t.Run("empty list is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		err := f.session.SetOrder(context.Background(), nil)
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeEmptyReorder {
			t.Fatalf("SetOrder() error = %v, want empty-reorder", err)
		}
	})
}

func TestSession_Reload(t *testing.T) {
	t.Run("replaces the tree with the remote scope", func(t *testing.T) {
		f := newSessionFixture(t)
		remoteHabit := entity.NewHabit(f.userID, "Remote", entity.HabitKindNumber, "", valueobject.Goals{}, 0)
		f.habitRepo.list = []*entity.Habit{remoteHabit}
		f.entryRepo.records = []adapter.EntryRecord{
			{UserID: f.userID, DateISO: "2026-02-01", HabitID: remoteHabit.ID, Entry: entity.Entry{Amount: 3}},
		}

		if err := f.session.Reload(context.Background()); err != nil {
			t.Fatalf("Reload() error = %v", err)
		}

		tree := f.session.Snapshot()
		if len(tree.Habits) != 1 || tree.Habits[0].Name != "Remote" {
			t.Errorf("habits = %d", len(tree.Habits))
		}
		if e, ok := tree.Entries.Get("2026-02-01", remoteHabit.ID); !ok || e.Amount != 3 {
			t.Errorf("entry = %+v, %v", e, ok)
		}
		if f.session.Status().State != valueobject.SyncStateSynced {
			t.Errorf("status = %q, want synced", f.session.Status().State)
		}
	})

	t.Run("fetch failure keeps the stale tree", func(t *testing.T) {
		f := newSessionFixture(t)
		f.habitRepo.err = errors.New("connection refused")

		err := f.session.Reload(context.Background())
		var syncErr *domainerror.SyncError
		if !errors.As(err, &syncErr) || syncErr.Code != domainerror.ErrCodeReloadFailed {
			t.Fatalf("Reload() error = %v, want reload-failed", err)
		}
		if len(f.session.Snapshot().Habits) != 2 {
			t.Error("stale tree must be kept on fetch failure")
		}
		if f.session.Status().State != valueobject.SyncStateFailed {
			t.Errorf("status = %q, want failed", f.session.Status().State)
		}
	})

	t.Run("superseded fetch is discarded", func(t *testing.T) {
		f := newSessionFixture(t)
		f.habitRepo.list = []*entity.Habit{}
		f.entryRepo.fetchStarted = make(chan struct{})
		f.entryRepo.release = make(chan struct{})

		done := make(chan error, 1)
		go func() {
			done <- f.session.Reload(context.Background())
		}()

		// A newer scope change advances the generation while the first fetch
		// is still in flight; its result must be dropped on arrival.
		<-f.entryRepo.fetchStarted
		f.session.mu.Lock()
		f.session.reloadGen++
		f.session.mu.Unlock()
		close(f.entryRepo.release)

		if err := <-done; err != nil {
			t.Fatalf("Reload() error = %v", err)
		}
		if len(f.session.Snapshot().Habits) != 2 {
			t.Error("superseded reload must not replace the tree")
		}
	})
}

func TestSession_ChangeYear(t *testing.T) {
	f := newSessionFixture(t)
	f.habitRepo.list = f.session.Snapshot().Habits

	tree, err := f.session.ChangeYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("ChangeYear() error = %v", err)
	}
	if tree.UI.SelectedYear != 2025 {
		t.Errorf("SelectedYear = %d, want 2025 immediately", tree.UI.SelectedYear)
	}
}

func TestManager_SeedTree(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)}
	userID := uuid.New()

	t.Run("cache miss seeds the default state", func(t *testing.T) {
		m := NewManager(newFakeHabitRepo(), newFakeEntryRepo(), &fakeCache{loadErr: domainerror.ErrCacheMiss}, clock, NewStatusTracker(clock))
		tree := m.seedTree(context.Background(), userID)
		if len(tree.Habits) != 2 {
			t.Errorf("habits = %d, want the 2 seeded defaults", len(tree.Habits))
		}
		if tree.UI.SelectedYear != 2026 {
			t.Errorf("SelectedYear = %d, want 2026", tree.UI.SelectedYear)
		}
	})

	t.Run("unreadable cache also seeds the default state", func(t *testing.T) {
		m := NewManager(newFakeHabitRepo(), newFakeEntryRepo(), &fakeCache{loadErr: errors.New("io error")}, clock, NewStatusTracker(clock))
		tree := m.seedTree(context.Background(), userID)
		if len(tree.Habits) != 2 {
			t.Errorf("habits = %d, want the 2 seeded defaults", len(tree.Habits))
		}
	})

	t.Run("cached snapshot is normalized", func(t *testing.T) {
		cached := &entity.StateTree{UI: entity.UIState{SelectedYear: 0}}
		m := NewManager(newFakeHabitRepo(), newFakeEntryRepo(), &fakeCache{tree: cached}, clock, NewStatusTracker(clock))
		tree := m.seedTree(context.Background(), userID)
		if tree.Habits == nil || tree.Entries == nil {
			t.Error("collections must be non-nil after seeding from cache")
		}
		if tree.UI.SelectedYear != 2026 {
			t.Errorf("SelectedYear = %d, want repaired to 2026", tree.UI.SelectedYear)
		}
	})
}

func TestStatusTracker(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)}
	tracker := NewStatusTracker(clock)
	userID := uuid.New()

	if got := tracker.Get(userID); got.State != valueobject.SyncStateLoading {
		t.Errorf("unknown user state = %q, want loading", got.State)
	}

	tracker.SetFailed(userID, "Failed to save entry")
	got := tracker.Get(userID)
	if !got.Failed() || got.Message != "Failed to save entry" {
		t.Errorf("status = %+v", got)
	}

	tracker.SetSynced(userID)
	got = tracker.Get(userID)
	if got.State != valueobject.SyncStateSynced || got.Message != "" {
		t.Errorf("status = %+v", got)
	}
}
