// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// HabitKind represents the value type a habit is logged with.
type HabitKind string

const (
	HabitKindNumber   HabitKind = "number"
	HabitKindCheckbox HabitKind = "checkbox"
)

// MaxDecimals is the cap for a number habit's display precision.
const MaxDecimals = 6

// IsValidHabitKind validates the habit kind.
func IsValidHabitKind(kind HabitKind) bool {
	return kind == HabitKindNumber || kind == HabitKindCheckbox
}

// Habit represents a trackable quantity or boolean the user logs at most
// once per day.
type Habit struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Name      string            `json:"name"`
	Kind      HabitKind         `json:"kind"`
	Unit      string            `json:"unit,omitempty"`
	Decimals  int               `json:"decimals"`
	Goals     valueobject.Goals `json:"goals"`
	SortIndex int               `json:"sort_index"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewHabit creates a new Habit entity with normalized goals.
func NewHabit(userID uuid.UUID, name string, kind HabitKind, unit string, goals valueobject.Goals, sortIndex int) *Habit {
	now := time.Now().UTC()

	if kind != HabitKindNumber {
		unit = ""
	}

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		Unit:      unit,
		Decimals:  0,
		Goals:     goals.Normalized(),
		SortIndex: sortIndex,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EffectiveDecimals returns the display precision, clamped to [0, MaxDecimals].
// Checkbox habits always render with zero decimals.
func (h *Habit) EffectiveDecimals() int {
	if h.Kind != HabitKindNumber {
		return 0
	}
	if h.Decimals < 0 {
		return 0
	}
	if h.Decimals > MaxDecimals {
		return MaxDecimals
	}
	return h.Decimals
}

// UnitLabel returns the unit for display, defaulting to "value" for number
// habits without one.
func (h *Habit) UnitLabel() string {
	if h.Kind != HabitKindNumber {
		return ""
	}
	if h.Unit == "" {
		return "value"
	}
	return h.Unit
}

// YearlyGoal derives the single yearly pacing target from the habit's goals.
func (h *Habit) YearlyGoal() float64 {
	return h.Goals.YearlyTarget()
}

// Clone returns a structural copy of the habit.
func (h *Habit) Clone() *Habit {
	cp := *h
	return &cp
}

// FormatValue renders a numeric value with the habit's precision, trimming
// meaningless trailing zeros when no precision has been established yet.
func (h *Habit) FormatValue(v float64) string {
	dec := h.EffectiveDecimals()
	if dec > 0 {
		return strconv.FormatFloat(v, 'f', dec, 64)
	}
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// DisplayEntry renders a logged entry for history views: "Done"/"Not done"
// for checkbox habits, a formatted number with unit for number habits.
func (h *Habit) DisplayEntry(e Entry) string {
	if h.Kind == HabitKindCheckbox {
		if e.Checked {
			return "Done"
		}
		return "Not done"
	}
	if h.Unit == "" {
		return h.FormatValue(e.Amount)
	}
	return fmt.Sprintf("%s %s", h.FormatValue(e.Amount), h.Unit)
}
