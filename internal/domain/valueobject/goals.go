// Package valueobject contains domain value objects for the Habit Tracker system.
package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
)

// GoalPeriod represents the period a goal magnitude applies to.
type GoalPeriod string

const (
	GoalPeriodDaily   GoalPeriod = "daily"
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// IsValidGoalPeriod reports whether period is one of the four known periods.
func IsValidGoalPeriod(period GoalPeriod) bool {
	switch period {
	case GoalPeriodDaily, GoalPeriodWeekly, GoalPeriodMonthly, GoalPeriodYearly:
		return true
	}
	return false
}

// Goals holds the per-period goal magnitudes for a habit. A zero magnitude
// means "no goal for that period". Persisted records may carry this in
// several historical shapes; Normalized reconciles them all into this one.
type Goals struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// sanitizeMagnitude coerces a raw magnitude to a non-negative finite number.
// Malformed input degrades to zero rather than raising an error.
func sanitizeMagnitude(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// Normalized returns a copy with every period coerced to a non-negative
// finite number. Non-positive, NaN and Inf magnitudes become 0.
func (g Goals) Normalized() Goals {
	return Goals{
		Daily:   sanitizeMagnitude(g.Daily),
		Weekly:  sanitizeMagnitude(g.Weekly),
		Monthly: sanitizeMagnitude(g.Monthly),
		Yearly:  sanitizeMagnitude(g.Yearly),
	}
}

// IsZero reports whether no period has a goal set.
func (g Goals) IsZero() bool {
	n := g.Normalized()
	return n.Daily == 0 && n.Weekly == 0 && n.Monthly == 0 && n.Yearly == 0
}

// YearlyTarget derives the single yearly pacing target. Precedence: an
// explicit yearly goal wins; otherwise legacy single-period configurations
// are approximated (365-day year, 52-week year, 12 months) so they keep
// working without migration. The result only needs to be directionally
// correct for a trend chart, not calendar-exact.
func (g Goals) YearlyTarget() float64 {
	n := g.Normalized()

	if n.Yearly > 0 {
		return n.Yearly
	}
	if n.Daily > 0 {
		return n.Daily * 365
	}
	if n.Weekly > 0 {
		return n.Weekly * 52
	}
	if n.Monthly > 0 {
		return n.Monthly * 12
	}
	return 0
}

// WithPeriod returns a copy with the magnitude for one period replaced.
func (g Goals) WithPeriod(period GoalPeriod, magnitude float64) Goals {
	out := g
	switch period {
	case GoalPeriodDaily:
		out.Daily = magnitude
	case GoalPeriodWeekly:
		out.Weekly = magnitude
	case GoalPeriodMonthly:
		out.Monthly = magnitude
	case GoalPeriodYearly:
		out.Yearly = magnitude
	}
	return out
}

// GoalsFromLegacy synthesizes a Goals value from the oldest persisted shape:
// a bare magnitude plus a single period name. An unknown period falls back
// to daily, matching how those records were written.
func GoalsFromLegacy(magnitude float64, period GoalPeriod) Goals {
	if !IsValidGoalPeriod(period) {
		period = GoalPeriodDaily
	}
	return Goals{}.WithPeriod(period, sanitizeMagnitude(magnitude))
}

// Value implements driver.Valuer so Goals persists as a JSON document.
func (g Goals) Value() (driver.Value, error) {
	return json.Marshal(g.Normalized())
}

// Scan implements sql.Scanner. A NULL or malformed document degrades to the
// zero value; it never fails the enclosing row read.
func (g *Goals) Scan(value interface{}) error {
	if value == nil {
		*g = Goals{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for goals column")
	}

	var decoded Goals
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*g = Goals{}
		return nil
	}
	*g = decoded.Normalized()
	return nil
}
