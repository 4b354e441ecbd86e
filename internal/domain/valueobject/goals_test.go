package valueobject

import (
	"math"
	"testing"
)

func TestGoals_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Goals
		want Goals
	}{
		{
			name: "positive magnitudes pass through",
			in:   Goals{Daily: 2, Weekly: 7, Monthly: 30, Yearly: 365},
			want: Goals{Daily: 2, Weekly: 7, Monthly: 30, Yearly: 365},
		},
		{
			name: "negative magnitudes become zero",
			in:   Goals{Daily: -5, Weekly: -1},
			want: Goals{},
		},
		{
			name: "NaN becomes zero",
			in:   Goals{Daily: math.NaN()},
			want: Goals{},
		},
		{
			name: "Inf becomes zero",
			in:   Goals{Yearly: math.Inf(1), Monthly: math.Inf(-1)},
			want: Goals{},
		},
		{
			name: "empty stays empty",
			in:   Goals{},
			want: Goals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
			if got.Daily < 0 || got.Weekly < 0 || got.Monthly < 0 || got.Yearly < 0 {
				t.Error("normalized goals must be non-negative")
			}
		})
	}
}

func TestGoals_YearlyTarget(t *testing.T) {
	tests := []struct {
		name string
		in   Goals
		want float64
	}{
		{name: "explicit yearly wins", in: Goals{Yearly: 100, Daily: 2}, want: 100},
		{name: "daily times 365", in: Goals{Daily: 2}, want: 730},
		{name: "weekly times 52", in: Goals{Weekly: 7}, want: 364},
		{name: "monthly times 12", in: Goals{Monthly: 30}, want: 360},
		{name: "no goals means zero", in: Goals{}, want: 0},
		{name: "daily beats weekly and monthly", in: Goals{Daily: 1, Weekly: 100, Monthly: 100}, want: 365},
		{name: "negative yearly falls through to daily", in: Goals{Yearly: -1, Daily: 2}, want: 730},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.YearlyTarget(); got != tt.want {
				t.Errorf("YearlyTarget() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoals_IsZero(t *testing.T) {
	if !(Goals{}).IsZero() {
		t.Error("empty goals should be zero")
	}
	if !(Goals{Daily: -3}).IsZero() {
		t.Error("negative-only goals should be zero after normalization")
	}
	if (Goals{Weekly: 1}).IsZero() {
		t.Error("goals with a weekly magnitude should not be zero")
	}
}

func TestGoalsFromLegacy(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		period    GoalPeriod
		want      Goals
	}{
		{name: "daily", magnitude: 50, period: GoalPeriodDaily, want: Goals{Daily: 50}},
		{name: "weekly", magnitude: 3, period: GoalPeriodWeekly, want: Goals{Weekly: 3}},
		{name: "monthly", magnitude: 10, period: GoalPeriodMonthly, want: Goals{Monthly: 10}},
		{name: "yearly", magnitude: 1000, period: GoalPeriodYearly, want: Goals{Yearly: 1000}},
		{name: "unknown period falls back to daily", magnitude: 5, period: "fortnightly", want: Goals{Daily: 5}},
		{name: "non-positive magnitude degrades to empty", magnitude: -2, period: GoalPeriodDaily, want: Goals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalsFromLegacy(tt.magnitude, tt.period); got != tt.want {
				t.Errorf("GoalsFromLegacy(%v, %q) = %+v, want %+v", tt.magnitude, tt.period, got, tt.want)
			}
		})
	}
}

func TestGoals_Scan(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var g Goals
		if err := g.Scan([]byte(`{"daily":2,"weekly":0,"monthly":0,"yearly":100}`)); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if g.Daily != 2 || g.Yearly != 100 {
			t.Errorf("Scan() = %+v", g)
		}
	})

	t.Run("malformed document degrades to zero value", func(t *testing.T) {
		g := Goals{Daily: 9}
		if err := g.Scan([]byte(`not-json`)); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if !g.IsZero() {
			t.Errorf("Scan() on malformed input = %+v, want zero value", g)
		}
	})

	t.Run("nil degrades to zero value", func(t *testing.T) {
		g := Goals{Daily: 9}
		if err := g.Scan(nil); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if !g.IsZero() {
			t.Errorf("Scan(nil) = %+v, want zero value", g)
		}
	})

	t.Run("negative magnitudes in the document are sanitized", func(t *testing.T) {
		var g Goals
		if err := g.Scan(`{"daily":-4,"yearly":10}`); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if g.Daily != 0 || g.Yearly != 10 {
			t.Errorf("Scan() = %+v, want sanitized goals", g)
		}
	})
}
