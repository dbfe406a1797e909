package model

import (
	"testing"
	"time"
)

func TestIsWorkoutDayMatchesWeekday(t *testing.T) {
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		d := start.AddDate(0, 0, i)
		wd := d.Weekday()
		want := wd == time.Monday || wd == time.Wednesday || wd == time.Friday
		got := IsWorkoutDay(d.Year(), int(d.Month())-1, d.Day())
		if got != want {
			t.Fatalf("IsWorkoutDay(%s, %s) = %v, want %v", d.Format("2006-01-02"), wd, got, want)
		}
	}
}

func TestWorkoutDaysMarch2024(t *testing.T) {
	days := WorkoutDays(2024, 2)
	want := []int{1, 4, 6, 8, 11, 13, 15, 18, 20, 22, 25, 27, 29}
	if len(days) != len(want) {
		t.Fatalf("got %d workout days, want %d: %v", len(days), len(want), days)
	}
	for _, d := range want {
		if !days[d] {
			t.Fatalf("expected day %d to be a workout day", d)
		}
	}
}
