package model

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 1, 29},
		{2023, 1, 28},
		{1900, 1, 28},
		{2000, 1, 29},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	// 2024-09-01 is a Sunday, 2024-04-01 a Monday, 2024-03-01 a Friday.
	if got := FirstWeekdayOffset(2024, 8); got != 6 {
		t.Fatalf("sunday offset = %d, want 6", got)
	}
	if got := FirstWeekdayOffset(2024, 3); got != 0 {
		t.Fatalf("monday offset = %d, want 0", got)
	}
	if got := FirstWeekdayOffset(2024, 2); got != 4 {
		t.Fatalf("friday offset = %d, want 4", got)
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	jan := Month{Year: 2024, Index: 0}
	if got := jan.Prev(); got != (Month{Year: 2023, Index: 11}) {
		t.Fatalf("Prev = %+v", got)
	}
	dec := Month{Year: 2024, Index: 11}
	if got := dec.Next(); got != (Month{Year: 2025, Index: 0}) {
		t.Fatalf("Next = %+v", got)
	}
	if got := dec.Next().Prev(); got != dec {
		t.Fatalf("Next then Prev = %+v", got)
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("parse month: %v", err)
	}
	if m != (Month{Year: 2024, Index: 2}) || m.String() != "2024-03" || m.Key(5) != "2024-03-05" {
		t.Fatalf("unexpected month: %+v", m)
	}
	if _, err := ParseMonth("March"); err == nil {
		t.Fatal("expected error")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)
	if !IsToday(now, 2024, 2, 5) {
		t.Fatal("expected today")
	}
	if IsToday(now, 2024, 2, 6) || IsToday(now, 2023, 2, 5) || IsToday(now, 2024, 3, 5) {
		t.Fatal("unexpected today match")
	}
}
