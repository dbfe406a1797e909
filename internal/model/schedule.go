package model

import (
	"time"

	"github.com/teambition/rrule-go"
)

// WorkoutRule is the fixed training schedule: Monday, Wednesday, Friday.
const WorkoutRule = "FREQ=WEEKLY;BYDAY=MO,WE,FR"

func workoutRuleFrom(start time.Time) *rrule.RRule {
	opt, err := rrule.StrToROption(WorkoutRule)
	if err != nil {
		panic("model: bad workout rule: " + err.Error())
	}
	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		panic("model: bad workout rule: " + err.Error())
	}
	return r
}

func IsWorkoutDay(year, month, day int) bool {
	d := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
	return len(workoutRuleFrom(d).Between(d, d, true)) > 0
}

// WorkoutDays expands the schedule over a whole month, keyed by day number.
func WorkoutDays(year, month int) map[int]bool {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month+1), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	out := make(map[int]bool)
	for _, occ := range workoutRuleFrom(first).Between(first, last, true) {
		out[occ.Day()] = true
	}
	return out
}
