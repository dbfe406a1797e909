package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownHabit = errors.New("model: unknown habit")

// Habit names one of the four daily goals. The string value is the field
// name used in the persisted mapping.
type Habit string

const (
	HabitAlcohol   Habit = "alcohol"
	HabitWater     Habit = "water"
	HabitSteps     Habit = "steps"
	HabitNutrition Habit = "nutrition"
)

// Habits lists the habits in display order A, B, C, D.
var Habits = [4]Habit{HabitAlcohol, HabitWater, HabitSteps, HabitNutrition}

func (h Habit) IsValid() bool {
	switch h {
	case HabitAlcohol, HabitWater, HabitSteps, HabitNutrition:
		return true
	default:
		return false
	}
}

// Letter returns the slot letter A-D.
func (h Habit) Letter() string {
	for i, known := range Habits {
		if known == h {
			return string(rune('A' + i))
		}
	}
	return "?"
}

// ParseHabit accepts a persisted name ("water") or a slot letter ("b").
func ParseHabit(raw string) (Habit, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'd' {
		return Habits[s[0]-'a'], nil
	}
	h := Habit(s)
	if !h.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHabit, raw)
	}
	return h, nil
}
