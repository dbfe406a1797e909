package model

// DayRecord is the tracked state of one calendar date. Absent JSON fields
// decode as false and false fields are omitted on encode, so the zero
// value is the same as having no record at all.
type DayRecord struct {
	Marked    bool `json:"marked,omitempty"`
	Alcohol   bool `json:"alcohol,omitempty"`
	Water     bool `json:"water,omitempty"`
	Steps     bool `json:"steps,omitempty"`
	Nutrition bool `json:"nutrition,omitempty"`
}

func (r DayRecord) IsZero() bool {
	return r == DayRecord{}
}

// Flag reports the value of one habit. Unknown habits read as false.
func (r DayRecord) Flag(h Habit) bool {
	switch h {
	case HabitAlcohol:
		return r.Alcohol
	case HabitWater:
		return r.Water
	case HabitSteps:
		return r.Steps
	case HabitNutrition:
		return r.Nutrition
	default:
		return false
	}
}

// WithFlag returns a copy of r with one habit set to v.
func (r DayRecord) WithFlag(h Habit, v bool) DayRecord {
	switch h {
	case HabitAlcohol:
		r.Alcohol = v
	case HabitWater:
		r.Water = v
	case HabitSteps:
		r.Steps = v
	case HabitNutrition:
		r.Nutrition = v
	}
	return r
}

// CompletionCount is the number of habits done that day, 0 to 4.
func CompletionCount(r DayRecord) int {
	count := 0
	for _, h := range Habits {
		if r.Flag(h) {
			count++
		}
	}
	return count
}
