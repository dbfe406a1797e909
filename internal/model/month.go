package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonth = errors.New("model: invalid month")

// Month identifies a displayed calendar page. Index is zero-based.
type Month struct {
	Year  int
	Index int
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Index: int(t.Month()) - 1}
}

// ParseMonth reads a YYYY-MM string.
func ParseMonth(raw string) (Month, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, raw)
	}
	return MonthOf(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Index+1)
}

func (m Month) Prev() Month {
	return m.add(-1)
}

func (m Month) Next() Month {
	return m.add(1)
}

func (m Month) add(delta int) Month {
	idx := m.Index + delta
	year := m.Year
	for idx < 0 {
		idx += 12
		year--
	}
	for idx > 11 {
		idx -= 12
		year++
	}
	return Month{Year: year, Index: idx}
}

func (m Month) Days() int {
	return DaysInMonth(m.Year, m.Index)
}

func (m Month) Key(day int) string {
	return DateKey(m.Year, m.Index, day)
}

// DaysInMonth uses day 0 of the following month, which time.Date
// normalizes to the last day of the requested one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the number of blank cells before day 1 in a
// Monday-first week: Monday is 0 and Sunday is 6.
func FirstWeekdayOffset(year, month int) int {
	raw := int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
	if raw == 0 {
		return 6
	}
	return raw - 1
}

func IsToday(now time.Time, year, month, day int) bool {
	y, m, d := now.Date()
	return y == year && int(m)-1 == month && d == day
}
