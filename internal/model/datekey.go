package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidDateKey = errors.New("model: invalid date key")

var dateKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// DateKey formats a calendar day as YYYY-MM-DD. month is zero-based, as
// everywhere else in this package.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// DateKeyOf is the key of the local calendar day containing t.
func DateKeyOf(t time.Time) string {
	return DateKey(t.Year(), int(t.Month())-1, t.Day())
}

// ParseDateKey is the inverse of DateKey. It rejects keys that do not name
// a real calendar day, such as 2023-02-29.
func ParseDateKey(key string) (year, month, day int, err error) {
	m := dateKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])
	month--
	if month < 0 || month > 11 || day < 1 || day > DaysInMonth(year, month) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return year, month, day, nil
}
