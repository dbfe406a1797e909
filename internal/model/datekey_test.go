package model

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestDateKeyFormat(t *testing.T) {
	if got := DateKey(2024, 2, 5); got != "2024-03-05" {
		t.Fatalf("DateKey = %q", got)
	}
	if got := DateKey(2023, 11, 31); got != "2023-12-31" {
		t.Fatalf("DateKey = %q", got)
	}
}

func TestDateKeyOf(t *testing.T) {
	at := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.Local)
	if got := DateKeyOf(at); got != "2024-12-31" {
		t.Fatalf("DateKeyOf = %q", got)
	}
}

func TestDateKeyUniqueAndSortable(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	seen := make(map[string]bool)
	prev := ""
	for year := 1999; year <= 2025; year++ {
		for month := 0; month < 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				key := DateKey(year, month, day)
				if !pattern.MatchString(key) {
					t.Fatalf("bad key format: %q", key)
				}
				if seen[key] {
					t.Fatalf("duplicate key: %q", key)
				}
				seen[key] = true
				if key <= prev {
					t.Fatalf("key %q does not sort after %q", key, prev)
				}
				prev = key
			}
		}
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	y, m, d, err := ParseDateKey(DateKey(2024, 1, 29))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if y != 2024 || m != 1 || d != 29 {
		t.Fatalf("unexpected parse result: %d %d %d", y, m, d)
	}
}

func TestParseDateKeyRejects(t *testing.T) {
	for _, in := range []string{"", "2024-3-5", "2024-13-01", "2023-02-29", "2024-00-10", "abcd-ef-gh", "2024-03-05T00:00"} {
		if _, _, _, err := ParseDateKey(in); !errors.Is(err, ErrInvalidDateKey) {
			t.Fatalf("ParseDateKey(%q) err = %v, want ErrInvalidDateKey", in, err)
		}
	}
}
