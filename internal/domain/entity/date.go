package entity

import (
	"fmt"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// Date wraps time.Time to represent a calendar date as YYYY-MM-DD with no
// time component, matching the backend wire format
type Date struct {
	time.Time
}

// NewDate creates a Date with the time truncated to midnight UTC
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local date
func Today() Date {
	return NewDate(time.Now())
}

// AddDate returns a new Date shifted by years, months, and days
func (d Date) AddDate(years, months, days int) Date {
	return NewDate(d.Time.AddDate(years, months, days))
}

// UnmarshalJSON accepts YYYY-MM-DD, falling back to a full RFC3339 timestamp
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		t, errRFC3339 := time.Parse(time.RFC3339, s)
		if errRFC3339 != nil {
			return fmt.Errorf("failed to parse date as YYYY-MM-DD: %v", errRFC3339)
		}
		*d = NewDate(t.UTC())
		return nil
	}
	*d = Date{Time: t}
	return nil
}

// MarshalJSON emits the date as YYYY-MM-DD, or null when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(isoDateLayout))), nil
}

func (d Date) String() string {
	return d.Time.Format(isoDateLayout)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
