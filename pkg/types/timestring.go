package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in zero-padded "HH:MM" form.
// The format is order-preserving, so lexicographic comparison of two valid
// TimeStrings matches chronological comparison within one day.
type TimeString string

const timeLayout = "15:04"

var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// Accepts "HH:MM:SS" as well (seconds are dropped), since Postgres TIME
// columns scan in that form.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	// time.Parse tolerates unpadded hours ("9:30"), which would break the
	// lexicographic ordering guarantee. Require the exact five-character shape.
	if len(s) != len(timeLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

// MinutesToTimeString converts minutes-since-midnight to a TimeString.
// Values >= 1440 wrap onto the next day's wall clock.
func MinutesToTimeString(minutes int) TimeString {
	minutes = ((minutes % 1440) + 1440) % 1440
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the value as minutes since midnight.
// The value must be valid; call Validate first on untrusted input.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes returns the time m minutes later, wrapping past midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return MinutesToTimeString(t.Minutes() + m), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so TimeString binds to TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner for TIME columns ("15:04:05") and strings.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
