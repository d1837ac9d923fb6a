package timeofday

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock value (seconds since midnight) with no calendar
// date or timezone attached. Office hours and punch-clock readings are
// wall-clock values, so arithmetic on them must not involve time.Time's
// location handling.
type TimeOfDay int

const (
	secondsPerDay = 24 * 60 * 60

	// Layout is the canonical textual form, matching punch-clock exports
	// and PostgreSQL TIME columns.
	Layout = "15:04:05"
)

// Parse parses "HH:MM:SS" or "HH:MM" into a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return FromTime(t), nil
}

// MustParse is Parse for constants in tests and fixtures; it panics on error.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromTime extracts the wall-clock portion of t, discarding date and zone.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return (int(t) % 3600) / 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Sub returns the signed duration t − u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(int(t)-int(u)) * time.Second
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }
func (t TimeOfDay) After(u TimeOfDay) bool  { return t > u }

func Min(a, b TimeOfDay) TimeOfDay {
	if a < b {
		return a
	}
	return b
}

func Max(a, b TimeOfDay) TimeOfDay {
	if a > b {
		return a
	}
	return b
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < secondsPerDay
}

// Scan implements sql.Scanner so TIME columns scan directly into TimeOfDay.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = FromTime(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// Value implements driver.Valuer; TIME columns accept the textual form.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.Scan(s)
}

// Window is the office interval between a department's open and close times.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Duration returns the length of the office window.
func (w Window) Duration() time.Duration {
	return w.Close.Sub(w.Open)
}

// Overlap returns how much of [entry, exit] falls inside the window,
// clamped at zero so an interval entirely outside office hours contributes
// nothing rather than a negative amount.
func (w Window) Overlap(entry, exit TimeOfDay) time.Duration {
	overlap := Min(exit, w.Close).Sub(Max(entry, w.Open))
	if overlap < 0 {
		return 0
	}
	return overlap
}
