package model

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used everywhere in the store.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Date is a calendar date with no time-of-day component.
// The zero value means "unset".
type Date struct {
	t time.Time
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string. Empty and null both mean unset.
func (d *Date) UnmarshalJSON(bs []byte) error {
	s := string(bs)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
