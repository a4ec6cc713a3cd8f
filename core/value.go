package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidValue    = errors.New("invalid value")
)

type Field int

const (
	FieldHour Field = iota
	FieldMinute
)

func (f Field) String() string {
	if f == FieldMinute {
		return "minute"
	}
	return "hour"
}

// Other returns the field that is not f.
func (f Field) Other() Field {
	if f == FieldMinute {
		return FieldHour
	}
	return FieldMinute
}

type Period string

const (
	PeriodAM Period = "am"
	PeriodPM Period = "pm"
)

func (p Period) Toggle() Period {
	if p == PeriodPM {
		return PeriodAM
	}
	return PeriodPM
}

// ParsePeriod accepts "am"/"pm" in any case; empty means am.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "am":
		return PeriodAM, nil
	case "pm":
		return PeriodPM, nil
	default:
		return "", fmt.Errorf("period %q: %w", s, ErrInvalidValue)
	}
}

// Value is the time the picker holds: a 12-hour clock reading.
type Value struct {
	Hour   int
	Minute int
	Period Period
}

func (v Value) Validate() error {
	if v.Hour < 1 || v.Hour > 12 {
		return fmt.Errorf("hour %d: %w", v.Hour, ErrInvalidValue)
	}
	if v.Minute < 0 || v.Minute > 59 {
		return fmt.Errorf("minute %d: %w", v.Minute, ErrInvalidValue)
	}
	if v.Period != PeriodAM && v.Period != PeriodPM {
		return fmt.Errorf("period %q: %w", v.Period, ErrInvalidValue)
	}
	return nil
}

// Clock24 converts to a 24-hour hour and minute. 12am is 0, 12pm is 12.
func (v Value) Clock24() (hour, minute int) {
	h := v.Hour % 12
	if v.Period == PeriodPM {
		h += 12
	}
	return h, v.Minute
}

func (v Value) String() string {
	return fmt.Sprintf("%02d:%02d %s", v.Hour, v.Minute, v.Period)
}

func (v Value) field(f Field) int {
	if f == FieldMinute {
		return v.Minute
	}
	return v.Hour
}

func (v *Value) set(f Field, n int) {
	if f == FieldMinute {
		v.Minute = n
		return
	}
	v.Hour = n
}
