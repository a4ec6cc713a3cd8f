package core

import (
	"errors"
	"testing"
)

func TestClock24(t *testing.T) {
	tests := []struct {
		in   Value
		hour int
	}{
		{Value{Hour: 12, Minute: 0, Period: PeriodAM}, 0},
		{Value{Hour: 1, Minute: 0, Period: PeriodAM}, 1},
		{Value{Hour: 12, Minute: 0, Period: PeriodPM}, 12},
		{Value{Hour: 3, Minute: 45, Period: PeriodPM}, 15},
	}
	for _, tc := range tests {
		h, m := tc.in.Clock24()
		if h != tc.hour || m != tc.in.Minute {
			t.Fatalf("%s -> %02d:%02d, want %02d:%02d", tc.in, h, m, tc.hour, tc.in.Minute)
		}
	}
}

func TestValueString(t *testing.T) {
	v := Value{Hour: 3, Minute: 5, Period: PeriodPM}
	if got := v.String(); got != "03:05 pm" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"": PeriodAM, "AM": PeriodAM, " pm ": PeriodPM} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Fatalf("ParsePeriod(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePeriod("noon"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("ParsePeriod(noon) error = %v", err)
	}
}

func TestFieldOther(t *testing.T) {
	if FieldHour.Other() != FieldMinute || FieldMinute.Other() != FieldHour {
		t.Fatalf("Other() is not an involution")
	}
}
