package core

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/clockface/widgets"
)

// Options configures a Picker. Start from DefaultOptions; geometry fields
// are validated and a zero Initial value means 12:00 am.
type Options struct {
	Radius           float64 // outer radius, in columns
	NumberRadius     float64 // radius of the tick ring
	CellAspect       float64 // cell height / cell width
	MinuteStep       int     // 1 (60 ticks) or 5 (12 ticks)
	Initial          Value
	AutoAdvance      bool // move to minutes after an hour drag ends
	ThrottleInterval time.Duration
	SwitchDuration   time.Duration // per phase
	FrameInterval    time.Duration

	Colors     widgets.Colors
	Styles     func(widgets.Styles) widgets.Styles
	Components Components
	OnChange   func(Value)
	Keys       []KeyBinding

	Now    func() time.Time
	Logger *zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Radius:           14,
		NumberRadius:     11,
		CellAspect:       2,
		MinuteStep:       1,
		Initial:          Value{Hour: 12, Minute: 0, Period: PeriodAM},
		AutoAdvance:      true,
		ThrottleInterval: 30 * time.Millisecond,
		SwitchDuration:   200 * time.Millisecond,
		FrameInterval:    16 * time.Millisecond,
		Colors:           widgets.DefaultColors(),
	}
}

func (o Options) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{{"radius", o.Radius}, {"number radius", o.NumberRadius}, {"cell aspect", o.CellAspect}}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrInvalidGeometry)
		}
	}
	if o.Radius <= 0 {
		return fmt.Errorf("radius %.2f: %w", o.Radius, ErrInvalidGeometry)
	}
	if o.NumberRadius <= 0 || o.NumberRadius > o.Radius {
		return fmt.Errorf("number radius %.2f (radius %.2f): %w", o.NumberRadius, o.Radius, ErrInvalidGeometry)
	}
	if o.CellAspect <= 0 {
		return fmt.Errorf("cell aspect %.2f: %w", o.CellAspect, ErrInvalidGeometry)
	}
	if o.MinuteStep != 1 && o.MinuteStep != 5 {
		return fmt.Errorf("minute step %d: %w", o.MinuteStep, ErrInvalidGeometry)
	}
	if o.ThrottleInterval < 0 || o.ThrottleInterval > time.Second {
		return fmt.Errorf("throttle interval %s: %w", o.ThrottleInterval, ErrInvalidValue)
	}
	if o.SwitchDuration < 0 {
		return fmt.Errorf("switch duration %s: %w", o.SwitchDuration, ErrInvalidValue)
	}
	if o.SwitchDuration > 0 && o.FrameInterval <= 0 {
		return fmt.Errorf("frame interval %s: %w", o.FrameInterval, ErrInvalidValue)
	}
	if o.Initial != (Value{}) {
		if err := o.Initial.Validate(); err != nil {
			return fmt.Errorf("initial value: %w", err)
		}
	}
	return nil
}

func (o Options) initial() Value {
	if o.Initial == (Value{}) {
		return Value{Hour: 12, Minute: 0, Period: PeriodAM}
	}
	return o.Initial
}

// surfaceSize is the smallest cell grid that holds the whole face with the
// centre on a cell centre.
func (o Options) surfaceSize() (cols, rows int) {
	cols = 2*ceilInt(o.Radius) + 1
	rows = 2*ceilInt(o.Radius/o.CellAspect) + 1
	return cols, rows
}

func ceilInt(f float64) int {
	n := int(f)
	if float64(n) < f {
		n++
	}
	return n
}
