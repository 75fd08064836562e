package mathutil

import "math"

// Interval is the closed range [Min, Max]. Min <= Max is not enforced;
// an interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Span returns the smallest interval enclosing both a and b.
func Span(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports Min <= x <= Max.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports Min < x < Max. Hit tests use this form.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval by delta/2 on each side.
func (i Interval) Expand(delta float64) Interval {
	p := delta / 2
	return Interval{Min: i.Min - p, Max: i.Max + p}
}
