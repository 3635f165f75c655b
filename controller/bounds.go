package controller

import (
	"fmt"
)

// Bounds limits the absolute position the motor may be commanded to
type Bounds struct {
	Min                int32
	Max                int32
	MaxRevolutions     int32
	StepsPerRevolution int32
}

// NewBounds creates Bounds from 0 to maxRevolutions full turns
func NewBounds(maxRevolutions, stepsPerRevolution int32) Bounds {
	return Bounds{
		Min:                0,
		Max:                maxRevolutions * stepsPerRevolution,
		MaxRevolutions:     maxRevolutions,
		StepsPerRevolution: stepsPerRevolution,
	}
}

// Check returns an error if moving delta steps from position would leave the bounds.
// Nothing is clamped: a move that does not fit is rejected as a whole.
func (b Bounds) Check(position, delta int32) error {
	target := int64(position) + int64(delta)
	if delta > 0 && target > int64(b.Max) {
		return fmt.Errorf("%w: %d + %d > %d", ErrExceedsMaximum, position, delta, b.Max)
	}
	if delta < 0 && target < int64(b.Min) {
		return fmt.Errorf("%w: %d - %d < %d", ErrExceedsMinimum, position, -int64(delta), b.Min)
	}
	return nil
}

// Contains reports whether position is within [Min, Max]
func (b Bounds) Contains(position int32) bool {
	return position >= b.Min && position <= b.Max
}

// WithMaxRevolutions returns a copy of the Bounds with a new maximum
func (b Bounds) WithMaxRevolutions(n int32) Bounds {
	b.MaxRevolutions = n
	b.Max = n * b.StepsPerRevolution
	return b
}
