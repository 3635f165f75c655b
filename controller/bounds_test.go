package controller

import (
	"errors"
	"testing"
)

func TestBoundsCheck(t *testing.T) {
	b := NewBounds(10, 4076)
	if b.Max != 40760 {
		t.Fatalf("expected Max=40760, got %d", b.Max)
	}

	tests := []struct {
		name     string
		position int32
		delta    int32
		expected error
	}{
		{"ForwardInside", 0, 100, nil},
		{"ForwardToMax", 40660, 100, nil},
		{"ForwardPastMax", 100, 50000, ErrExceedsMaximum},
		{"BackwardToMin", 100, -100, nil},
		{"BackwardPastMin", 100, -101, ErrExceedsMinimum},
		{"BackwardWhilePastMax", 45000, -10, nil},
		{"ForwardWhilePastMax", 45000, 1, ErrExceedsMaximum},
		{"NoOverflow", 2147483000, 2147483000, ErrExceedsMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Check(tt.position, tt.delta)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected=%v, got=%v", tt.expected, err)
			}
		})
	}
}

func TestBoundsWithMaxRevolutions(t *testing.T) {
	b := NewBounds(10, 4076).WithMaxRevolutions(5)
	if b.Max != 20380 || b.MaxRevolutions != 5 || b.Min != 0 {
		t.Errorf("unexpected bounds: %+v", b)
	}
	if b.Contains(25000) {
		t.Error("25000 should be outside the bounds")
	}
	if !b.Contains(20380) {
		t.Error("20380 should be inside the bounds")
	}
}
