package sim

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/calvinmclean/magloop"
)

func TestMotorAdvance(t *testing.T) {
	m := NewMotor(4000)
	m.SetSpeed(15) // 1000 steps per second

	if steps := m.Advance(time.Second); steps != 0 {
		t.Errorf("idle motor should not move, took %d steps", steps)
	}

	m.Move(magloop.DirectionForward, 250)

	tests := []struct {
		d             time.Duration
		expectedSteps int32
		expectedCount int64
	}{
		{100 * time.Millisecond, 100, 100},
		{500 * time.Microsecond, 0, 100},
		{500 * time.Microsecond, 1, 101},
		{time.Second, 149, 250},
		{time.Second, 0, 250},
	}

	for _, tt := range tests {
		steps := m.Advance(tt.d)
		if steps != tt.expectedSteps {
			t.Errorf("Advance(%s): expected %d steps, got %d", tt.d, tt.expectedSteps, steps)
		}
		if m.CurrentPosition() != tt.expectedCount {
			t.Errorf("Advance(%s): expected count %d, got %d", tt.d, tt.expectedCount, m.CurrentPosition())
		}
	}

	if m.StepsRemaining() != 0 {
		t.Errorf("expected move to be finished, %d remaining", m.StepsRemaining())
	}
}

func TestMotorBackwardAndStop(t *testing.T) {
	m := NewMotor(4076)

	m.Move(magloop.DirectionBackward, 50)
	m.Step(20)
	if m.CurrentPosition() != -20 || m.StepsRemaining() != 30 {
		t.Errorf("unexpected state: count=%d remaining=%d", m.CurrentPosition(), m.StepsRemaining())
	}

	m.Stop()
	m.Step(20)
	if m.CurrentPosition() != -20 || m.StepsRemaining() != 0 {
		t.Errorf("motor should not move after Stop: count=%d remaining=%d", m.CurrentPosition(), m.StepsRemaining())
	}
}

func TestDisplay(t *testing.T) {
	var changes []int
	d := &Display{OnChange: func(ch int) { changes = append(changes, ch) }}

	for _, ch := range []int{41, 41, 42, 42, 41} {
		d.ShowChannel(ch)
	}

	expected := []int{41, 42, 41}
	if len(changes) != len(expected) {
		t.Fatalf("expected=%v, got=%v", expected, changes)
	}
	for i := range expected {
		if changes[i] != expected[i] {
			t.Errorf("expected=%v, got=%v", expected, changes)
		}
	}
	if d.Channel() != 41 {
		t.Errorf("expected channel 41, got %d", d.Channel())
	}
}

func TestLoggingDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := newLoggingDisplay(log.New(&buf, "", 0))

	d.ShowChannel(41)
	d.ShowChannel(41)
	d.ShowChannel(7)

	expected := "display channel 41\ndisplay channel 7\n"
	if buf.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, buf.String())
	}
	if d.Channel() != 7 {
		t.Errorf("expected channel 7, got %d", d.Channel())
	}
}
