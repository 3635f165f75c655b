package device

import (
	"testing"
	"time"

	"github.com/calvinmclean/magloop"
)

type fakePin struct {
	high bool
}

func (p *fakePin) Set(high bool) {
	p.high = high
}

func newTestStepper(t *testing.T, mode StepMode) (*Stepper, [4]*fakePin) {
	t.Helper()

	pins := [4]*fakePin{{}, {}, {}, {}}
	s, err := NewStepper(StepperConfig{
		Pins:               [4]Pin{pins[0], pins[1], pins[2], pins[3]},
		StepMode:           mode,
		StepsPerRevolution: 4000,
		RPM:                15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, pins
}

func pinStates(pins [4]*fakePin) [4]bool {
	return [4]bool{pins[0].high, pins[1].high, pins[2].high, pins[3].high}
}

func TestNewStepperInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  StepperConfig
	}{
		{"InvalidMode", StepperConfig{Pins: [4]Pin{&fakePin{}, &fakePin{}, &fakePin{}, &fakePin{}}, StepMode: 5, StepsPerRevolution: 4076}},
		{"MissingPin", StepperConfig{Pins: [4]Pin{&fakePin{}, &fakePin{}, &fakePin{}}, StepsPerRevolution: 4076}},
		{"NoStepsPerRevolution", StepperConfig{Pins: [4]Pin{&fakePin{}, &fakePin{}, &fakePin{}, &fakePin{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStepper(tt.cfg)
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStepperSpeed(t *testing.T) {
	s, _ := newTestStepper(t, StepModeHalf)
	if s.StepDelay() != time.Millisecond {
		t.Errorf("expected 1ms step delay, got %s", s.StepDelay())
	}

	s.SetSpeed(6)
	if s.StepDelay() != 2500*time.Microsecond {
		t.Errorf("expected 2.5ms step delay, got %s", s.StepDelay())
	}

	s.SetSpeed(0)
	if s.StepDelay() != 2500*time.Microsecond {
		t.Errorf("SetSpeed(0) should be ignored, got %s", s.StepDelay())
	}
}

func TestStepperRunHalfStep(t *testing.T) {
	s, pins := newTestStepper(t, StepModeHalf)

	start := time.Now()
	if s.Run(start) {
		t.Error("idle stepper should not step")
	}

	s.Move(magloop.DirectionForward, 3)
	if !s.Run(start) {
		t.Fatal("expected first step")
	}
	if pinStates(pins) != halfStepSequence[1] {
		t.Errorf("unexpected pins after first step: %v", pinStates(pins))
	}

	// not due yet
	if s.Run(start.Add(500 * time.Microsecond)) {
		t.Error("stepped before the step delay passed")
	}

	if !s.Run(start.Add(time.Millisecond)) {
		t.Fatal("expected second step")
	}
	if pinStates(pins) != halfStepSequence[2] {
		t.Errorf("unexpected pins after second step: %v", pinStates(pins))
	}

	s.Run(start.Add(2 * time.Millisecond))
	if s.StepsRemaining() != 0 || s.CurrentPosition() != 3 {
		t.Errorf("unexpected state: remaining=%d count=%d", s.StepsRemaining(), s.CurrentPosition())
	}
	if pinStates(pins) != [4]bool{} {
		t.Errorf("expected coils to be released, got %v", pinStates(pins))
	}
}

func TestStepperRunBackwardFullStep(t *testing.T) {
	s, pins := newTestStepper(t, StepModeFull)

	now := time.Now()
	s.Move(magloop.DirectionBackward, 10)
	s.Run(now)
	if pinStates(pins) != fullStepSequence[3] {
		t.Errorf("expected sequence to wrap backward, got %v", pinStates(pins))
	}

	for i := 1; i < 4; i++ {
		now = now.Add(s.StepDelay())
		s.Run(now)
	}
	if s.CurrentPosition() != -4 || s.StepsRemaining() != 6 {
		t.Errorf("unexpected state: remaining=%d count=%d", s.StepsRemaining(), s.CurrentPosition())
	}

	s.Stop()
	if s.StepsRemaining() != 0 || pinStates(pins) != [4]bool{} {
		t.Errorf("expected stop to release coils: remaining=%d pins=%v", s.StepsRemaining(), pinStates(pins))
	}
	if s.Run(now.Add(time.Second)) {
		t.Error("stepped after Stop")
	}
}
