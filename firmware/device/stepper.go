package device

import (
	"errors"
	"time"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
)

type StepMode int

const (
	StepModeFull StepMode = iota
	StepModeHalf
)

// Stepper drives a 4-wire stepper one step at a time. Move only records the target and Run takes
// a step whenever the step delay has passed, so the main loop is never blocked by a move.
type Stepper struct {
	pins               [4]Pin
	stepMode           StepMode
	stepsPerRevolution int32
	currentStep        int
	stepDelay          time.Duration
	lastStep           time.Time

	dir       magloop.Direction
	remaining int32
	count     int64
}

var _ controller.Motor = &Stepper{}

func NewStepper(cfg StepperConfig) (*Stepper, error) {
	if cfg.StepMode != StepModeFull && cfg.StepMode != StepModeHalf {
		return nil, errors.New("invalid StepMode")
	}
	if cfg.StepsPerRevolution <= 0 {
		return nil, errors.New("StepsPerRevolution must be > 0")
	}
	for _, p := range cfg.Pins {
		if p == nil {
			return nil, errors.New("all four pins are required")
		}
	}
	if cfg.RPM == 0 {
		cfg.RPM = controller.DefaultRPM
	}

	s := &Stepper{
		pins:               cfg.Pins,
		stepMode:           cfg.StepMode,
		stepsPerRevolution: cfg.StepsPerRevolution,
	}
	s.SetSpeed(cfg.RPM)
	s.release()

	return s, nil
}

var (
	// 8-step half-step sequence
	halfStepSequence = [8][4]bool{
		{true, false, false, false},
		{true, true, false, false},
		{false, true, false, false},
		{false, true, true, false},
		{false, false, true, false},
		{false, false, true, true},
		{false, false, false, true},
		{true, false, false, true},
	}

	// 4-step sequence
	fullStepSequence = [4][4]bool{
		{true, false, false, false},
		{false, true, false, false},
		{false, false, true, false},
		{false, false, false, true},
	}
)

func (s *Stepper) sequenceLen() int {
	if s.stepMode == StepModeHalf {
		return len(halfStepSequence)
	}
	return len(fullStepSequence)
}

func (s *Stepper) applyStep() {
	var sequence [4]bool
	switch s.stepMode {
	default:
		fallthrough
	case StepModeFull:
		sequence = fullStepSequence[s.currentStep]
	case StepModeHalf:
		sequence = halfStepSequence[s.currentStep]
	}

	for i := range 4 {
		s.pins[i].Set(sequence[i])
	}
}

// release turns off all coils. The capacitor holds its position without power.
func (s *Stepper) release() {
	for _, p := range s.pins {
		p.Set(false)
	}
}

// Move implements controller.Motor.
func (s *Stepper) Move(dir magloop.Direction, steps uint32) {
	s.dir = dir
	s.remaining = int32(min(steps, uint32(1<<31-1)))
}

// Stop implements controller.Motor.
func (s *Stepper) Stop() {
	s.remaining = 0
	s.release()
}

// SetSpeed implements controller.Motor.
func (s *Stepper) SetSpeed(rpm uint) {
	if rpm == 0 {
		return
	}
	s.stepDelay = time.Minute / time.Duration(uint(s.stepsPerRevolution)*rpm)
}

// StepsRemaining implements controller.Motor.
func (s *Stepper) StepsRemaining() int32 {
	return s.remaining
}

// CurrentPosition implements controller.Motor.
func (s *Stepper) CurrentPosition() int64 {
	return s.count
}

// StepDelay is the time between steps at the current speed
func (s *Stepper) StepDelay() time.Duration {
	return s.stepDelay
}

// Run takes the next step of the current move if it is due and reports whether a step was taken
func (s *Stepper) Run(now time.Time) bool {
	if s.remaining == 0 {
		return false
	}
	if !s.lastStep.IsZero() && now.Sub(s.lastStep) < s.stepDelay {
		return false
	}

	n := s.sequenceLen()
	if s.dir == magloop.DirectionBackward {
		s.currentStep = (s.currentStep - 1 + n) % n
	} else {
		s.currentStep = (s.currentStep + 1) % n
	}
	s.applyStep()

	s.lastStep = now
	s.count += int64(s.dir.Sign())
	s.remaining--

	if s.remaining == 0 {
		s.release()
	}
	return true
}
