package sim

import (
	"time"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
)

// Motor is a simulated stepper driver. It moves at the configured speed whenever Advance is called.
type Motor struct {
	stepsPerRevolution int32

	count     int64
	remaining int32
	dir       magloop.Direction
	rpm       uint

	// carry keeps fractional steps between calls to Advance
	carry float64
}

var _ controller.Motor = &Motor{}

func NewMotor(stepsPerRevolution int32) *Motor {
	return &Motor{
		stepsPerRevolution: stepsPerRevolution,
		rpm:                controller.DefaultRPM,
	}
}

// Move implements controller.Motor.
func (m *Motor) Move(dir magloop.Direction, steps uint32) {
	m.dir = dir
	m.remaining = int32(min(steps, uint32(1<<31-1)))
	m.carry = 0
}

// Stop implements controller.Motor.
func (m *Motor) Stop() {
	m.remaining = 0
	m.carry = 0
}

// SetSpeed implements controller.Motor.
func (m *Motor) SetSpeed(rpm uint) {
	m.rpm = rpm
}

// StepsRemaining implements controller.Motor.
func (m *Motor) StepsRemaining() int32 {
	return m.remaining
}

// CurrentPosition implements controller.Motor.
func (m *Motor) CurrentPosition() int64 {
	return m.count
}

// Advance runs the motor for d and returns the number of steps taken
func (m *Motor) Advance(d time.Duration) int32 {
	if m.remaining == 0 {
		return 0
	}

	stepsPerSecond := float64(m.rpm) * float64(m.stepsPerRevolution) / 60
	m.carry += stepsPerSecond * d.Seconds()

	steps := int32(min(m.carry, float64(m.remaining)))
	m.carry -= float64(steps)
	m.Step(steps)

	return steps
}

// Step immediately takes up to n steps of the current move
func (m *Motor) Step(n int32) {
	n = min(n, m.remaining)
	if n <= 0 {
		return
	}

	m.count += int64(n) * int64(m.dir.Sign())
	m.remaining -= n
	if m.remaining == 0 {
		m.carry = 0
	}
}
