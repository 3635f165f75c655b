package controller

import "github.com/calvinmclean/magloop"

// Motor is the stepper driver. It runs moves on its own and is polled once per tick.
type Motor interface {
	Move(dir magloop.Direction, steps uint32)
	Stop()
	SetSpeed(rpm uint)
	// StepsRemaining is non-zero while a move is in progress
	StepsRemaining() int32
	// CurrentPosition is the driver's cumulative step counter
	CurrentPosition() int64
}

// Display renders the active channel
type Display interface {
	ShowChannel(channel int)
}

// LineSource delivers complete command lines without blocking. It returns false when no
// complete line is available yet.
type LineSource interface {
	ReadLine() (string, bool)
}

type noopDisplay struct{}

var _ Display = noopDisplay{}

// ShowChannel implements Display.
func (noopDisplay) ShowChannel(int) {}

type noopLineSource struct{}

var _ LineSource = noopLineSource{}

// ReadLine implements LineSource.
func (noopLineSource) ReadLine() (string, bool) {
	return "", false
}
