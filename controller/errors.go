package controller

import "errors"

// Errors reported for rejected commands. A rejected command never changes state.
var (
	ErrExceedsMaximum     = errors.New("would exceed maximum")
	ErrExceedsMinimum     = errors.New("would exceed minimum")
	ErrChannelOutOfRange  = errors.New("channel out of range")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrInvalidRPM         = errors.New("invalid rpm")
	ErrInvalidRevolutions = errors.New("invalid max revolutions")
	ErrInvalidCalibration = errors.New("invalid calibration")
	ErrUnknownCommand     = errors.New("unknown command")
)
