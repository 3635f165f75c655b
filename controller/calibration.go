package controller

import (
	"fmt"

	"github.com/calvinmclean/magloop"
)

// Calibration holds the measured positions of the first (channel 41) and last (channel 40)
// channels in frequency order. All other channels are interpolated between them.
// It is volatile and starts uncalibrated after every restart.
type Calibration struct {
	Channel41Position int32
	Channel40Position int32

	calibrated      bool
	stepsPerChannel float64
}

// Set validates and stores a two-point calibration. On error the previous calibration is kept.
func (c *Calibration) Set(channel41Position, channel40Position, stepsPerRevolution int32) error {
	switch {
	case channel41Position < 0:
		return fmt.Errorf("%w: CH41 position %d must be >= 0", ErrInvalidCalibration, channel41Position)
	case channel40Position <= channel41Position:
		return fmt.Errorf("%w: CH40 position %d must be greater than CH41 position %d", ErrInvalidCalibration, channel40Position, channel41Position)
	case channel40Position > stepsPerRevolution-1:
		return fmt.Errorf("%w: CH40 position %d must be <= %d", ErrInvalidCalibration, channel40Position, stepsPerRevolution-1)
	}

	c.Channel41Position = channel41Position
	c.Channel40Position = channel40Position
	c.stepsPerChannel = float64(channel40Position-channel41Position) / float64(magloop.NumChannels-1)
	c.calibrated = true

	return nil
}

// Calibrated returns true once a valid calibration has been set
func (c Calibration) Calibrated() bool {
	return c.calibrated
}

// StepsPerChannel returns the interpolated distance between neighbouring channels, or 0 when uncalibrated
func (c Calibration) StepsPerChannel() float64 {
	return c.stepsPerChannel
}
