package controller

import (
	"errors"
	"strconv"
)

const (
	// DefaultStepsPerRevolution matches the 28BYJ-48 geared stepper in half-step mode
	DefaultStepsPerRevolution = 4076
	DefaultMaxRevolutions     = 10
	// DefaultStepsPerChannel is used to place channels until a CAL command is received
	DefaultStepsPerChannel = 30
	DefaultRPM             = 12
	DefaultMinRPM          = 6
	DefaultMaxRPM          = 24
	// DefaultMaxRevolutionsLimit is the largest value accepted by MAX<n>
	DefaultMaxRevolutionsLimit = 20
)

// Config has values that depend on the motor and the gearing to the capacitor
type Config struct {
	StepsPerRevolution int32
	MaxRevolutions     int32
	// FallbackStepsPerChannel is the fixed channel spacing used while uncalibrated
	FallbackStepsPerChannel int32

	RPM    uint
	MinRPM uint
	MaxRPM uint

	MaxRevolutionsLimit int32
}

// DefaultConfig returns the Config used by the firmware
func DefaultConfig() Config {
	return Config{
		StepsPerRevolution:      DefaultStepsPerRevolution,
		MaxRevolutions:          DefaultMaxRevolutions,
		FallbackStepsPerChannel: DefaultStepsPerChannel,
		RPM:                     DefaultRPM,
		MinRPM:                  DefaultMinRPM,
		MaxRPM:                  DefaultMaxRPM,
		MaxRevolutionsLimit:     DefaultMaxRevolutionsLimit,
	}
}

// Validate checks that the Config can be used to build a Controller
func (c Config) Validate() error {
	if c.StepsPerRevolution <= 0 {
		return errors.New("StepsPerRevolution must be > 0")
	}
	if c.FallbackStepsPerChannel <= 0 {
		return errors.New("FallbackStepsPerChannel must be > 0")
	}
	if c.MaxRevolutionsLimit <= 0 {
		return errors.New("MaxRevolutionsLimit must be > 0")
	}
	if c.MaxRevolutions < 1 || c.MaxRevolutions > c.MaxRevolutionsLimit {
		return errors.New("MaxRevolutions must be between 1 and " + strconv.Itoa(int(c.MaxRevolutionsLimit)))
	}
	if c.MinRPM == 0 || c.MinRPM > c.MaxRPM {
		return errors.New("invalid RPM range")
	}
	if c.RPM < c.MinRPM || c.RPM > c.MaxRPM {
		return errors.New("RPM must be between " + strconv.Itoa(int(c.MinRPM)) + " and " + strconv.Itoa(int(c.MaxRPM)))
	}
	return nil
}
