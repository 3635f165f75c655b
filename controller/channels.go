package controller

import (
	"fmt"
	"math"

	"github.com/calvinmclean/magloop"
)

// channelOrder lists channel numbers by physical capacitor position. Index 0 is the lowest
// frequency position (channel 41) and the order wraps from 80 back to 1 at index 40.
var channelOrder = [magloop.NumChannels]int{
	41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
	51, 52, 53, 54, 55, 56, 57, 58, 59, 60,
	61, 62, 63, 64, 65, 66, 67, 68, 69, 70,
	71, 72, 73, 74, 75, 76, 77, 78, 79, 80,
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
	31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
}

const lastFrequencyIndex = magloop.NumChannels - 1

// FrequencyIndex returns the position of a channel in the physical ordering (0-79)
func FrequencyIndex(channel int) (int, error) {
	for i, ch := range channelOrder {
		if ch == channel {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrChannelOutOfRange, channel)
}

// ChannelAt returns the channel at a frequency index. The index is clamped to 0-79.
func ChannelAt(index int) int {
	return channelOrder[clamp(index, 0, lastFrequencyIndex)]
}

// ChannelMap converts between channels and absolute step positions. Until calibrated it
// spaces channels a fixed number of steps apart starting at position 0.
type ChannelMap struct {
	fallbackStepsPerChannel int32
	calibration             *Calibration
}

// NewChannelMap creates a ChannelMap that reads the provided Calibration on every conversion
func NewChannelMap(fallbackStepsPerChannel int32, calibration *Calibration) ChannelMap {
	return ChannelMap{
		fallbackStepsPerChannel: fallbackStepsPerChannel,
		calibration:             calibration,
	}
}

// Position returns the absolute position of a channel
func (m ChannelMap) Position(channel int) (int32, error) {
	index, err := FrequencyIndex(channel)
	if err != nil {
		return 0, err
	}

	if m.calibration == nil || !m.calibration.Calibrated() {
		return int32(index) * m.fallbackStepsPerChannel, nil
	}

	offset := math.Round(float64(index) * m.calibration.StepsPerChannel())
	return m.calibration.Channel41Position + int32(offset), nil
}

// Channel returns the channel closest to an absolute position
func (m ChannelMap) Channel(position int32) int {
	if m.calibration == nil || !m.calibration.Calibrated() {
		tablePosition := floorDiv(position, m.fallbackStepsPerChannel) + 1
		tablePosition = clamp(tablePosition, 1, magloop.NumChannels)
		return channelOrder[tablePosition-1]
	}

	cal := m.calibration
	if position < cal.Channel41Position {
		return channelOrder[0]
	}
	if position > cal.Channel40Position {
		return channelOrder[lastFrequencyIndex]
	}

	index := math.Round(float64(position-cal.Channel41Position) / cal.StepsPerChannel())
	return ChannelAt(int(index))
}

// floorDiv divides rounding toward negative infinity so positions below zero land below channel 41
func floorDiv(a, b int32) int {
	q := int(a / b)
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
