package sim

import (
	"log"

	"github.com/calvinmclean/magloop/controller"
)

// Display remembers the last channel shown and optionally forwards it to OnChange
type Display struct {
	channel  int
	OnChange func(channel int)
}

var _ controller.Display = &Display{}

// ShowChannel implements controller.Display.
func (d *Display) ShowChannel(channel int) {
	if channel == d.channel {
		return
	}
	d.channel = channel

	if d.OnChange != nil {
		d.OnChange(channel)
	}
}

func (d *Display) Channel() int {
	return d.channel
}

// newLoggingDisplay stands in for the LED matrix by logging each channel change
func newLoggingDisplay(logger *log.Logger) *Display {
	return &Display{
		OnChange: func(channel int) {
			logger.Printf("display channel %d", channel)
		},
	}
}
