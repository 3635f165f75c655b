package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
)

// controllerWrapper turns UI actions into tuner command lines. Input is checked here so obvious
// mistakes are reported before anything is sent.
type controllerWrapper struct {
	writer io.Writer
}

func (c *controllerWrapper) send(format string, args ...any) {
	fmt.Fprintf(c.writer, format+string(magloop.LineTerminator), args...)
}

// Move sends F<n> for positive steps and B<n> for negative steps
func (c *controllerWrapper) Move(steps int) {
	switch {
	case steps > 0:
		c.send("F%d", steps)
	case steps < 0:
		c.send("B%d", -steps)
	}
}

func (c *controllerWrapper) Stop() {
	c.send("S")
}

func (c *controllerWrapper) QueryPosition() {
	c.send("P")
}

func (c *controllerWrapper) QueryQueue() {
	c.send("Q")
}

func (c *controllerWrapper) Reset() {
	c.send("RESET")
}

func (c *controllerWrapper) Help() {
	c.send("HELP")
}

func (c *controllerWrapper) SetRPM(input string) error {
	rpm, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || rpm < controller.DefaultMinRPM || rpm > controller.DefaultMaxRPM {
		return fmt.Errorf("RPM must be a number from %d to %d", controller.DefaultMinRPM, controller.DefaultMaxRPM)
	}
	c.send("RPM%d", rpm)
	return nil
}

func (c *controllerWrapper) GoToChannel(input string) error {
	ch, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || ch < 1 || ch > magloop.NumChannels {
		return fmt.Errorf("channel must be a number from 1 to %d", magloop.NumChannels)
	}
	c.send("CH%d", ch)
	return nil
}

func (c *controllerWrapper) Calibrate(ch41Input, ch40Input string) error {
	ch41, err41 := strconv.Atoi(strings.TrimSpace(ch41Input))
	ch40, err40 := strconv.Atoi(strings.TrimSpace(ch40Input))
	if err41 != nil || err40 != nil {
		return errors.New("calibration positions must be numbers")
	}
	if ch41 < 0 || ch40 <= ch41 || ch40 >= controller.DefaultStepsPerRevolution {
		return fmt.Errorf("calibration requires 0 <= CH41 < CH40 < %d", controller.DefaultStepsPerRevolution)
	}
	c.send("CAL%d,%d", ch41, ch40)
	return nil
}

// parseSteps reads a custom step count, which must be a positive integer
func parseSteps(input string) (int, error) {
	steps, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || steps <= 0 {
		return 0, errors.New("steps must be a positive whole number")
	}
	return steps, nil
}
