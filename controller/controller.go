package controller

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/calvinmclean/magloop"
)

// Controller interprets tuner commands and owns the position, bounds, calibration and queue
// state. It is driven by Tick from a single loop and never waits for the motor: moves are handed
// to the Motor and the result is picked up on later ticks.
type Controller struct {
	cfg     Config
	motor   Motor
	display Display
	lines   LineSource
	out     io.Writer

	tracker     *PositionTracker
	bounds      Bounds
	calibration Calibration
	channels    ChannelMap
	queue       Queue

	state   RunState
	rpm     uint
	channel int
}

// New creates a Controller. A nil display, line source or writer is replaced with one that does nothing.
func New(cfg Config, motor Motor, display Display, lines LineSource, out io.Writer) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("invalid config: " + err.Error())
	}
	if motor == nil {
		return nil, errors.New("motor is required")
	}
	if display == nil {
		display = noopDisplay{}
	}
	if lines == nil {
		lines = noopLineSource{}
	}
	if out == nil {
		out = io.Discard
	}

	c := &Controller{
		cfg:     cfg,
		motor:   motor,
		display: display,
		lines:   lines,
		out:     out,
		tracker: NewPositionTracker(motor.CurrentPosition()),
		bounds:  NewBounds(cfg.MaxRevolutions, cfg.StepsPerRevolution),
		state:   StateIdle,
		rpm:     cfg.RPM,
	}
	c.channels = NewChannelMap(cfg.FallbackStepsPerChannel, &c.calibration)
	c.channel = c.channels.Channel(c.tracker.Position())

	motor.SetSpeed(cfg.RPM)

	return c, nil
}

// Start announces the Controller on the text output and shows the initial channel
func (c *Controller) Start() {
	c.printf("Magnetic loop tuner ready")
	c.printf("Commands: F<n> B<n> S P Q RPM<n> CH<n> MAX<n> RESET CAL<a>,<b> SETPOS<n> D HELP")
	c.refreshChannel()
}

// Tick runs one pass of the control loop: detect the motor finishing, handle at most one
// incoming line, start one queued command if the motor is idle and update the tracked position.
func (c *Controller) Tick() {
	c.pollMotor()

	if line, ok := c.lines.ReadLine(); ok {
		c.Handle(line)
	}

	c.drainQueue()
	c.updatePosition()
}

// Handle dispatches one command line. Motion commands received while the motor is busy are
// queued as received. Everything else runs immediately.
func (c *Controller) Handle(line string) {
	cmd := Parse(line)
	if cmd.Kind == CommandEmpty {
		return
	}

	if c.state == StateBusy && cmd.Kind.IsMotion() {
		c.queue.Push(cmd.Raw)
		c.printf("queued %s (%d pending)", cmd.Raw, c.queue.Len())
		return
	}

	if err := c.Execute(cmd); err != nil {
		c.reportError(err)
	}
}

// Execute runs a command immediately, regardless of the motor's run state
func (c *Controller) Execute(cmd Command) error {
	c.updatePosition()

	switch cmd.Kind {
	case CommandForward:
		return c.moveSteps(magloop.DirectionForward, cmd.Arg)
	case CommandBackward:
		return c.moveSteps(magloop.DirectionBackward, cmd.Arg)
	case CommandChannel:
		return c.moveToChannel(int(cmd.Arg))
	case CommandStop:
		c.motor.Stop()
		c.queue.Clear()
		c.printf("stopped, queue cleared")
	case CommandPosition:
		c.reportPosition()
	case CommandQueue:
		c.printf("queue=%d busy=%t position=%d min=%d max=%d",
			c.queue.Len(), c.state == StateBusy, c.Position(), c.bounds.Min, c.bounds.Max)
	case CommandRPM:
		return c.setRPM(cmd.Arg)
	case CommandMaxRevolutions:
		return c.setMaxRevolutions(cmd.Arg)
	case CommandReset:
		c.setPosition(0)
		c.printf("position reset to 0")
	case CommandCalibrate:
		return c.calibrate(cmd)
	case CommandSetPosition:
		c.setPosition(cmd.Arg)
		c.printf("position set to %d", cmd.Arg)
	case CommandDisplay:
		c.refreshChannel()
		c.printf("channel %d", c.channel)
	case CommandHelp:
		c.printHelp()
	case CommandEmpty:
	default:
		fallthrough
	case CommandUnknown:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Raw)
	}

	return nil
}

// moveSteps ignores step counts <= 0, which is what unparseable numbers become
func (c *Controller) moveSteps(dir magloop.Direction, steps int32) error {
	if steps <= 0 {
		return nil
	}

	err := c.bounds.Check(c.Position(), steps*dir.Sign())
	if err != nil {
		return err
	}

	c.startMove(dir, uint32(steps))
	c.printf("moving %s %d steps", strings.ToLower(dir.String()), steps)
	return nil
}

func (c *Controller) moveToChannel(channel int) error {
	if channel < 1 || channel > magloop.NumChannels {
		return fmt.Errorf("%w: %d is not 1-%d", ErrChannelOutOfRange, channel, magloop.NumChannels)
	}

	target, err := c.channels.Position(channel)
	if err != nil {
		return err
	}
	if !c.bounds.Contains(target) {
		return fmt.Errorf("%w: channel %d is at %d, outside %d-%d", ErrPositionOutOfRange, channel, target, c.bounds.Min, c.bounds.Max)
	}

	// int64 so that a far out of bounds position from SETPOS cannot wrap the distance
	delta := int64(target) - int64(c.Position())
	if delta == 0 {
		c.printf("already at channel %d (position %d)", channel, target)
		return nil
	}

	dir := magloop.DirectionForward
	if delta < 0 {
		dir = magloop.DirectionBackward
		delta = -delta
	}
	if delta > math.MaxUint32 {
		return fmt.Errorf("%w: channel %d is %d steps away", ErrPositionOutOfRange, channel, delta)
	}

	c.startMove(dir, uint32(delta))
	c.printf("moving to channel %d (position %d, %d steps %s)", channel, target, delta, strings.ToLower(dir.String()))
	return nil
}

func (c *Controller) startMove(dir magloop.Direction, steps uint32) {
	c.motor.Move(dir, steps)
	c.state = StateBusy
}

func (c *Controller) setRPM(rpm int32) error {
	if rpm < int32(c.cfg.MinRPM) || rpm > int32(c.cfg.MaxRPM) {
		return fmt.Errorf("%w: %d, use %d-%d", ErrInvalidRPM, rpm, c.cfg.MinRPM, c.cfg.MaxRPM)
	}

	c.rpm = uint(rpm)
	c.motor.SetSpeed(c.rpm)
	c.printf("speed set to %d rpm", rpm)
	return nil
}

// setMaxRevolutions changes the upper bound. A position already past the new maximum is
// reported but left alone.
func (c *Controller) setMaxRevolutions(n int32) error {
	if n < 1 || n > c.cfg.MaxRevolutionsLimit {
		return fmt.Errorf("%w: %d, use 1-%d", ErrInvalidRevolutions, n, c.cfg.MaxRevolutionsLimit)
	}

	c.bounds = c.bounds.WithMaxRevolutions(n)
	c.printf("max revolutions %d, max position %d", n, c.bounds.Max)

	if pos := c.Position(); pos > c.bounds.Max {
		c.printf("warning: position %d exceeds new maximum %d", pos, c.bounds.Max)
	}
	return nil
}

func (c *Controller) calibrate(cmd Command) error {
	if !cmd.HasArg2 {
		return fmt.Errorf("%w: use CAL<ch41 position>,<ch40 position>", ErrInvalidCalibration)
	}

	err := c.calibration.Set(cmd.Arg, cmd.Arg2, c.cfg.StepsPerRevolution)
	if err != nil {
		return err
	}

	c.printf("calibrated: CH41=%d CH40=%d steps/channel=%.2f",
		c.calibration.Channel41Position, c.calibration.Channel40Position, c.calibration.StepsPerChannel())
	c.refreshChannel()
	return nil
}

func (c *Controller) setPosition(position int32) {
	c.tracker.Set(position)
	c.refreshChannel()
}

// pollMotor follows the motor's busy/idle transitions. Finishing a move reports the final position.
func (c *Controller) pollMotor() {
	busy := c.motor.StepsRemaining() != 0

	switch {
	case busy && c.state == StateIdle:
		c.state = StateBusy
	case !busy && c.state == StateBusy:
		c.state = StateIdle
		c.updatePosition()
		c.printf("motion complete")
		c.reportPosition()
	}
}

// drainQueue starts the oldest queued command once the motor is idle
func (c *Controller) drainQueue() {
	if c.state != StateIdle {
		return
	}

	raw, ok := c.queue.Pop()
	if !ok {
		return
	}

	if err := c.Execute(Parse(raw)); err != nil {
		c.reportError(err)
	}
}

func (c *Controller) updatePosition() {
	if c.tracker.Update(c.motor.CurrentPosition()) {
		c.refreshChannel()
	}
}

func (c *Controller) refreshChannel() {
	c.channel = c.channels.Channel(c.tracker.Position())
	c.display.ShowChannel(c.channel)
}

func (c *Controller) reportPosition() {
	pos := c.Position()
	c.printf("position=%d revolution=%d step=%d channel=%d",
		pos, pos/c.cfg.StepsPerRevolution, pos%c.cfg.StepsPerRevolution, c.channel)
}

func (c *Controller) printHelp() {
	c.printf("Available commands:")
	for _, def := range commandDefs {
		c.printf("  %-11s %s", def.Usage, def.Description)
	}
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Controller) reportError(err error) {
	fmt.Fprintln(c.out, "error:", err.Error())
}

// Position returns the tracked absolute position
func (c *Controller) Position() int32 {
	return c.tracker.Position()
}

// Channel returns the channel for the tracked position
func (c *Controller) Channel() int {
	return c.channel
}

func (c *Controller) QueueLen() int {
	return c.queue.Len()
}

func (c *Controller) State() RunState {
	return c.state
}

func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// Calibration returns a copy of the current calibration
func (c *Controller) Calibration() Calibration {
	return c.calibration
}

func (c *Controller) RPM() uint {
	return c.rpm
}
