package sim

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/calvinmclean/magloop/controller"
)

const (
	DefaultTickInterval = 10 * time.Millisecond

	lineBufferSize = 64
)

// Device runs a Controller against a simulated Motor in its own goroutine. Command lines are
// written to it and the controller's output is read from it, like a serial connection to a tuner.
type Device struct {
	controller *controller.Controller
	motor      *Motor
	display    *Display

	tickInterval time.Duration
	lines        chan string

	writeMtx sync.Mutex
	partial  []byte

	outR *io.PipeReader
	outW *io.PipeWriter

	cancel context.CancelFunc
	done   chan struct{}
}

var _ io.ReadWriteCloser = &Device{}

// NewDevice creates and starts a simulated tuner
func NewDevice(cfg controller.Config, tickInterval time.Duration) (*Device, error) {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	outR, outW := io.Pipe()
	d := &Device{
		motor:        NewMotor(cfg.StepsPerRevolution),
		display:      newLoggingDisplay(log.New(os.Stderr, "sim: ", log.LstdFlags)),
		tickInterval: tickInterval,
		lines:        make(chan string, lineBufferSize),
		outR:         outR,
		outW:         outW,
		done:         make(chan struct{}),
	}

	c, err := controller.New(cfg, d.motor, d.display, chanLineSource(d.lines), outW)
	if err != nil {
		return nil, errors.New("error creating controller: " + err.Error())
	}
	d.controller = c

	var ctx context.Context
	ctx, d.cancel = context.WithCancel(context.Background())
	go d.run(ctx)

	return d, nil
}

func (d *Device) run(ctx context.Context) {
	defer close(d.done)
	defer d.outW.Close()

	d.controller.Start()

	ticker := time.NewTicker(d.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		d.motor.Advance(d.tickInterval)
		d.controller.Tick()
	}
}

// Read returns controller output
func (d *Device) Read(p []byte) (int, error) {
	return d.outR.Read(p)
}

// Write accepts command bytes. Each complete line is delivered to the controller.
func (d *Device) Write(p []byte) (int, error) {
	d.writeMtx.Lock()
	defer d.writeMtx.Unlock()

	d.partial = append(d.partial, p...)
	for {
		i := bytes.IndexByte(d.partial, '\n')
		if i < 0 {
			break
		}

		line := strings.TrimRight(string(d.partial[:i]), "\r")
		d.partial = d.partial[i+1:]

		select {
		case d.lines <- line:
		case <-d.done:
			return 0, io.ErrClosedPipe
		}
	}

	return len(p), nil
}

// Close stops the tick loop. Pending output is discarded.
func (d *Device) Close() error {
	d.cancel()
	// unblock the loop if it is waiting for a reader
	d.outR.Close()
	<-d.done
	return nil
}

type chanLineSource chan string

var _ controller.LineSource = chanLineSource(nil)

// ReadLine implements controller.LineSource.
func (c chanLineSource) ReadLine() (string, bool) {
	select {
	case line := <-c:
		return line, true
	default:
		return "", false
	}
}
