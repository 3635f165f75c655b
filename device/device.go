package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
	"github.com/calvinmclean/magloop/sim"

	"go.bug.st/serial"
)

// Device is a connection to a tuner, either over serial or simulated
type Device struct {
	port   io.ReadWriteCloser
	name   string
	logger *log.Logger
}

// New opens the configured serial port. An empty port uses the first USB serial port and
// SerialPortNone starts a simulated tuner.
func New(cfg Config) (*Device, error) {
	logger := log.New(os.Stderr, "device: ", log.LstdFlags)

	if cfg.SerialPort == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, fmt.Errorf("error finding serial port: %w", err)
		}
		cfg.SerialPort = ports[0]
		logger.Printf("using serial port %s", cfg.SerialPort)
	}

	if cfg.SerialPort == SerialPortNone {
		simDevice, err := sim.NewDevice(controller.DefaultConfig(), cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("error starting simulated tuner: %w", err)
		}
		logger.Print("running simulated tuner")
		return &Device{port: simDevice, name: SerialPortNone, logger: logger}, nil
	}

	baud, err := cfg.baudRate()
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", cfg.SerialPort, err)
	}
	logger.Printf("connected to %s at %d baud", cfg.SerialPort, baud)

	return &Device{port: port, name: cfg.SerialPort, logger: logger}, nil
}

// Name is the serial port name or SerialPortNone
func (d *Device) Name() string {
	return d.name
}

// Run sends each line read from in to the tuner and copies everything the tuner writes to out.
// It returns when ctx is cancelled or the tuner connection ends. The end of in does not stop Run
// so output for the last commands is still received.
func (d *Device) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	errs := make(chan error, 2)

	go func() {
		_, err := io.Copy(out, d.port)
		if err == nil {
			err = io.EOF
		}
		errs <- fmt.Errorf("error reading from tuner: %w", err)
	}()

	go func() {
		err := d.send(in)
		if err != nil {
			errs <- err
			return
		}
		d.logger.Print("input closed")
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		return err
	}
}

// send writes every line from in to the tuner with the line terminator it expects
func (d *Device) send(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		_, err := io.WriteString(d.port, line+string(magloop.LineTerminator))
		if err != nil {
			return fmt.Errorf("error writing to tuner: %w", err)
		}
	}

	err := scanner.Err()
	if err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

func (d *Device) Close() error {
	return d.port.Close()
}
