package device

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/calvinmclean/magloop"
)

// SerialPortNone selects a simulated tuner instead of a serial connection
const SerialPortNone = "none"

// Config has the values needed to connect to a tuner
type Config struct {
	SerialPort string
	// BaudRate is a string since it is entered as text in the UI
	BaudRate string
	// TickInterval is only used by the simulated tuner
	TickInterval time.Duration
}

// ConfigFromEnv reads MAGLOOP_SERIAL_PORT and MAGLOOP_BAUD_RATE
func ConfigFromEnv() Config {
	return Config{
		SerialPort: os.Getenv("MAGLOOP_SERIAL_PORT"),
		BaudRate:   os.Getenv("MAGLOOP_BAUD_RATE"),
	}
}

func (c Config) baudRate() (int, error) {
	if c.BaudRate == "" {
		return magloop.DefaultBaudRate, nil
	}

	baud, err := strconv.Atoi(c.BaudRate)
	if err != nil || baud <= 0 {
		return 0, errors.New("invalid baud rate: " + c.BaudRate)
	}
	return baud, nil
}
