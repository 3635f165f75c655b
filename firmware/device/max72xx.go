//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/max72xx"
)

// DisplayConfig has the wiring for a MAX7219 8x8 LED matrix module
type DisplayConfig struct {
	Bus drivers.SPI
	// CS is the chip select, also called LOAD
	CS        machine.Pin
	Intensity uint8
}

// NewDisplay configures a MAX7219 for an 8x8 matrix and returns a display using it
func NewDisplay(cfg DisplayConfig) *MatrixDisplay {
	dev := max72xx.NewDevice(cfg.Bus, cfg.CS)
	dev.Configure()

	dev.StopDisplayTest()
	// the matrix is driven directly, not as 7 segment digits
	dev.SetDecodeMode(0)
	dev.SetScanLimit(8)
	dev.SetIntensity(cfg.Intensity)
	dev.StopShutdownMode()

	return NewMatrixDisplay(dev, MatrixConfig{FirstRowRegister: max72xx.REG_DIGIT0})
}
