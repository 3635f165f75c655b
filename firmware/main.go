//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
	"github.com/calvinmclean/magloop/firmware/device"
)

func main() {
	cfg := controller.DefaultConfig()

	stepperPins := [4]machine.Pin{machine.GP16, machine.GP17, machine.GP18, machine.GP19}
	for _, p := range stepperPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	stepper, err := device.NewStepper(device.StepperConfig{
		Pins:               [4]device.Pin{stepperPins[0], stepperPins[1], stepperPins[2], stepperPins[3]},
		StepMode:           device.StepModeHalf,
		StepsPerRevolution: cfg.StepsPerRevolution,
		RPM:                cfg.RPM,
	})
	if err != nil {
		panic(err)
	}

	err = machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SCK:       machine.GP2,
		SDO:       machine.GP3,
		SDI:       machine.GP4,
	})
	if err != nil {
		panic(err)
	}
	display := device.NewDisplay(device.DisplayConfig{
		Bus:       machine.SPI0,
		CS:        machine.GP5,
		Intensity: 4,
	})

	err = machine.Serial.Configure(machine.UARTConfig{BaudRate: magloop.DefaultBaudRate})
	if err != nil {
		panic(err)
	}

	c, err := controller.New(cfg, stepper, display, device.NewLineReader(machine.Serial), machine.Serial)
	if err != nil {
		panic(err)
	}

	println("magloop firmware started")
	c.Start()

	for {
		stepper.Run(time.Now())
		c.Tick()
	}
}
