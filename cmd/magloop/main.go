package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/calvinmclean/magloop/device"
	"github.com/calvinmclean/magloop/ui"
)

func main() {
	cfg := device.ConfigFromEnv()

	var jog bool
	flag.StringVar(&cfg.SerialPort, "port", cfg.SerialPort, "Serial port of the tuner. Use \"none\" for a simulated tuner. Default is the first USB serial port")
	flag.StringVar(&cfg.BaudRate, "baud", cfg.BaudRate, "Serial baud rate. Default is 9600")
	flag.BoolVar(&jog, "jog", false, "Jog the capacitor with the arrow keys")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case os.Getenv("ENABLE_UI") == "true":
		runUI(ctx)
	case jog:
		runJog(ctx, cfg)
	default:
		runCLI(ctx, cfg)
	}
}

func runUI(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tunerUI := ui.NewTunerUI()
	tunerUI.OnConnect = func(cfg device.Config) (io.Writer, error) {
		d, err := device.New(cfg)
		if err != nil {
			return nil, err
		}

		r, w := io.Pipe()

		// read from Stdin also
		go func() {
			io.Copy(w, os.Stdin)
		}()

		go func() {
			defer d.Close()
			err := d.Run(ctx, r, io.MultiWriter(os.Stdout, tunerUI))
			if err != nil {
				log.Printf("tuner connection ended: %v", err)
			}
			cancel()
		}()

		return w, nil
	}

	tunerUI.Run(ctx)
}

func runCLI(ctx context.Context, cfg device.Config) {
	d, err := device.New(cfg)
	if err != nil {
		panic(err)
	}
	defer d.Close()

	err = d.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		panic(err)
	}
}
