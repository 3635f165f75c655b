package ui

import (
	"errors"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/device"
)

type ConfigWindow struct {
	app fyne.App
	// OnSubmit connects using the submitted config. The window stays open if it returns an error.
	OnSubmit func() error
}

func NewConfigWindow(app fyne.App) *ConfigWindow {
	return &ConfigWindow{
		app: app,
	}
}

func (cw *ConfigWindow) loadConfigFromPreferences(cfg *device.Config) {
	prefs := cw.app.Preferences()
	cfg.SerialPort = prefs.StringWithFallback("serialPort", "")
	cfg.BaudRate = prefs.StringWithFallback("baudRate", strconv.Itoa(magloop.DefaultBaudRate))
}

func (cw *ConfigWindow) saveConfigToPreferences(cfg *device.Config) {
	prefs := cw.app.Preferences()
	prefs.SetString("serialPort", cfg.SerialPort)
	prefs.SetString("baudRate", cfg.BaudRate)
}

func (cw *ConfigWindow) Show(cfg *device.Config) {
	window := cw.app.NewWindow("Magnetic Loop Tuner - Connect")
	window.Resize(fyne.NewSize(400, 180))
	window.SetCloseIntercept(func() {
		// Treat window close as cancel
		window.Close()
		cw.app.Quit()
	})
	window.Show()

	cw.loadConfigFromPreferences(cfg)

	serialPorts, err := device.GetSerialPorts()
	if err != nil && !errors.Is(err, device.ErrNoUSBSerial) {
		showError(cw.app, window, fmt.Errorf("error getting serial ports: %w", err))
		return
	}

	serialPorts = append(serialPorts, device.SerialPortNone)

	// a saved port that is no longer connected falls back to the first available one
	if !contains(serialPorts, cfg.SerialPort) {
		cfg.SerialPort = serialPorts[0]
	}

	serialEntry := widget.NewSelect(serialPorts, nil)
	serialEntry.Bind(binding.BindString(&cfg.SerialPort))

	baudRateEntry := widget.NewEntry()
	baudRateEntry.Bind(binding.BindString(&cfg.BaudRate))

	submitButton := widget.NewButton("Connect", func() {
		err := cw.OnSubmit()
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		cw.saveConfigToPreferences(cfg)
		window.Close()
	})
	submitButton.Disable()

	validateForm := func() {
		_, baudErr := strconv.Atoi(cfg.BaudRate)
		if cfg.SerialPort != "" && baudErr == nil {
			submitButton.Enable()
		} else {
			submitButton.Disable()
		}
	}

	serialEntry.OnChanged = func(_ string) { validateForm() }
	baudRateEntry.OnChanged = func(_ string) { validateForm() }

	validateForm()

	form := container.NewVBox(
		widget.NewCard("Connection", "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Serial Port:"),
				serialEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Baud Rate:"),
				baudRateEntry,
			),
		)),
		container.NewHBox(
			widget.NewButton("Cancel", func() {
				window.Close()
				cw.app.Quit()
			}),
			submitButton,
		),
	)

	window.SetContent(form)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func showError(app fyne.App, window fyne.Window, err error) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(func() {
		app.Quit()
	})
	d.Show()
}
