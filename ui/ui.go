package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/device"
)

const maxLogLines = 200

var presetSteps = []int{1000, 100, 10, 1}

// TunerUI is the desktop controller. Tuner output is written to it and drives the status line and log.
type TunerUI struct {
	app fyne.App

	// OnConnect opens the tuner described by the config and returns the writer used for commands
	OnConnect func(device.Config) (io.Writer, error)

	mtx      sync.Mutex
	partial  []byte
	status   Status
	logLines []string

	statusText binding.String
	logText    binding.String
}

var _ io.Writer = &TunerUI{}

func NewTunerUI() *TunerUI {
	return &TunerUI{
		app:        app.NewWithID("com.calvinmclean.magloop"),
		statusText: binding.NewString(),
		logText:    binding.NewString(),
	}
}

// Write receives tuner output. Complete lines are added to the log and status reports update the status line.
func (ui *TunerUI) Write(p []byte) (int, error) {
	ui.mtx.Lock()
	defer ui.mtx.Unlock()

	ui.partial = append(ui.partial, p...)
	for {
		i := bytes.IndexByte(ui.partial, magloop.LineTerminator)
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(ui.partial[:i]), "\r")
		ui.partial = ui.partial[i+1:]

		ui.handleLine(line)
	}

	statusText := ui.status.String()
	logText := strings.Join(ui.logLines, "\n")
	fyne.Do(func() {
		_ = ui.statusText.Set(statusText)
		_ = ui.logText.Set(logText)
	})

	return len(p), nil
}

func (ui *TunerUI) handleLine(line string) {
	if line == "" {
		return
	}

	if status, ok := ParseStatus(ui.status, line); ok {
		ui.status = status
	}

	ui.logLines = append(ui.logLines, time.Now().Format(time.TimeOnly)+"  "+line)
	if len(ui.logLines) > maxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-maxLogLines:]
	}
}

// Run shows the connection window and then the tuner window. It returns when the app quits.
func (ui *TunerUI) Run(ctx context.Context) {
	if ui.OnConnect == nil {
		ui.OnConnect = func(device.Config) (io.Writer, error) {
			return nil, errors.New("no connection available")
		}
	}

	cfg := &device.Config{}
	configWindow := NewConfigWindow(ui.app)
	configWindow.OnSubmit = func() error {
		w, err := ui.OnConnect(*cfg)
		if err != nil {
			return err
		}
		ui.showTuner(cfg.SerialPort, &controllerWrapper{writer: w})
		return nil
	}
	configWindow.Show(cfg)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			ui.app.Quit()
		})
	}()

	ui.app.Run()
}

func (ui *TunerUI) showTuner(portName string, c *controllerWrapper) {
	window := ui.app.NewWindow("Magnetic Loop Tuner - " + portName)

	withError := func(f func() error) func() {
		return func() {
			if err := f(); err != nil {
				dialog.ShowError(err, window)
			}
		}
	}

	statusLabel := widget.NewLabelWithData(ui.statusText)
	statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.mtx.Lock()
	_ = ui.statusText.Set(ui.status.String())
	ui.mtx.Unlock()

	stopButton := widget.NewButton("STOP", c.Stop)
	stopButton.Importance = widget.DangerImportance

	content := container.NewVBox(
		statusLabel,
		widget.NewCard("Move", "", container.NewVBox(
			createStepButtons(c),
			createCustomSteps(c, withError),
			stopButton,
		)),
		widget.NewCard("Tune", "", container.NewVBox(
			createChannelSelect(c, withError),
			createRPMEntry(c, withError),
			createCalibration(c, withError),
		)),
		container.NewHBox(
			widget.NewButton("Position", c.QueryPosition),
			widget.NewButton("Queue", c.QueryQueue),
			widget.NewButton("Reset Position", func() {
				dialog.ShowConfirm("Reset Position", "Set the current position to 0?", func(ok bool) {
					if ok {
						c.Reset()
					}
				}, window)
			}),
			layout.NewSpacer(),
			widget.NewButton("Help", c.Help),
		),
		createLogAccordion(ui.logText),
	)

	window.SetCloseIntercept(func() {
		window.Close()
		ui.app.Quit()
	})
	window.SetContent(content)
	window.Resize(fyne.NewSize(520, 480))
	window.Show()

	c.QueryPosition()
}

func createStepButtons(c *controllerWrapper) *fyne.Container {
	backward := container.NewGridWithColumns(len(presetSteps))
	forward := container.NewGridWithColumns(len(presetSteps))
	for i, steps := range presetSteps {
		backward.Add(widget.NewButton("◀ "+strconv.Itoa(steps), func() { c.Move(-steps) }))
		// forward buttons go from smallest to largest
		fwd := presetSteps[len(presetSteps)-1-i]
		forward.Add(widget.NewButton(strconv.Itoa(fwd)+" ▶", func() { c.Move(fwd) }))
	}

	return container.NewGridWithColumns(2, backward, forward)
}

func createCustomSteps(c *controllerWrapper, withError func(func() error) func()) *fyne.Container {
	stepsEntry := widget.NewEntry()
	stepsEntry.SetPlaceHolder("steps")

	move := func(sign int) func() {
		return withError(func() error {
			steps, err := parseSteps(stepsEntry.Text)
			if err != nil {
				return err
			}
			c.Move(sign * steps)
			return nil
		})
	}

	return container.NewGridWithColumns(3,
		widget.NewButton("◀ Backward", move(-1)),
		stepsEntry,
		widget.NewButton("Forward ▶", move(1)),
	)
}

func createChannelSelect(c *controllerWrapper, withError func(func() error) func()) *fyne.Container {
	channels := make([]string, magloop.NumChannels)
	for i := range channels {
		channels[i] = strconv.Itoa(i + 1)
	}
	channelSelect := widget.NewSelect(channels, nil)
	channelSelect.PlaceHolder = "channel"

	return container.NewGridWithColumns(3,
		widget.NewLabel("Channel:"),
		channelSelect,
		widget.NewButton("Go", withError(func() error {
			return c.GoToChannel(channelSelect.Selected)
		})),
	)
}

func createRPMEntry(c *controllerWrapper, withError func(func() error) func()) *fyne.Container {
	rpmEntry := widget.NewEntry()
	rpmEntry.SetPlaceHolder("rpm")

	return container.NewGridWithColumns(3,
		widget.NewLabel("Speed (RPM):"),
		rpmEntry,
		widget.NewButton("Set", withError(func() error {
			return c.SetRPM(rpmEntry.Text)
		})),
	)
}

func createCalibration(c *controllerWrapper, withError func(func() error) func()) *fyne.Container {
	ch41Entry := widget.NewEntry()
	ch41Entry.SetPlaceHolder("CH41 position")
	ch40Entry := widget.NewEntry()
	ch40Entry.SetPlaceHolder("CH40 position")

	return container.NewGridWithColumns(3,
		ch41Entry,
		ch40Entry,
		widget.NewButton("Calibrate", withError(func() error {
			return c.Calibrate(ch41Entry.Text, ch40Entry.Text)
		})),
	)
}

func createLogAccordion(logText binding.String) *widget.Accordion {
	logContent := widget.NewLabelWithData(logText)
	logScroll := container.NewVScroll(logContent)
	logScroll.SetMinSize(fyne.NewSize(300, 150))

	logText.AddListener(binding.NewDataListener(func() {
		logScroll.ScrollToBottom()
	}))

	item := widget.NewAccordionItem("Log", logScroll)
	item.Open = true
	return widget.NewAccordion(item)
}
