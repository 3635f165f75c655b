package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/calvinmclean/magloop/device"

	"github.com/eiannone/keyboard"
)

var jogSizes = []int{1, 10, 100}

// jogger turns key presses into tuner commands
type jogger struct {
	sizeIndex int
}

// command returns the command line for a key press. Empty means nothing is sent.
func (j *jogger) command(char rune, key keyboard.Key) (cmd string, quit bool) {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return "", true
	case keyboard.KeyArrowRight:
		return fmt.Sprintf("F%d", j.size()), false
	case keyboard.KeyArrowLeft:
		return fmt.Sprintf("B%d", j.size()), false
	case keyboard.KeyArrowUp:
		j.sizeIndex = min(j.sizeIndex+1, len(jogSizes)-1)
	case keyboard.KeyArrowDown:
		j.sizeIndex = max(j.sizeIndex-1, 0)
	case keyboard.KeySpace:
		return "S", false
	}

	switch char {
	case 's', 'S':
		return "S", false
	case 'p', 'P':
		return "P", false
	case 'q', 'Q':
		return "Q", false
	}

	return "", false
}

func (j *jogger) size() int {
	return jogSizes[j.sizeIndex]
}

func runJog(ctx context.Context, cfg device.Config) {
	d, err := device.New(cfg)
	if err != nil {
		panic(err)
	}
	defer d.Close()

	err = keyboard.Open()
	if err != nil {
		panic(err)
	}
	defer keyboard.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r, w := io.Pipe()
	defer w.Close()

	go func() {
		err := d.Run(ctx, r, rawTerminalWriter{os.Stdout})
		if err != nil {
			log.Printf("tuner connection ended: %v", err)
		}
		cancel()
	}()

	fmt.Println("←/→ jog, ↑/↓ jog size, s or space stop, p position, q queue, esc quit")

	keys := readKeys()
	j := &jogger{}
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-keys:
			if !ok {
				return
			}

			prevSize := j.size()
			cmd, quit := j.command(event.char, event.key)
			if quit {
				return
			}
			if j.size() != prevSize {
				fmt.Printf("jog size %d\r\n", j.size())
			}
			if cmd != "" {
				fmt.Fprintln(w, cmd)
			}
		}
	}
}

// rawTerminalWriter adds the carriage returns a terminal in raw mode needs
type rawTerminalWriter struct {
	w io.Writer
}

func (r rawTerminalWriter) Write(p []byte) (int, error) {
	_, err := r.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

type keyEvent struct {
	char rune
	key  keyboard.Key
}

// readKeys reads key presses in the background until the keyboard returns an error
func readKeys() <-chan keyEvent {
	keys := make(chan keyEvent, 16)
	go func() {
		defer close(keys)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				log.Printf("error reading keyboard: %v", err)
				return
			}
			keys <- keyEvent{char, key}
		}
	}()
	return keys
}
