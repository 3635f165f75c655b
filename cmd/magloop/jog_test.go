package main

import (
	"bytes"
	"testing"

	"github.com/eiannone/keyboard"
)

func TestJoggerCommand(t *testing.T) {
	j := &jogger{}

	steps := []struct {
		name     string
		char     rune
		key      keyboard.Key
		expected string
		quit     bool
	}{
		{"Right", 0, keyboard.KeyArrowRight, "F1", false},
		{"Left", 0, keyboard.KeyArrowLeft, "B1", false},
		{"Up", 0, keyboard.KeyArrowUp, "", false},
		{"RightAfterUp", 0, keyboard.KeyArrowRight, "F10", false},
		{"UpToMax", 0, keyboard.KeyArrowUp, "", false},
		{"UpPastMax", 0, keyboard.KeyArrowUp, "", false},
		{"LeftAtMax", 0, keyboard.KeyArrowLeft, "B100", false},
		{"Down", 0, keyboard.KeyArrowDown, "", false},
		{"RightAfterDown", 0, keyboard.KeyArrowRight, "F10", false},
		{"Stop", 's', 0, "S", false},
		{"StopSpace", 0, keyboard.KeySpace, "S", false},
		{"Position", 'p', 0, "P", false},
		{"Queue", 'Q', 0, "Q", false},
		{"Other", 'x', 0, "", false},
		{"Esc", 0, keyboard.KeyEsc, "", true},
	}

	// steps depend on the jog size left by earlier steps, so they run in order
	for _, tt := range steps {
		cmd, quit := j.command(tt.char, tt.key)
		if cmd != tt.expected || quit != tt.quit {
			t.Errorf("%s: expected=(%q, %t), got=(%q, %t)", tt.name, tt.expected, tt.quit, cmd, quit)
		}
	}
}

func TestRawTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := rawTerminalWriter{&buf}.Write([]byte("motion complete\nposition=1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 27 {
		t.Errorf("expected n=27, got %d", n)
	}

	expected := "motion complete\r\nposition=1\r\n"
	if buf.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, buf.String())
	}
}
