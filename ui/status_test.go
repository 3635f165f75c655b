package ui

import "testing"

func TestParseStatus(t *testing.T) {
	prev := Status{Position: 10, Channel: 41, Queue: 2, Busy: true}

	tests := []struct {
		name     string
		line     string
		expected Status
		ok       bool
	}{
		{
			"PositionReport",
			"position=4176 revolution=1 step=100 channel=40",
			Status{Position: 4176, Revolution: 1, Step: 100, Channel: 40, Queue: 2, Busy: true},
			true,
		},
		{
			"QueueReport",
			"queue=0 busy=false position=30 min=0 max=40760",
			Status{Position: 30, Channel: 41, Queue: 0, Busy: false},
			true,
		},
		{
			"NegativePosition",
			"position=-20 revolution=0 step=-20 channel=41",
			Status{Position: -20, Step: -20, Channel: 41, Queue: 2, Busy: true},
			true,
		},
		{"Message", "moving forward 100 steps", prev, false},
		{"Error", "error: unknown command: X", prev, false},
		{"Empty", "", prev, false},
		{"BadNumber", "position=abc channel=41", prev, false},
		{"OnlyUnknownKeys", "min=0 max=100", prev, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(prev, tt.line)
			if ok != tt.ok {
				t.Errorf("expected ok=%t, got %t", tt.ok, ok)
			}
			if got != tt.expected {
				t.Errorf("expected=%+v, got=%+v", tt.expected, got)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	s := Status{Position: 100, Step: 100, Channel: 44}
	expected := "CH 44 | position 100 (rev 0, step 100) | queue 0 | idle"
	if s.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, s.String())
	}
}
