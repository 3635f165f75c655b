package controller

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Command
	}{
		{"Forward", "F100", Command{Kind: CommandForward, Arg: 100, Raw: "F100"}},
		{"ForwardLowerCaseWithSpaces", "  f25 \r", Command{Kind: CommandForward, Arg: 25, Raw: "f25"}},
		{"Backward", "B7", Command{Kind: CommandBackward, Arg: 7, Raw: "B7"}},
		{"ForwardMissingNumber", "F", Command{Kind: CommandForward, Arg: 0, Raw: "F"}},
		{"ForwardNotANumber", "Fabc", Command{Kind: CommandForward, Arg: 0, Raw: "Fabc"}},
		{"ForwardTrailingGarbage", "F12x4", Command{Kind: CommandForward, Arg: 12, Raw: "F12x4"}},
		{"BackwardNegative", "B-5", Command{Kind: CommandBackward, Arg: -5, Raw: "B-5"}},
		{"ForwardSaturates", "F99999999999", Command{Kind: CommandForward, Arg: 2147483647, Raw: "F99999999999"}},
		{"Stop", "s", Command{Kind: CommandStop, Raw: "s"}},
		{"Position", "P", Command{Kind: CommandPosition, Raw: "P"}},
		{"Queue", "Q", Command{Kind: CommandQueue, Raw: "Q"}},
		{"Display", "d", Command{Kind: CommandDisplay, Raw: "d"}},
		{"RPM", "RPM12", Command{Kind: CommandRPM, Arg: 12, Raw: "RPM12"}},
		{"Channel", "ch41", Command{Kind: CommandChannel, Arg: 41, Raw: "ch41"}},
		{"ChannelIsNotCalibrate", "CH40", Command{Kind: CommandChannel, Arg: 40, Raw: "CH40"}},
		{"MaxRevolutions", "MAX5", Command{Kind: CommandMaxRevolutions, Arg: 5, Raw: "MAX5"}},
		{"Reset", "reset", Command{Kind: CommandReset, Raw: "reset"}},
		{"Calibrate", "CAL1000,2500", Command{Kind: CommandCalibrate, Arg: 1000, Arg2: 2500, HasArg2: true, Raw: "CAL1000,2500"}},
		{"CalibrateSpaces", "CAL 10, 20", Command{Kind: CommandCalibrate, Arg: 10, Arg2: 20, HasArg2: true, Raw: "CAL 10, 20"}},
		{"CalibrateMissingComma", "CAL1000", Command{Kind: CommandCalibrate, Arg: 1000, Raw: "CAL1000"}},
		{"SetPosition", "SETPOS-20", Command{Kind: CommandSetPosition, Arg: -20, Raw: "SETPOS-20"}},
		{"Help", "help", Command{Kind: CommandHelp, Raw: "help"}},
		{"Empty", "   ", Command{Kind: CommandEmpty, Raw: ""}},
		{"Unknown", "XYZ", Command{Kind: CommandUnknown, Raw: "XYZ"}},
		{"StopWithArgumentIsUnknown", "S1", Command{Kind: CommandUnknown, Raw: "S1"}},
		{"ResetPrefixIsUnknown", "RESE", Command{Kind: CommandUnknown, Raw: "RESE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if got != tt.expected {
				t.Errorf("expected=%+v, got=%+v", tt.expected, got)
			}
		})
	}
}

func TestCommandKindIsMotion(t *testing.T) {
	motion := map[CommandKind]bool{
		CommandForward:  true,
		CommandBackward: true,
		CommandChannel:  true,
	}

	for k := CommandUnknown; k <= CommandHelp; k++ {
		if k.IsMotion() != motion[k] {
			t.Errorf("%s: expected IsMotion=%t", k, motion[k])
		}
	}
}
