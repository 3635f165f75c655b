package controller

import (
	"math"
	"strings"
)

// CommandKind identifies a parsed command
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandEmpty
	CommandForward
	CommandBackward
	CommandStop
	CommandPosition
	CommandQueue
	CommandRPM
	CommandChannel
	CommandMaxRevolutions
	CommandReset
	CommandCalibrate
	CommandSetPosition
	CommandDisplay
	CommandHelp
)

func (k CommandKind) String() string {
	switch k {
	case CommandEmpty:
		return "Empty"
	case CommandForward:
		return "Forward"
	case CommandBackward:
		return "Backward"
	case CommandStop:
		return "Stop"
	case CommandPosition:
		return "Position"
	case CommandQueue:
		return "Queue"
	case CommandRPM:
		return "RPM"
	case CommandChannel:
		return "Channel"
	case CommandMaxRevolutions:
		return "MaxRevolutions"
	case CommandReset:
		return "Reset"
	case CommandCalibrate:
		return "Calibrate"
	case CommandSetPosition:
		return "SetPosition"
	case CommandDisplay:
		return "Display"
	case CommandHelp:
		return "Help"
	default:
		fallthrough
	case CommandUnknown:
		return "Unknown"
	}
}

// IsMotion is true for commands that hand a new destination to the motor. These are the only
// commands that wait in the Queue while the motor is busy.
func (k CommandKind) IsMotion() bool {
	return k == CommandForward || k == CommandBackward || k == CommandChannel
}

// Command is a single parsed command line
type Command struct {
	Kind CommandKind
	Arg  int32
	// Arg2 is only used by CAL<a>,<b>. HasArg2 is false when the comma is missing.
	Arg2    int32
	HasArg2 bool
	// Raw is the trimmed input as received, before upper-casing
	Raw string
}

type argType int

const (
	argNone argType = iota
	argOne
	argPair
)

type commandDef struct {
	Keyword     string
	Kind        CommandKind
	Args        argType
	Usage       string
	Description string
}

// commandDefs is ordered so that no keyword is checked after a shorter keyword that prefixes it
var commandDefs = []commandDef{
	{"SETPOS", CommandSetPosition, argOne, "SETPOS<n>", "Force the position counter to n without moving."},
	{"RESET", CommandReset, argNone, "RESET", "Set the position counter to 0."},
	{"RPM", CommandRPM, argOne, "RPM<n>", "Set the motor speed."},
	{"MAX", CommandMaxRevolutions, argOne, "MAX<n>", "Set the maximum number of revolutions."},
	{"CAL", CommandCalibrate, argPair, "CAL<a>,<b>", "Calibrate with CH41 at position a and CH40 at position b."},
	{"CH", CommandChannel, argOne, "CH<n>", "Move to channel n (1-80)."},
	{"HELP", CommandHelp, argNone, "HELP", "Show all available commands."},
	{"F", CommandForward, argOne, "F<n>", "Move forward n steps."},
	{"B", CommandBackward, argOne, "B<n>", "Move backward n steps."},
	{"S", CommandStop, argNone, "S", "Stop the motor and clear queued moves."},
	{"P", CommandPosition, argNone, "P", "Report position, revolution and channel."},
	{"Q", CommandQueue, argNone, "Q", "Report queue length, motor state and bounds."},
	{"D", CommandDisplay, argNone, "D", "Show the current channel on the display."},
}

// Parse turns a command line into a Command. Matching is case-insensitive and ignores
// surrounding whitespace. Numeric arguments are parsed permissively: anything that is not a
// number becomes 0.
func Parse(line string) Command {
	raw := strings.TrimSpace(line)
	cmd := Command{Raw: raw}
	if raw == "" {
		cmd.Kind = CommandEmpty
		return cmd
	}

	upper := strings.ToUpper(raw)
	for _, def := range commandDefs {
		if def.Args == argNone {
			if upper == def.Keyword {
				cmd.Kind = def.Kind
				return cmd
			}
			continue
		}

		rest, ok := strings.CutPrefix(upper, def.Keyword)
		if !ok {
			continue
		}

		cmd.Kind = def.Kind
		switch def.Args {
		case argOne:
			cmd.Arg = parseInt(rest)
		case argPair:
			first, second, found := strings.Cut(rest, ",")
			cmd.Arg = parseInt(first)
			if found {
				cmd.Arg2 = parseInt(second)
				cmd.HasArg2 = true
			}
		}
		return cmd
	}

	cmd.Kind = CommandUnknown
	return cmd
}

// parseInt reads an optional sign and leading digits, stopping at the first other character.
// Missing digits yield 0 and values past the int32 range saturate.
func parseInt(s string) int32 {
	s = strings.TrimLeft(s, " \t")

	negative := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var value int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		value = value*10 + int64(s[i]-'0')
		if value > math.MaxInt32 {
			value = math.MaxInt32
			break
		}
	}

	if negative {
		value = -value
	}
	return int32(value)
}
