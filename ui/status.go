package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the tuner state as last reported in its output
type Status struct {
	Position   int32
	Revolution int32
	Step       int32
	Channel    int
	Queue      int
	Busy       bool
}

// ParseStatus applies the key=value fields of a position or queue report to prev. It returns
// false if line is not a report, in which case prev is returned unchanged.
func ParseStatus(prev Status, line string) (Status, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return prev, false
	}

	next := prev
	found := false
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return prev, false
		}

		var err error
		switch key {
		case "position":
			next.Position, err = parseInt32(value)
		case "revolution":
			next.Revolution, err = parseInt32(value)
		case "step":
			next.Step, err = parseInt32(value)
		case "channel":
			next.Channel, err = strconv.Atoi(value)
		case "queue":
			next.Queue, err = strconv.Atoi(value)
		case "busy":
			next.Busy, err = strconv.ParseBool(value)
		default:
			continue
		}
		if err != nil {
			return prev, false
		}
		found = true
	}

	return next, found
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func (s Status) String() string {
	state := "idle"
	if s.Busy {
		state = "moving"
	}
	return fmt.Sprintf("CH %d | position %d (rev %d, step %d) | queue %d | %s",
		s.Channel, s.Position, s.Revolution, s.Step, s.Queue, state)
}
