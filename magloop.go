package magloop

const (
	// NumChannels is the number of selectable channels on the tuner
	NumChannels = 80

	// DefaultBaudRate is the serial speed used by the firmware
	DefaultBaudRate = 9600

	LineTerminator = '\n'
)

// Direction is the rotation direction of the capacitor drive
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionBackward:
		return "Backward"
	default:
		fallthrough
	case DirectionForward:
		return "Forward"
	}
}

// Sign returns +1 for forward and -1 for backward so a step count can be applied to a position
func (d Direction) Sign() int32 {
	if d == DirectionBackward {
		return -1
	}
	return 1
}
