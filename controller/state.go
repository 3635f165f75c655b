package controller

// RunState is the motor's run state as last observed by the Controller
type RunState int

const (
	StateIdle RunState = iota
	StateBusy
)

func (s RunState) String() string {
	switch s {
	case StateBusy:
		return "Busy"
	default:
		fallthrough
	case StateIdle:
		return "Idle"
	}
}
