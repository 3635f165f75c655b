package device

// Pin is a digital output. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
}

// StepperConfig has the coil pins of a 4-wire unipolar stepper such as the 28BYJ-48 on a ULN2003 board
type StepperConfig struct {
	Pins     [4]Pin
	StepMode StepMode
	// StepsPerRevolution is in the units of StepMode and is used to convert RPM to a step delay
	StepsPerRevolution int32
	RPM                uint
}

// MatrixConfig describes how channel frames are written to an 8x8 LED matrix driver
type MatrixConfig struct {
	// FirstRowRegister is the register of the top row. Rows use consecutive registers.
	FirstRowRegister byte
}
