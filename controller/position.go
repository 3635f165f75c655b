package controller

// PositionTracker dead-reckons the absolute position from the motor driver's cumulative step
// counter. There is no encoder, so the position is only as good as the commanded steps.
type PositionTracker struct {
	position  int32
	lastCount int64
}

// NewPositionTracker starts tracking at position 0 with the driver's current counter value
func NewPositionTracker(count int64) *PositionTracker {
	return &PositionTracker{lastCount: count}
}

// Update applies the change in the driver's counter since the last call and returns true if the
// position moved. Counters may run either direction depending on the driver.
func (t *PositionTracker) Update(count int64) bool {
	delta := count - t.lastCount
	t.lastCount = count
	if delta == 0 {
		return false
	}

	t.position += int32(delta)
	return true
}

// Position returns the current absolute position
func (t *PositionTracker) Position() int32 {
	return t.position
}

// Set forces the absolute position without moving the motor
func (t *PositionTracker) Set(position int32) {
	t.position = position
}
