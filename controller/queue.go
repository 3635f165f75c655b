package controller

// Queue holds motion commands received while the motor is busy, in arrival order
type Queue struct {
	commands []string
}

// Push appends a raw command
func (q *Queue) Push(cmd string) {
	q.commands = append(q.commands, cmd)
}

// Pop removes and returns the oldest command
func (q *Queue) Pop() (string, bool) {
	if len(q.commands) == 0 {
		return "", false
	}

	cmd := q.commands[0]
	q.commands[0] = ""
	q.commands = q.commands[1:]
	return cmd, true
}

func (q *Queue) Len() int {
	return len(q.commands)
}

// Clear discards all pending commands
func (q *Queue) Clear() {
	q.commands = nil
}
