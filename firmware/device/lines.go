package device

import (
	"strings"

	"github.com/calvinmclean/magloop"
	"github.com/calvinmclean/magloop/controller"
)

const maxLineLength = 64

// ByteReader is a receive buffer such as machine.Serial
type ByteReader interface {
	Buffered() int
	ReadByte() (byte, error)
}

// LineReader collects bytes from a ByteReader into command lines without waiting for input.
// Lines longer than maxLineLength are dropped.
type LineReader struct {
	r        ByteReader
	buf      []byte
	overflow bool
}

var _ controller.LineSource = &LineReader{}

func NewLineReader(r ByteReader) *LineReader {
	return &LineReader{
		r:   r,
		buf: make([]byte, 0, maxLineLength),
	}
}

// ReadLine implements controller.LineSource.
func (l *LineReader) ReadLine() (string, bool) {
	for l.r.Buffered() > 0 {
		b, err := l.r.ReadByte()
		if err != nil {
			return "", false
		}

		if b == magloop.LineTerminator {
			line := strings.TrimRight(string(l.buf), "\r")
			dropped := l.overflow
			l.buf = l.buf[:0]
			l.overflow = false

			if dropped {
				println("error: line too long")
				continue
			}
			return line, true
		}

		if len(l.buf) >= maxLineLength {
			l.overflow = true
			continue
		}
		l.buf = append(l.buf, b)
	}

	return "", false
}
