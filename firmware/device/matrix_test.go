package device

import "testing"

type fakeRegisters struct {
	writes map[byte]byte
	count  int
}

func (f *fakeRegisters) WriteCommand(register, data byte) {
	if f.writes == nil {
		f.writes = map[byte]byte{}
	}
	f.writes[register] = data
	f.count++
}

func TestChannelFrame(t *testing.T) {
	tests := []struct {
		name     string
		channel  int
		expected [8]byte
	}{
		{
			"41",
			41,
			[8]byte{0, 0b10100100, 0b10101100, 0b11100100, 0b00100100, 0b00101110, 0, 0},
		},
		{
			"SingleDigit",
			7,
			[8]byte{0, 0b00001110, 0b00000010, 0b00000100, 0b00000100, 0b00000100, 0, 0},
		},
		{
			"80",
			80,
			[8]byte{0, 0b11101110, 0b10101010, 0b11101010, 0b10101010, 0b11101110, 0, 0},
		},
		{"OutOfRange", 100, [8]byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChannelFrame(tt.channel)
			if got != tt.expected {
				t.Errorf("expected=%08b, got=%08b", tt.expected, got)
			}
		})
	}
}

func TestMatrixDisplay(t *testing.T) {
	regs := &fakeRegisters{}
	d := NewMatrixDisplay(regs, MatrixConfig{FirstRowRegister: 0x01})

	d.ShowChannel(41)
	if regs.count != 8 {
		t.Errorf("expected 8 register writes, got %d", regs.count)
	}
	frame := ChannelFrame(41)
	for i, row := range frame {
		if regs.writes[byte(i+1)] != row {
			t.Errorf("row %d: expected=%08b, got=%08b", i, row, regs.writes[byte(i+1)])
		}
	}

	d.ShowChannel(41)
	if regs.count != 8 {
		t.Errorf("same channel should not be redrawn, got %d writes", regs.count)
	}

	d.ShowChannel(42)
	if regs.count != 16 {
		t.Errorf("expected redraw for new channel, got %d writes", regs.count)
	}
}
