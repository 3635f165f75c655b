package device

import "github.com/calvinmclean/magloop/controller"

// 3x5 digit glyphs. Each row uses the low 3 bits with bit 2 as the leftmost column.
var digitGlyphs = [10][5]byte{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

const glyphTopRow = 1

// ChannelFrame renders a channel number as two digits on an 8x8 matrix. Bit 7 of each row is the
// leftmost column. A leading zero is left blank.
func ChannelFrame(channel int) [8]byte {
	var frame [8]byte
	if channel < 0 || channel > 99 {
		return frame
	}

	tens, ones := channel/10, channel%10
	for row := range 5 {
		var bits byte
		if tens > 0 {
			bits |= digitGlyphs[tens][row] << 5
		}
		bits |= digitGlyphs[ones][row] << 1
		frame[glyphTopRow+row] = bits
	}
	return frame
}

// RegisterWriter writes a value to a display driver register, like max72xx.Device
type RegisterWriter interface {
	WriteCommand(register, data byte)
}

// MatrixDisplay shows the active channel on an 8x8 LED matrix
type MatrixDisplay struct {
	w        RegisterWriter
	cfg      MatrixConfig
	channel  int
	rendered bool
}

var _ controller.Display = &MatrixDisplay{}

func NewMatrixDisplay(w RegisterWriter, cfg MatrixConfig) *MatrixDisplay {
	return &MatrixDisplay{w: w, cfg: cfg}
}

// ShowChannel implements controller.Display. The matrix is only rewritten when the channel changes.
func (d *MatrixDisplay) ShowChannel(channel int) {
	if d.rendered && channel == d.channel {
		return
	}

	for i, row := range ChannelFrame(channel) {
		d.w.WriteCommand(d.cfg.FirstRowRegister+byte(i), row)
	}
	d.channel = channel
	d.rendered = true
}
