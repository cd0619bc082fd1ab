package core

// Segment line levels for a common-anode display: bit i drives segment
// a..g (bit 0 = a), a cleared bit lights the segment. Bit 7 is the decimal
// point line, also active low.
var digitMasks = [17]uint8{
	0x40, // 0
	0x79, // 1
	0x24, // 2
	0x30, // 3
	0x19, // 4
	0x12, // 5
	0x02, // 6
	0x78, // 7
	0x00, // 8
	0x10, // 9
	0x08, // A
	0x03, // b
	0x46, // C
	0x21, // d
	0x06, // E
	0x0E, // F
	0x7F, // blank
}

// BlankDigit is the table entry with every segment off.
const BlankDigit = 16

const segmentDP = 1 << 7

// EncodeDigit returns the segment line levels for digit (0-15, or
// BlankDigit) with the decimal point on or off. ok is false for anything
// outside the table.
func EncodeDigit(digit int, dp bool) (mask uint8, ok bool) {
	if digit < 0 || digit >= len(digitMasks) {
		return 0, false
	}
	mask = digitMasks[digit]
	if !dp {
		mask |= segmentDP
	}
	return mask, true
}

// SegmentBus drives the eight shared segment lines.
type SegmentBus interface {
	WriteSegments(mask uint8) error
}

// GPIOSegmentBus drives each segment line from its own GPIO, a..g then dp.
type GPIOSegmentBus struct {
	gpio GPIODriver
	pins [8]GPIOPin
}

// NewGPIOSegmentBus configures the pins as outputs with every segment off.
func NewGPIOSegmentBus(gpio GPIODriver, pins [8]GPIOPin) (*GPIOSegmentBus, error) {
	for _, p := range pins {
		if err := gpio.ConfigureOutput(p); err != nil {
			return nil, err
		}
		if err := gpio.SetPin(p, true); err != nil {
			return nil, err
		}
	}
	return &GPIOSegmentBus{gpio: gpio, pins: pins}, nil
}

// WriteSegments sets every line and returns the first error seen.
func (b *GPIOSegmentBus) WriteSegments(mask uint8) error {
	var first error
	for i, p := range b.pins {
		if err := b.gpio.SetPin(p, (mask>>i)&1 == 1); err != nil && first == nil {
			first = err
		}
	}
	return first
}
