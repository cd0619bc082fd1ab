//go:build (rp2040 || rp2350) && shiftsegments

package main

import (
	"machine"
	"segmeter/core"

	"tinygo.org/x/drivers/shiftregister"
)

// shiftSegmentBus clocks the segment levels into a 74HC595 whose outputs
// Q0..Q7 drive segments a..g and dp. It frees GP0..GP7 for other use.
type shiftSegmentBus struct {
	sr *shiftregister.Device
}

// newSegmentBus configures the shift register with every segment off.
func newSegmentBus(core.GPIODriver) (core.SegmentBus, error) {
	sr := shiftregister.New(
		shiftregister.EIGHT_BITS,
		machine.Pin(shiftLatchPin),
		machine.Pin(shiftClockPin),
		machine.Pin(shiftDataPin),
	)
	sr.Configure()
	sr.WriteMask(0xFF)
	return &shiftSegmentBus{sr: sr}, nil
}

func (b *shiftSegmentBus) WriteSegments(mask uint8) error {
	b.sr.WriteMask(uint32(mask))
	return nil
}
