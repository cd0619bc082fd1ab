//go:build rp2040 || rp2350

package main

import (
	"segmeter/core"
	"time"
)

// Board wiring. Segment lines a..g and dp sit on GP0..GP7 with the digit
// selects right after them; digit-select 0 is the rightmost digit.
const (
	segmentStartPin = 0
	buttonPin       = core.GPIOPin(16)

	// Shift register wiring, used with the shiftsegments build tag.
	shiftLatchPin = 13
	shiftClockPin = 14
	shiftDataPin  = 15

	selfTestHold = 150 * time.Millisecond
)

var (
	segmentPins = [8]core.GPIOPin{
		segmentStartPin + 0, segmentStartPin + 1, segmentStartPin + 2, segmentStartPin + 3,
		segmentStartPin + 4, segmentStartPin + 5, segmentStartPin + 6, segmentStartPin + 7,
	}

	digitSelectPins = [core.DisplayCount]core.GPIOPin{
		segmentStartPin + 8, segmentStartPin + 9, segmentStartPin + 10, segmentStartPin + 11,
	}

	// ADC0..ADC2 are GP26..GP28.
	sensorChannels = [core.ChannelCount]core.ADCChannelID{
		core.Potentiometer: 0,
		core.LightSensor:   1,
		core.ThermistorNTC: 2,
	}
)
