//go:build (rp2040 || rp2350) && !shiftsegments

package main

import "segmeter/core"

// newSegmentBus drives the segment lines straight from GP0..GP7.
func newSegmentBus(gpio core.GPIODriver) (core.SegmentBus, error) {
	bus, err := core.NewGPIOSegmentBus(gpio, segmentPins)
	if err != nil {
		return nil, err
	}
	return bus, nil
}
