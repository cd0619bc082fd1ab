//go:build rp2040 || rp2350

package main

import (
	"segmeter/core"
	"time"
)

var (
	// Debug counters
	loopPanics uint32
)

func main() {
	UpdateSystemTime()

	core.SetDebugWriter(consoleWriter)
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	gpio := NewRPGPIODriver()
	adc := NewRPAdcDriver()
	if err := adc.Init(core.ADCConfig{Reference: core.ReferenceMilliVolts}); err != nil {
		blinkForever()
	}

	bus, err := newSegmentBus(gpio)
	if err != nil {
		blinkForever()
	}

	ctrl := core.NewController()
	scanner, err := core.NewScanner(ctrl, bus, gpio, digitSelectPins)
	if err != nil {
		blinkForever()
	}

	sched := core.NewScheduler()
	scan := core.NewPeriodicTask(sched, core.TimerFromUS(core.ScanPeriodUS), scanner.Scan)
	ctrl.AttachScanner(scanner, scan)

	sampler, err := core.NewSampler(ctrl, adc, sensorChannels)
	if err != nil {
		blinkForever()
	}
	selector, err := core.NewSelector(ctrl, sampler, gpio, buttonPin)
	if err != nil {
		blinkForever()
	}

	// Show every pattern once before scanning starts.
	ctrl.SelfTest(func() {
		time.Sleep(selfTestHold)
		UpdateSystemTime()
	})
	UpdateSystemTime()
	scan.Start(core.GetTime())

	if err := selector.Arm(); err != nil {
		blinkForever()
	}

	sample := core.NewPeriodicTask(sched, core.TimerFromUS(core.SamplePeriodUS), func() {
		sampler.Sample(ctrl.Channel())
	})
	sampler.Sample(ctrl.Channel())
	sample.Start(core.GetTime())

	for {
		// Recover from panics in the main loop to prevent a firmware crash
		func() {
			defer func() {
				if r := recover(); r != nil {
					loopPanics++
					core.Warn("warn: main loop panic, restarting scan")
					core.DumpTimingRing()
					scan.Start(core.GetTime())
					ctrl.SetDisplayValue(ctrl.Value())
					sample.Start(core.GetTime())
				}
			}()

			UpdateSystemTime()
			sched.Dispatch(core.GetTime())
			selector.Service()
		}()

		// Yield to other goroutines
		time.Sleep(100 * time.Microsecond)
	}
}
