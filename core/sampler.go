package core

// Sampler reads the selected sensor, converts it and hands changed values
// to the controller.
type Sampler struct {
	ctrl    *Controller
	adc     ADCDriver
	sources [ChannelCount]ADCChannelID

	// lastMilliVolts is the last voltage seen on any channel, -1 before
	// the first sample.
	lastMilliVolts int
	buf            [MeasurementCount]ADCValue
}

// NewSampler configures every source channel on the ADC.
func NewSampler(ctrl *Controller, adc ADCDriver, sources [ChannelCount]ADCChannelID) (*Sampler, error) {
	for _, ch := range sources {
		if err := adc.ConfigureChannel(ch); err != nil {
			return nil, err
		}
	}
	return &Sampler{
		ctrl:           ctrl,
		adc:            adc,
		sources:        sources,
		lastMilliVolts: -1,
	}, nil
}

// Sample takes MeasurementCount reads from the channel and updates the
// display when the result changed. It returns the displayed value and
// whether it was replaced. Errors never escape: a bad read or an undefined
// temperature keeps the previous value.
func (s *Sampler) Sample(ch SensorChannel) (DisplayValue, bool) {
	if ch >= ChannelCount {
		return s.ctrl.Value(), false
	}
	spec := channelSpecs[ch]

	src := s.sources[ch]
	for i := range s.buf {
		raw, err := s.adc.ReadRaw(src)
		if err != nil {
			Warn("warn: adc read failed on " + spec.name + ": " + err.Error())
			return s.ctrl.Value(), false
		}
		s.buf[i] = raw
	}
	average := Average(s.buf[:])
	RecordTiming(EvtSample, -1, int32(average), int32(ch))

	mv := MilliVolts(average)
	if mv == s.lastMilliVolts {
		return s.ctrl.Value(), false
	}
	s.lastMilliVolts = mv

	candidate, err := spec.convert(average, mv)
	if err != nil {
		Warn("warn: " + err.Error() + " " + utoa(uint32(average)))
		return s.ctrl.Value(), false
	}

	value, clipped := Clip(candidate)
	if clipped {
		if candidate < 0 {
			Warn("warn: " + itoa(candidate) + " below " + itoa(-maxDisplayValue) + ", clipping")
		} else {
			Warn("warn: " + itoa(candidate) + " exceeds " + itoa(maxDisplayValue) + ", clipping")
		}
		RecordTiming(EvtClip, -1, int32(candidate), int32(value))
	}

	next := DisplayValue{Value: value, Precision: spec.precision}
	if next == s.ctrl.Value() {
		return next, false
	}

	DebugPrintln("voltage: " + formatFixed(mv, 3) + " V")
	s.ctrl.SetDisplayValue(next)
	return next, true
}
