package core

import (
	"errors"
	"math"
)

// SensorChannel selects which analog sensor drives the display.
type SensorChannel uint8

const (
	Potentiometer SensorChannel = iota
	LightSensor
	ThermistorNTC

	ChannelCount = 3
)

var (
	// ErrMathDomain is returned when the thermistor formula is undefined
	// for a reading: the ADC sits at either rail.
	ErrMathDomain = errors.New("temperature undefined for average")

	ErrInvalidChannel = errors.New("invalid sensor channel")
)

// channelSpec holds everything that differs between sensors.
type channelSpec struct {
	name      string
	precision int
	convert   func(average ADCValue, milliVolts int) (int, error)
}

var channelSpecs = [ChannelCount]channelSpec{
	Potentiometer: {name: "pot", precision: 3, convert: voltageValue},
	LightSensor:   {name: "ldr", precision: 3, convert: voltageValue},
	ThermistorNTC: {name: "ntc", precision: 2, convert: temperatureValue},
}

func (c SensorChannel) String() string {
	if c >= ChannelCount {
		return "unknown"
	}
	return channelSpecs[c].name
}

// Precision is the number of fractional digits shown for the channel.
func (c SensorChannel) Precision() int {
	if c >= ChannelCount {
		return 0
	}
	return channelSpecs[c].precision
}

// Next returns the channel after c, wrapping after the last one.
func (c SensorChannel) Next() SensorChannel {
	return (c + 1) % ChannelCount
}

// Average returns the truncated mean of the samples.
func Average(samples []ADCValue) ADCValue {
	if len(samples) == 0 {
		return 0
	}
	var sum uint32
	for _, s := range samples {
		sum += uint32(s)
	}
	return ADCValue(sum / uint32(len(samples)))
}

// MilliVolts converts an averaged reading to millivolts, rounded to the
// nearest millivolt.
func MilliVolts(average ADCValue) int {
	return int((uint32(average)*ReferenceMilliVolts + ADCRange/2) / ADCRange)
}

// Temperature converts an averaged reading of the NTC divider to degrees
// Celsius with the beta model. It needs double precision: in float32 a few
// readings land on the wrong side of a tenth.
func Temperature(average ADCValue) (float64, error) {
	if average == 0 || uint32(average) >= ADCRange {
		return 0, ErrMathDomain
	}

	ratio := float64(ADCRange)/float64(average) - 1
	if ratio <= 0 {
		return 0, ErrMathDomain
	}

	t := 1/(math.Log(1/ratio)/BetaCoefficient+1/NominalKelvin) - KelvinOffset
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, ErrMathDomain
	}
	return t, nil
}

func voltageValue(_ ADCValue, milliVolts int) (int, error) {
	return milliVolts, nil
}

// temperatureValue rounds to a tenth of a degree and scales to hundredths.
func temperatureValue(average ADCValue, _ int) (int, error) {
	t, err := Temperature(average)
	if err != nil {
		return 0, err
	}
	tenths := int(math.Round(t * 10))
	DebugPrintln("temp: " + formatFixed(tenths, 1) + " C")
	return tenths * 10, nil
}

// Clip caps the magnitude of a candidate display value to what the digits
// can show. clipped reports whether the value changed.
func Clip(candidate int) (value int, clipped bool) {
	switch {
	case candidate > maxDisplayValue:
		return maxDisplayValue, true
	case candidate < -maxDisplayValue:
		return -maxDisplayValue, true
	}
	return candidate, false
}
