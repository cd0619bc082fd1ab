//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"segmeter/core"
)

var errUnsupportedChannel = errors.New("unsupported ADC channel")

// RpAdcDriver implements core.ADCDriver using TinyGo's machine.ADC.
type RpAdcDriver struct {
	cfg      machine.ADCConfig
	channels [4]*machine.ADC
}

// NewRPAdcDriver constructs the driver but does not Init() it yet.
func NewRPAdcDriver() *RpAdcDriver {
	return &RpAdcDriver{}
}

func (d *RpAdcDriver) Init(cfg core.ADCConfig) error {
	d.cfg = machine.ADCConfig{
		Reference:  cfg.Reference,
		Resolution: cfg.Resolution,
	}
	machine.InitADC()
	return nil
}

// ConfigureChannel sets ADC0..ADC3 (GP26..GP29) to analog input.
func (d *RpAdcDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if int(ch) >= len(d.channels) {
		return errUnsupportedChannel
	}
	if d.channels[ch] != nil {
		// already configured
		return nil
	}

	pins := [...]machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3}
	adc := machine.ADC{Pin: pins[ch]}
	if err := adc.Configure(d.cfg); err != nil {
		return err
	}
	d.channels[ch] = &adc
	return nil
}

// ReadRaw returns one conversion scaled to 16 bits. TinyGo left-shifts
// the 12-bit result, so full scale reads 0xFFF0.
func (d *RpAdcDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	if int(ch) >= len(d.channels) {
		return 0, errUnsupportedChannel
	}
	adc := d.channels[ch]
	if adc == nil {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		adc = d.channels[ch]
	}
	return core.ADCValue(adc.Get()), nil
}
