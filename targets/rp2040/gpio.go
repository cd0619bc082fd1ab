//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"segmeter/core"
)

var errUnsupportedEdge = errors.New("unsupported pin edge")

// RPGPIODriver implements core.GPIODriver with TinyGo's machine.Pin.
type RPGPIODriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureInputPullUp configures a pin as an input with pull-up resistor
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		// Pin isn't configured - configure it first
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}

	machinePin.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return false, nil
	}
	return machinePin.Get(), nil
}

// SetInterrupt attaches callback to a pin-change interrupt. It runs in
// interrupt context.
func (d *RPGPIODriver) SetInterrupt(pin core.GPIOPin, edge core.PinEdge, callback func(core.GPIOPin)) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureInputPullUp(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}

	var change machine.PinChange
	switch edge {
	case core.EdgeFalling:
		change = machine.PinFalling
	case core.EdgeRising:
		change = machine.PinRising
	default:
		return errUnsupportedEdge
	}

	return machinePin.SetInterrupt(change, func(p machine.Pin) {
		callback(core.GPIOPin(p))
	})
}
