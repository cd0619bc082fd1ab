package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// PinEdge selects which level transition fires a pin interrupt.
type PinEdge uint8

const (
	EdgeFalling PinEdge = iota + 1
	EdgeRising
)

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// SetInterrupt registers callback to run in interrupt context whenever
	// the pin sees the given edge. Only one callback per pin is kept.
	SetInterrupt(pin GPIOPin, edge PinEdge, callback func(GPIOPin)) error
}
