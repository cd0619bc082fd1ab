package core

// ADCChannelID identifies a logical ADC channel.
type ADCChannelID uint8

// ADCValue is the "raw" ADC reading as seen by the rest of the firmware.
// Convention here: 16-bit value, even if underlying hardware is 12 bits.
type ADCValue uint16

// ADCConfig is the high-level config the core cares about.
type ADCConfig struct {
	Reference  uint32 // reference voltage in millivolts, 0 for the board default
	Resolution uint32 // hardware resolution in bits, 0 for the board default
}

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// Init powers up and configures the ADC peripheral.
	Init(cfg ADCConfig) error

	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw performs a one-shot sample from the given channel.
	// Returns a 16-bit scaled value (e.g. 12-bit HW value left-shifted).
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
