package core

// Display and sampling geometry. These are fixed at build time; the firmware
// has no runtime configuration.
const (
	DisplayCount     = 4  // number of multiplexed 7-segment digits
	MeasurementCount = 16 // raw ADC reads averaged per sample

	ADCRange            = 65535 // full-scale 16-bit ADC reading
	ReferenceMilliVolts = 3300  // ADC reference voltage

	ScanPeriodUS   = 4000   // one digit is lit per scan tick
	SamplePeriodUS = 100000 // main-loop resample interval

	// Beta-model NTC thermistor (10k at 25 C)
	BetaCoefficient = 3950
	NominalKelvin   = 298.15
	KelvinOffset    = 273.15
)

// AllDigits selects every digit-select line at once. Only used for uniform
// patterns such as the blank frame shown while the display value changes.
const AllDigits = -1

// pow10 holds 10^i for every digit position plus one.
var pow10 = func() (p [DisplayCount + 1]int) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// maxDisplayValue is the largest magnitude DisplayCount digits can show.
var maxDisplayValue = pow10[DisplayCount] - 1
