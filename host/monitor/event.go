package monitor

import (
	"strconv"
	"strings"
)

// Kind classifies one diagnostic line from the device.
type Kind int

const (
	Unknown Kind = iota
	Voltage
	Temperature
	Clip
	Sensor
	MathDomain
	Warning
	Timing
)

var kindNames = [...]string{
	Unknown:     "unknown",
	Voltage:     "voltage",
	Temperature: "temperature",
	Clip:        "clip",
	Sensor:      "sensor",
	MathDomain:  "math-domain",
	Warning:     "warning",
	Timing:      "timing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is a decoded diagnostic line.
type Event struct {
	Kind   Kind
	Value  float64 // volts, degrees C, or the clipped candidate
	Max    float64 // clip limit, negative for a clip from below
	Sensor string  // sensor name for Sensor events
	Raw    string
}

// Parse decodes one line. Lines it does not recognise come back as
// Unknown with Raw set.
func Parse(line string) Event {
	line = strings.TrimSpace(line)
	ev := Event{Kind: Unknown, Raw: line}

	switch {
	case strings.HasPrefix(line, "voltage: "):
		if v, ok := number(strings.TrimSuffix(strings.TrimPrefix(line, "voltage: "), " V")); ok {
			ev.Kind, ev.Value = Voltage, v
		}

	case strings.HasPrefix(line, "temp: "):
		if v, ok := number(strings.TrimSuffix(strings.TrimPrefix(line, "temp: "), " C")); ok {
			ev.Kind, ev.Value = Temperature, v
		}

	case strings.HasPrefix(line, "sensor: "):
		ev.Kind, ev.Sensor = Sensor, strings.TrimPrefix(line, "sensor: ")

	case strings.HasPrefix(line, "[TIMING] "):
		ev.Kind = Timing

	case strings.HasPrefix(line, "warn: "):
		ev.Kind = Warning
		body := strings.TrimPrefix(line, "warn: ")
		if rest, ok := strings.CutPrefix(body, "temperature undefined for average "); ok {
			if v, ok := number(rest); ok {
				ev.Kind, ev.Value = MathDomain, v
			}
			break
		}
		if head, ok := strings.CutSuffix(body, ", clipping"); ok {
			candidate, limit, found := strings.Cut(head, " exceeds ")
			if !found {
				candidate, limit, found = strings.Cut(head, " below ")
			}
			if !found {
				break
			}
			v, okV := number(candidate)
			m, okM := number(limit)
			if okV && okM {
				ev.Kind, ev.Value, ev.Max = Clip, v, m
			}
		}
	}
	return ev
}

func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}
