package core

import "errors"

var ErrNoPins = errors.New("no segment bus")

// Scanner lights one digit per call, walking from the leftmost digit to the
// rightmost. Fast enough calls look like a steady number.
type Scanner struct {
	ctrl    *Controller
	bus     SegmentBus
	gpio    GPIODriver
	selects [DisplayCount]GPIOPin

	// WriteErrors counts failed pin writes during rendering.
	WriteErrors uint32
	warned      bool
}

// NewScanner configures the digit-select lines as outputs, all off.
// selects[i] enables the digit showing 10^i.
func NewScanner(ctrl *Controller, bus SegmentBus, gpio GPIODriver, selects [DisplayCount]GPIOPin) (*Scanner, error) {
	if bus == nil || gpio == nil {
		return nil, ErrNoPins
	}
	for _, p := range selects {
		if err := gpio.ConfigureOutput(p); err != nil {
			return nil, err
		}
		if err := gpio.SetPin(p, false); err != nil {
			return nil, err
		}
	}
	return &Scanner{
		ctrl:    ctrl,
		bus:     bus,
		gpio:    gpio,
		selects: selects,
	}, nil
}

// digitAt extracts the decimal digit at position index of |value|.
func digitAt(value, index int) int {
	if value < 0 {
		value = -value
	}
	return (value / pow10[index]) % 10
}

// decimalPoint reports whether the digit at index carries the point.
func decimalPoint(index, precision int) bool {
	return index == precision && precision != 0
}

// Scan renders the current digit of the displayed value and moves on.
func (s *Scanner) Scan() {
	v, index := s.ctrl.scanState()
	digit := digitAt(v.Value, index)
	dp := decimalPoint(index, v.Precision)
	s.Render(digit, index, dp)
	RecordTiming(EvtScan, int8(index), int32(digit), boolToInt32(dp))
	s.ctrl.advanceScan()
}

// Render shows digit on the digit at index, or on every digit when index
// is AllDigits. All selects go low before the segment lines change so only
// one digit is ever lit with a given pattern. Invalid digits render
// nothing.
func (s *Scanner) Render(digit, index int, dp bool) {
	mask, ok := EncodeDigit(digit, dp)
	if !ok {
		return
	}

	for _, p := range s.selects {
		s.check(s.gpio.SetPin(p, false))
	}

	s.check(s.bus.WriteSegments(mask))

	switch {
	case index == AllDigits:
		for _, p := range s.selects {
			s.check(s.gpio.SetPin(p, true))
		}
	case index >= 0 && index < DisplayCount:
		s.check(s.gpio.SetPin(s.selects[index], true))
	}
}

// check counts write failures and warns once per burst.
func (s *Scanner) check(err error) {
	if err == nil {
		s.warned = false
		return
	}
	s.WriteErrors++
	if !s.warned {
		s.warned = true
		Warn("warn: display write failed: " + err.Error())
	}
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
