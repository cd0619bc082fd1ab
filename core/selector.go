package core

// Selector cycles the active sensor on button presses. The button pulls
// its pin low.
type Selector struct {
	ctrl    *Controller
	sampler *Sampler
	gpio    GPIODriver
	button  GPIOPin

	// Presses counts accepted presses; Bounces counts edges rejected
	// because the pin had already returned high.
	Presses uint32
	Bounces uint32

	pending bool
}

// NewSelector configures the button pin as a pulled-up input.
func NewSelector(ctrl *Controller, sampler *Sampler, gpio GPIODriver, button GPIOPin) (*Selector, error) {
	if err := gpio.ConfigureInputPullUp(button); err != nil {
		return nil, err
	}
	return &Selector{
		ctrl:    ctrl,
		sampler: sampler,
		gpio:    gpio,
		button:  button,
	}, nil
}

// Arm registers HandleEdge on the falling edge of the button pin.
func (s *Selector) Arm() error {
	return s.gpio.SetInterrupt(s.button, EdgeFalling, func(GPIOPin) {
		s.HandleEdge()
	})
}

// HandleEdge runs in interrupt context and must not allocate. An edge only
// counts if the pin still reads low; it advances the channel and leaves the
// sample to Service.
func (s *Selector) HandleEdge() (SensorChannel, bool) {
	level, err := s.gpio.GetPin(s.button)
	if err != nil || level {
		s.Bounces++
		return s.ctrl.Channel(), false
	}

	s.Presses++
	ch := s.ctrl.NextChannel()

	state := disableInterrupts()
	s.pending = true
	restoreInterrupts(state)

	RecordTiming(EvtPress, -1, int32(ch), 0)
	return ch, true
}

// Service samples the sensor picked by the last accepted press. The main
// loop calls it on every pass; it returns false when no press is waiting.
func (s *Selector) Service() (SensorChannel, bool) {
	state := disableInterrupts()
	pending := s.pending
	s.pending = false
	restoreInterrupts(state)

	ch := s.ctrl.Channel()
	if !pending {
		return ch, false
	}

	DebugPrintln("sensor: " + ch.String())
	s.sampler.Sample(ch)
	return ch, true
}
