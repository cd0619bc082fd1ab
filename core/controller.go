package core

// DisplayValue is a fixed-point number: Value scaled by 10^Precision.
type DisplayValue struct {
	Value     int
	Precision int
}

// Controller owns the state shared between the scan task and the sampling
// paths: the displayed value, the selected sensor and the scan position.
// The scanner and sampler only go through its methods.
type Controller struct {
	value   DisplayValue
	channel SensorChannel
	index   int

	scanner *Scanner
	scan    *PeriodicTask
}

// NewController starts at zero on the potentiometer channel.
func NewController() *Controller {
	return &Controller{
		value:   DisplayValue{Precision: Potentiometer.Precision()},
		channel: Potentiometer,
		index:   DisplayCount - 1,
	}
}

// AttachScanner hands the controller the scanner and the task that drives
// it, so value swaps can pause scanning.
func (c *Controller) AttachScanner(s *Scanner, task *PeriodicTask) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.scanner = s
	c.scan = task
}

// Value returns the displayed value.
func (c *Controller) Value() DisplayValue {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return c.value
}

// Channel returns the selected sensor.
func (c *Controller) Channel() SensorChannel {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return c.channel
}

// SetChannel selects a sensor directly.
func (c *Controller) SetChannel(ch SensorChannel) error {
	if ch >= ChannelCount {
		return ErrInvalidChannel
	}
	state := disableInterrupts()
	c.channel = ch
	restoreInterrupts(state)
	return nil
}

// NextChannel advances to the next sensor and returns it.
func (c *Controller) NextChannel() SensorChannel {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.channel = c.channel.Next()
	return c.channel
}

// ScanIndex returns the digit the next scan will light.
func (c *Controller) ScanIndex() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return c.index
}

// SetDisplayValue swaps in a new value. Scanning is paused for the whole
// swap and restarts from the leftmost digit after a blank frame, so no
// scan ever mixes digits of the old and new value. A scan task that was
// stopped stays stopped.
func (c *Controller) SetDisplayValue(v DisplayValue) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	running := c.pauseScan()
	c.index = DisplayCount - 1
	if c.scanner != nil {
		c.scanner.Render(BlankDigit, AllDigits, false)
		RecordTiming(EvtBlank, AllDigits, 0, 0)
	}
	c.value = v
	RecordTiming(EvtUpdate, int8(c.index), int32(v.Value), int32(v.Precision))
	if running {
		c.resumeScan()
	}
}

// scanState is what one scan step needs, read atomically.
func (c *Controller) scanState() (DisplayValue, int) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return c.value, c.index
}

// advanceScan moves to the next digit to the right, wrapping to the
// leftmost one.
func (c *Controller) advanceScan() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.index--
	if c.index < 0 {
		c.index = DisplayCount - 1
	}
}

// pauseScan stops the scan task and reports whether it was running.
func (c *Controller) pauseScan() bool {
	if c.scan == nil || !c.scan.Running() {
		return false
	}
	c.scan.Stop()
	RecordTiming(EvtPause, int8(c.index), 0, 0)
	return true
}

func (c *Controller) resumeScan() {
	c.scan.Start(GetTime())
	RecordTiming(EvtResume, int8(c.index), 0, 0)
}

// SelfTest shows every pattern on all digits, then walks every pattern
// across single digits, holding each frame for hold(). Scanning is off for
// the duration and, if it was running, resumes from the leftmost digit
// afterwards.
func (c *Controller) SelfTest(hold func()) {
	state := disableInterrupts()
	if c.scanner == nil {
		restoreInterrupts(state)
		return
	}
	running := c.pauseScan()
	s := c.scanner
	restoreInterrupts(state)

	if hold == nil {
		hold = func() {}
	}
	for i := range digitMasks {
		s.Render(i, AllDigits, i%2 != 0)
		hold()
	}
	for i := range digitMasks {
		s.Render(i, DisplayCount-1-(i%DisplayCount), true)
		hold()
	}

	state = disableInterrupts()
	defer restoreInterrupts(state)

	c.index = DisplayCount - 1
	s.Render(BlankDigit, AllDigits, false)
	if running {
		c.resumeScan()
	}
}
