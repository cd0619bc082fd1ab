package core

import (
	"errors"
	"testing"
)

var errPinBroken = errors.New("pin broken")

// pinWrite is one recorded SetPin call.
type pinWrite struct {
	pin   GPIOPin
	level bool
}

// recordingGPIO keeps pin levels and logs every write in order.
type recordingGPIO struct {
	levels     map[GPIOPin]bool
	writes     []pinWrite
	outputs    map[GPIOPin]bool
	pullUps    map[GPIOPin]bool
	interrupts map[GPIOPin]func(GPIOPin)
	failPin    GPIOPin
	fail       bool
}

func newRecordingGPIO() *recordingGPIO {
	return &recordingGPIO{
		levels:     make(map[GPIOPin]bool),
		outputs:    make(map[GPIOPin]bool),
		pullUps:    make(map[GPIOPin]bool),
		interrupts: make(map[GPIOPin]func(GPIOPin)),
	}
}

func (g *recordingGPIO) ConfigureOutput(pin GPIOPin) error {
	g.outputs[pin] = true
	return nil
}

func (g *recordingGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	g.pullUps[pin] = true
	g.levels[pin] = true
	return nil
}

func (g *recordingGPIO) SetPin(pin GPIOPin, value bool) error {
	if g.fail && pin == g.failPin {
		return errPinBroken
	}
	g.levels[pin] = value
	g.writes = append(g.writes, pinWrite{pin, value})
	return nil
}

func (g *recordingGPIO) GetPin(pin GPIOPin) (bool, error) {
	return g.levels[pin], nil
}

func (g *recordingGPIO) SetInterrupt(pin GPIOPin, edge PinEdge, callback func(GPIOPin)) error {
	if edge != EdgeFalling {
		return errors.New("unsupported edge")
	}
	g.interrupts[pin] = callback
	return nil
}

// press drives the button low and fires its falling-edge callback.
func (g *recordingGPIO) press(pin GPIOPin) {
	g.levels[pin] = false
	if cb := g.interrupts[pin]; cb != nil {
		cb(pin)
	}
	g.levels[pin] = true
}

// recordingBus logs every segment mask written.
type recordingBus struct {
	masks []uint8
	err   error
}

func (b *recordingBus) WriteSegments(mask uint8) error {
	b.masks = append(b.masks, mask)
	return b.err
}

// scriptedADC returns fixed readings per channel, cycling through them.
type scriptedADC struct {
	readings   map[ADCChannelID][]ADCValue
	pos        map[ADCChannelID]int
	configured map[ADCChannelID]bool
	reads      int
	err        error
}

func newScriptedADC() *scriptedADC {
	return &scriptedADC{
		readings:   make(map[ADCChannelID][]ADCValue),
		pos:        make(map[ADCChannelID]int),
		configured: make(map[ADCChannelID]bool),
	}
}

func (a *scriptedADC) Init(cfg ADCConfig) error { return nil }

func (a *scriptedADC) ConfigureChannel(ch ADCChannelID) error {
	a.configured[ch] = true
	return nil
}

func (a *scriptedADC) ReadRaw(ch ADCChannelID) (ADCValue, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.reads++
	r := a.readings[ch]
	if len(r) == 0 {
		return 0, nil
	}
	v := r[a.pos[ch]%len(r)]
	a.pos[ch]++
	return v, nil
}

// set makes every read of ch return v.
func (a *scriptedADC) set(ch ADCChannelID, v ...ADCValue) {
	a.readings[ch] = v
	a.pos[ch] = 0
}

var (
	testSegments = [8]GPIOPin{0, 1, 2, 3, 4, 5, 6, 7}
	testSelects  = [DisplayCount]GPIOPin{8, 9, 10, 11}
	testSources  = [ChannelCount]ADCChannelID{0, 1, 2}
	testButton   = GPIOPin(16)
)

// rig is a fully wired device on fake hardware.
type rig struct {
	gpio     *recordingGPIO
	bus      *recordingBus
	adc      *scriptedADC
	ctrl     *Controller
	scanner  *Scanner
	sampler  *Sampler
	selector *Selector
	sched    *Scheduler
	scan     *PeriodicTask
	logs     []string
}

func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		gpio:  newRecordingGPIO(),
		bus:   &recordingBus{},
		adc:   newScriptedADC(),
		ctrl:  NewController(),
		sched: NewScheduler(),
	}

	SetTime(0)
	ClearTimingRing()
	SetDebugEnabled(true)
	SetDebugWriter(func(s string) { r.logs = append(r.logs, s) })
	t.Cleanup(func() {
		SetDebugWriter(nil)
		SetDebugEnabled(false)
	})

	var err error
	r.scanner, err = NewScanner(r.ctrl, r.bus, r.gpio, testSelects)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	r.scan = NewPeriodicTask(r.sched, TimerFromUS(ScanPeriodUS), r.scanner.Scan)
	r.ctrl.AttachScanner(r.scanner, r.scan)
	r.scan.Start(GetTime())

	r.sampler, err = NewSampler(r.ctrl, r.adc, testSources)
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	r.selector, err = NewSelector(r.ctrl, r.sampler, r.gpio, testButton)
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	if err := r.selector.Arm(); err != nil {
		t.Fatalf("Arm: %v", err)
	}

	r.gpio.writes = nil
	r.bus.masks = nil
	return r
}

// tick advances the clock by one scan period and dispatches timers.
func (r *rig) tick() {
	SetTime(GetTime() + TimerFromUS(ScanPeriodUS))
	r.sched.Dispatch(GetTime())
}

// lit returns the digit-select lines that are high.
func (r *rig) lit() []int {
	var on []int
	for i, p := range testSelects {
		if r.gpio.levels[p] {
			on = append(on, i)
		}
	}
	return on
}
