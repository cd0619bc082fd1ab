package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController(t *testing.T) {
	c := NewController()

	assert.Equal(t, DisplayValue{Precision: 3}, c.Value())
	assert.Equal(t, Potentiometer, c.Channel())
	assert.Equal(t, DisplayCount-1, c.ScanIndex())
}

func TestSetChannel(t *testing.T) {
	c := NewController()

	require.NoError(t, c.SetChannel(ThermistorNTC))
	assert.Equal(t, ThermistorNTC, c.Channel())
	assert.ErrorIs(t, c.SetChannel(ChannelCount), ErrInvalidChannel)
	assert.Equal(t, Potentiometer, c.NextChannel())
}

func TestSetDisplayValueBlanksBeforeNewDigits(t *testing.T) {
	r := newRig(t)
	r.ctrl.SetDisplayValue(DisplayValue{Value: 8888})
	r.tick()
	r.tick() // mid-scan: index is now 1
	require.Equal(t, 1, r.ctrl.ScanIndex())
	r.bus.masks = nil
	ClearTimingRing()

	r.ctrl.SetDisplayValue(DisplayValue{Value: 1234})

	assert.Equal(t, DisplayCount-1, r.ctrl.ScanIndex())
	assert.Equal(t, []uint8{0xFF}, r.bus.masks, "one blank frame")
	assert.Equal(t, []int{0, 1, 2, 3}, r.lit(), "blank shown on every digit")
	assert.True(t, r.scan.Running())

	r.tick()
	require.Len(t, r.bus.masks, 2)
	one, _ := EncodeDigit(1, false)
	assert.Equal(t, one, r.bus.masks[1], "first scan after the swap shows the new leftmost digit")

	var kinds []uint8
	for _, e := range TimingEvents() {
		kinds = append(kinds, e.EventType)
	}
	assert.Equal(t, []uint8{EvtPause, EvtBlank, EvtUpdate, EvtResume, EvtScan}, kinds)
}

func TestSetDisplayValueRestartsScanPeriod(t *testing.T) {
	r := newRig(t)
	SetTime(TimerFromUS(ScanPeriodUS) - 1)

	r.ctrl.SetDisplayValue(DisplayValue{Value: 42})

	// The scan was due one tick from now; after the swap it waits a full period.
	r.sched.Dispatch(TimerFromUS(ScanPeriodUS))
	assert.Empty(t, scans())
	r.sched.Dispatch(GetTime() + TimerFromUS(ScanPeriodUS))
	assert.Len(t, scans(), 1)
}

func TestSetDisplayValueWithoutScanner(t *testing.T) {
	c := NewController()

	c.SetDisplayValue(DisplayValue{Value: 77, Precision: 1})

	assert.Equal(t, DisplayValue{Value: 77, Precision: 1}, c.Value())
}

func TestSelfTest(t *testing.T) {
	r := newRig(t)
	frames := 0

	r.ctrl.SelfTest(func() {
		frames++
		assert.False(t, r.scan.Running(), "scanning paused during self-test")
	})

	assert.Equal(t, 2*len(digitMasks), frames)
	require.Len(t, r.bus.masks, 2*len(digitMasks)+1)
	assert.Equal(t, uint8(0xC0), r.bus.masks[0], "0 without point on all digits")
	assert.Equal(t, uint8(0x79), r.bus.masks[1], "1 with point on all digits")
	assert.Equal(t, uint8(0xFF), r.bus.masks[len(r.bus.masks)-1], "ends blank")
	assert.True(t, r.scan.Running())
	assert.Equal(t, DisplayCount-1, r.ctrl.ScanIndex())
}

func TestSelfTestHoldsOffValueSwaps(t *testing.T) {
	r := newRig(t)

	r.ctrl.SelfTest(func() {
		r.ctrl.SetDisplayValue(DisplayValue{Value: 5})
		assert.False(t, r.scan.Running())
	})

	assert.Equal(t, DisplayValue{Value: 5}, r.ctrl.Value())
	assert.True(t, r.scan.Running())
}

func TestSetDisplayValueLeavesStoppedScanStopped(t *testing.T) {
	r := newRig(t)
	r.scan.Stop()
	ClearTimingRing()

	r.ctrl.SetDisplayValue(DisplayValue{Value: 9})

	assert.False(t, r.scan.Running())
	assert.Zero(t, r.sched.Pending())
	assert.Equal(t, DisplayValue{Value: 9}, r.ctrl.Value())
	for _, e := range TimingEvents() {
		assert.NotEqual(t, uint8(EvtResume), e.EventType)
	}
}

func TestSelfTestLeavesStoppedScanStopped(t *testing.T) {
	r := newRig(t)
	r.scan.Stop()

	r.ctrl.SelfTest(nil)

	assert.False(t, r.scan.Running())
	assert.Equal(t, uint8(0xFF), r.bus.masks[len(r.bus.masks)-1])
}
