package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scans returns index->digit for every scan event in the timing ring.
func scans() []TimingEvent {
	var out []TimingEvent
	for _, e := range TimingEvents() {
		if e.EventType == EvtScan {
			out = append(out, e)
		}
	}
	return out
}

func TestDigitAt(t *testing.T) {
	want := map[int]int{3: 1, 2: 2, 1: 3, 0: 4}
	for index, digit := range want {
		assert.Equal(t, digit, digitAt(1234, index))
	}
	assert.Equal(t, 2, digitAt(-512, 0))
	assert.Equal(t, 5, digitAt(-512, 2))
	assert.Equal(t, 0, digitAt(-512, 3))
}

func TestDecimalPoint(t *testing.T) {
	for index := 0; index < DisplayCount; index++ {
		assert.False(t, decimalPoint(index, 0), "precision 0 never sets the point")
		for precision := 1; precision < DisplayCount; precision++ {
			assert.Equal(t, index == precision, decimalPoint(index, precision))
		}
	}
}

func TestScanWalksDigitsLeftToRight(t *testing.T) {
	r := newRig(t)
	r.ctrl.SetDisplayValue(DisplayValue{Value: 1234})
	ClearTimingRing()

	for i := 0; i < DisplayCount; i++ {
		r.tick()
	}

	events := scans()
	require.Len(t, events, DisplayCount)
	wantIndex := []int8{3, 2, 1, 0}
	wantDigit := []int32{1, 2, 3, 4}
	for i, e := range events {
		assert.Equal(t, wantIndex[i], e.Index)
		assert.Equal(t, wantDigit[i], e.Value1)
		assert.Zero(t, e.Value2, "no decimal point")
	}
	assert.Equal(t, DisplayCount-1, r.ctrl.ScanIndex(), "index wraps")
}

func TestScanRendersNegativeTemperatureMagnitude(t *testing.T) {
	r := newRig(t)
	r.ctrl.SetDisplayValue(DisplayValue{Value: -512, Precision: 2})
	ClearTimingRing()
	r.bus.masks = nil

	for i := 0; i < DisplayCount; i++ {
		r.tick()
	}

	events := scans()
	require.Len(t, events, DisplayCount)
	wantDigit := []int32{0, 5, 1, 2}
	wantDP := []int32{0, 1, 0, 0}
	for i, e := range events {
		assert.Equal(t, wantDigit[i], e.Value1, "scan %d", i)
		assert.Equal(t, wantDP[i], e.Value2, "scan %d", i)
	}
	five, _ := EncodeDigit(5, true)
	assert.Equal(t, five, r.bus.masks[1], "-5.12 shows as 05.12")
}

func TestScanLightsOneDigitAtATime(t *testing.T) {
	r := newRig(t)
	r.ctrl.SetDisplayValue(DisplayValue{Value: 3300, Precision: 3})
	r.bus.masks = nil

	for i := 0; i < 3*DisplayCount; i++ {
		r.tick()
		lit := r.lit()
		require.Len(t, lit, 1)
	}

	// 3.300: the point sits on the leftmost digit only.
	require.Len(t, r.bus.masks, 3*DisplayCount)
	assert.Equal(t, uint8(0x30), r.bus.masks[0])
	assert.Equal(t, uint8(0xB0), r.bus.masks[1])
	assert.Equal(t, uint8(0xC0), r.bus.masks[2])
	assert.Equal(t, uint8(0xC0), r.bus.masks[3])
}

func TestRenderDeselectsBeforeSegments(t *testing.T) {
	r := newRig(t)

	r.scanner.Render(7, 2, false)

	require.Len(t, r.gpio.writes, DisplayCount+1)
	for i, w := range r.gpio.writes[:DisplayCount] {
		assert.Equal(t, pinWrite{testSelects[i], false}, w)
	}
	assert.Equal(t, pinWrite{testSelects[2], true}, r.gpio.writes[DisplayCount])
	assert.Equal(t, []uint8{0xF8}, r.bus.masks)
}

func TestRenderAllDigits(t *testing.T) {
	r := newRig(t)

	r.scanner.Render(BlankDigit, AllDigits, false)

	assert.Equal(t, []int{0, 1, 2, 3}, r.lit())
	assert.Equal(t, []uint8{0xFF}, r.bus.masks)
}

func TestRenderIgnoresInvalidDigit(t *testing.T) {
	r := newRig(t)

	r.scanner.Render(17, 0, false)
	r.scanner.Render(-1, 0, true)

	assert.Empty(t, r.gpio.writes)
	assert.Empty(t, r.bus.masks)
}

func TestRenderCountsWriteErrors(t *testing.T) {
	r := newRig(t)
	r.gpio.fail, r.gpio.failPin = true, testSelects[0]

	r.scanner.Render(1, 0, false)
	r.scanner.Render(1, 0, false)

	assert.Equal(t, uint32(4), r.scanner.WriteErrors)
	assert.NotEmpty(t, r.logs)
	assert.Contains(t, r.logs[0], "warn: display write failed")
}

func TestNewScannerRequiresBus(t *testing.T) {
	_, err := NewScanner(NewController(), nil, newRecordingGPIO(), testSelects)
	assert.ErrorIs(t, err, ErrNoPins)
}
