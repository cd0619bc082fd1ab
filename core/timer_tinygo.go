//go:build tinygo

package core

import "sync/atomic"

// getSystemTicks returns the current system ticks. The button interrupt
// reads the clock while the main loop updates it.
func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}
