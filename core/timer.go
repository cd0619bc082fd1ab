package core

// TimerFreq is the tick rate of the system clock. The RP2040 timer counts
// microseconds.
const TimerFreq = 1000000

var systemTicks uint32

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * TimerFreq / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000000 / TimerFreq)
}

// timeReached reports whether wake is at or before now, tolerating
// wraparound of the 32-bit tick counter.
func timeReached(wake, now uint32) bool {
	return int32(wake-now) <= 0
}
