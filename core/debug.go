package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a display event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Index     int8   // Scan index the event refers to, AllDigits for uniform frames
	Clock     uint32 // System clock at event
	Value1    int32  // Context-dependent value
	Value2    int32  // Context-dependent value
}

// Event type codes
const (
	EvtScan   = 1 // digit rendered by the scanner (v1=digit, v2=dp)
	EvtBlank  = 2 // uniform blank frame during a value swap
	EvtUpdate = 3 // display value replaced (v1=value, v2=precision)
	EvtPause  = 4 // scan task disarmed
	EvtResume = 5 // scan task armed
	EvtSample = 6 // averaged sample taken (v1=average, v2=channel)
	EvtClip   = 7 // candidate clipped (v1=candidate, v2=limit applied)
	EvtPress  = 8 // button press accepted (v1=new channel)
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled gates DebugPrintln; warnings are always written
	debugEnabled bool = false

	// Timing capture ring buffer (non-blocking, for post-mortem)
	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8        // Next write position
	timingEnabled  bool  = true // Always capture timing events

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine.
// Once started, Warn and DebugPrintln queue instead of writing inline, so the
// main loop never waits on USB.
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker(debugChan)
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker(ch <-chan string) {
	for msg := range ch {
		debugPrintln(msg)
	}
}

// Warn writes a diagnostic regardless of the debug switch.
func Warn(msg string) {
	emit(msg)
}

// DebugPrintln writes a debug message when debug output is enabled
func DebugPrintln(msg string) {
	if debugEnabled {
		emit(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message (non-blocking)
		}
	}
}

func emit(msg string) {
	if debugChan != nil {
		DebugAsync(msg)
		return
	}
	debugPrintln(msg)
}

// RecordTiming captures a timing event in the ring buffer
func RecordTiming(eventType uint8, index int8, value1, value2 int32) {
	if !timingEnabled {
		return
	}
	state := disableInterrupts()
	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Index:     index,
		Clock:     GetTime(),
		Value1:    value1,
		Value2:    value2,
	}
	timingRingHead = (idx + 1) % TimingRingSize
	restoreInterrupts(state)
}

// TimingEvents returns the recorded events, oldest first.
func TimingEvents() []TimingEvent {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	events := make([]TimingEvent, 0, TimingRingSize)
	start := timingRingHead
	for i := uint8(0); i < TimingRingSize; i++ {
		evt := timingRing[(start+i)%TimingRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

func eventName(eventType uint8) string {
	switch eventType {
	case EvtScan:
		return "SCAN"
	case EvtBlank:
		return "BLANK"
	case EvtUpdate:
		return "UPDATE"
	case EvtPause:
		return "PAUSE"
	case EvtResume:
		return "RESUME"
	case EvtSample:
		return "SAMPLE"
	case EvtClip:
		return "CLIP"
	case EvtPress:
		return "PRESS"
	default:
		return "UNKNOWN"
	}
}

// DumpTimingRing writes the timing ring through the debug writer. Call it
// from the main loop, never from an interrupt.
func DumpTimingRing() {
	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range TimingEvents() {
		debugPrintln("[TIMING] " + eventName(evt.EventType) +
			" idx=" + itoa(int(evt.Index)) +
			" clock=" + utoa(evt.Clock) +
			" v1=" + itoa(int(evt.Value1)) +
			" v2=" + itoa(int(evt.Value2)))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
}
