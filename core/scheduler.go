package core

// Timer represents a scheduled event
type Timer struct {
	WakeTime uint32
	Handler  func(*Timer) uint8
	Next     *Timer

	queued bool
}

const (
	SFDone       = 0
	SFReschedule = 1
)

// Scheduler keeps timers sorted by wake time and runs them from the main
// loop. All list manipulation happens with interrupts disabled so a pin
// interrupt may start or stop tasks while the main loop dispatches.
type Scheduler struct {
	head        *Timer
	now         uint32 // time passed to the running Dispatch
	dispatching bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add inserts a timer. A timer that is already queued is moved to its new
// wake time.
func (s *Scheduler) Add(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.queued {
		s.unlink(t)
	}
	s.insert(t)
}

// Remove unlinks a timer. Removing a timer that is not queued does nothing.
func (s *Scheduler) Remove(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if t.queued {
		s.unlink(t)
	}
}

// Pending returns the number of queued timers.
func (s *Scheduler) Pending() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	n := 0
	for t := s.head; t != nil; t = t.Next {
		n++
	}
	return n
}

// insert inserts a timer in sorted order by WakeTime. While Dispatch runs,
// a timer queued at or before the dispatch time moves to the next tick so
// it cannot fire twice in one pass.
func (s *Scheduler) insert(t *Timer) {
	if s.dispatching && timeReached(t.WakeTime, s.now) {
		t.WakeTime = s.now + 1
	}
	t.queued = true
	if s.head == nil || int32(t.WakeTime-s.head.WakeTime) < 0 {
		t.Next = s.head
		s.head = t
		return
	}

	current := s.head
	for current.Next != nil && int32(current.Next.WakeTime-t.WakeTime) <= 0 {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

func (s *Scheduler) unlink(t *Timer) {
	if s.head == t {
		s.head = t.Next
	} else {
		for prev := s.head; prev != nil; prev = prev.Next {
			if prev.Next == t {
				prev.Next = t.Next
				break
			}
		}
	}
	t.Next = nil
	t.queued = false
}

// Dispatch runs every timer whose WakeTime is at or before now.
func (s *Scheduler) Dispatch(now uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	s.now = now
	s.dispatching = true
	defer func() { s.dispatching = false }()

	for s.head != nil && timeReached(s.head.WakeTime, now) {
		timer := s.head
		s.head = timer.Next
		timer.Next = nil // Clear Next pointer to avoid circular references
		timer.queued = false

		result := timer.Handler(timer)

		// A handler may have re-queued its own timer already.
		if result == SFReschedule && !timer.queued {
			s.insert(timer)
		}
	}
}

// PeriodicTask runs Run every Period ticks once started. It is the arm /
// disarm handle for the display scan and the sample loop.
type PeriodicTask struct {
	Period uint32
	Run    func()

	sched   *Scheduler
	timer   Timer
	running bool
}

// NewPeriodicTask creates a stopped task on the given scheduler.
func NewPeriodicTask(s *Scheduler, period uint32, run func()) *PeriodicTask {
	p := &PeriodicTask{Period: period, Run: run, sched: s}
	p.timer.Handler = p.fire
	return p
}

// Start arms the task so that it first runs one period after now.
func (p *PeriodicTask) Start(now uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	p.running = true
	p.timer.WakeTime = now + p.Period
	p.sched.Add(&p.timer)
}

// Stop disarms the task. A stopped task never runs until started again.
func (p *PeriodicTask) Stop() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	p.running = false
	p.sched.Remove(&p.timer)
}

// Running reports whether the task is armed.
func (p *PeriodicTask) Running() bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return p.running
}

func (p *PeriodicTask) fire(t *Timer) uint8 {
	if !p.running {
		return SFDone
	}
	p.Run()
	if !p.running {
		return SFDone
	}
	if !t.queued {
		t.WakeTime += p.Period
		// Skip missed periods instead of bursting to catch up.
		if timeReached(t.WakeTime, p.sched.now) {
			t.WakeTime = p.sched.now + p.Period
		}
	}
	return SFReschedule
}
