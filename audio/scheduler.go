package audio

// ScheduledEvent is one periodic trigger driver. The interval is re-read on
// every fire, so a control change takes effect after the currently pending
// interval elapses; an in-flight wait is never rescheduled.
type ScheduledEvent struct {
	interval func() float64 // seconds
	next     float64
	fire     func(now float64)
}

// Scheduler is an explicit queue of periodic events advanced by the audio
// clock. It replaces wall-clock timers: the render loop pushes time forward
// and due events fire with their exact scheduled timestamps, which makes
// trigger timing deterministic under test and immune to scheduler jitter.
type Scheduler struct {
	events    []*ScheduledEvent
	cancelled bool
}

func newScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a periodic event. The first fire lands one interval after
// the given start time.
func (s *Scheduler) Add(start float64, interval func() float64, fire func(now float64)) {
	if s.cancelled {
		return
	}
	s.events = append(s.events, &ScheduledEvent{
		interval: interval,
		next:     start + interval(),
		fire:     fire,
	})
}

// Advance fires every event due at or before now. Events receive their
// scheduled time, not the advance time, so automation they enqueue lines up
// with the audio clock.
func (s *Scheduler) Advance(now float64) {
	if s.cancelled {
		return
	}
	for _, ev := range s.events {
		for ev.next <= now {
			ev.fire(ev.next)
			ev.next += ev.interval()
		}
	}
}

// Cancel drops every event. After Cancel, Advance fires nothing, ever.
func (s *Scheduler) Cancel() {
	s.cancelled = true
	s.events = nil
}

// Pending reports the number of live events.
func (s *Scheduler) Pending() int { return len(s.events) }
