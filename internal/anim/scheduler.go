package anim

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Token identifies one armed timer. Fires carrying an old token are ignored.
type Token uint64

// Scheduler drives the displayed time with a re-arming timer.
//
// Timer callbacks only hand a Token to Dispatch; the host must call Fire
// from its own event loop so that steps never race with rendering. All
// other methods must be called from that same loop.
type Scheduler struct {
	clock    clockwork.Clock
	dispatch func(Token)

	state     State
	displayed DisplayedTime
	infinite  bool
	gen       Token
	timer     clockwork.Timer
	steps     int
}

// NewScheduler returns a resting scheduler. dispatch is called from the
// timer goroutine.
func NewScheduler(clock clockwork.Clock, dispatch func(Token)) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{clock: clock, dispatch: dispatch}
}

// Start cancels any running sweep, sets the displayed time to from and
// performs the first step immediately. It reports whether the scheduler is
// animating afterwards.
func (s *Scheduler) Start(from DisplayedTime, infinite bool) bool {
	s.Stop()
	s.displayed = from
	s.infinite = infinite
	s.state = Animating
	s.step()
	return s.state == Animating
}

// Fire runs the step belonging to tok. It reports whether the displayed
// time changed; stale or unexpected tokens are no-ops.
func (s *Scheduler) Fire(tok Token) bool {
	if s.state != Animating || tok != s.gen {
		return false
	}
	s.timer = nil
	before := s.displayed
	s.step()
	return s.displayed != before
}

// Stop cancels the pending timer, if any, and rests the scheduler. It is
// safe in any state.
func (s *Scheduler) Stop() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = Resting
}

// State returns the run state.
func (s *Scheduler) State() State { return s.state }

// Animating reports whether a sweep is in progress.
func (s *Scheduler) Animating() bool { return s.state == Animating }

// Displayed returns the displayed time.
func (s *Scheduler) Displayed() DisplayedTime { return s.displayed }

// SetDisplayed overrides the displayed time without touching the timer.
func (s *Scheduler) SetDisplayed(d DisplayedTime) { s.displayed = d }

// Steps returns the number of steps taken since construction.
func (s *Scheduler) Steps() int { return s.steps }

func (s *Scheduler) step() {
	next, moved := Advance(s.displayed, s.clock.Now(), s.infinite)
	if !moved {
		s.state = Resting
		return
	}
	s.displayed = next
	s.steps++
	s.arm()
}

func (s *Scheduler) arm() {
	s.gen++
	tok := s.gen
	dispatch := s.dispatch
	s.timer = s.clock.AfterFunc(Interval, func() {
		if dispatch != nil {
			dispatch(tok)
		}
	})
}

// Remaining estimates how long the current sweep still takes when real time
// does not move. It returns 0 when resting or rotating forever.
func (s *Scheduler) Remaining() time.Duration {
	if s.state != Animating || s.infinite {
		return 0
	}
	now := s.clock.Now()
	d := s.displayed
	n := 0
	for {
		next, moved := Advance(d, now, false)
		if !moved {
			return time.Duration(n) * Interval
		}
		d = next
		n++
	}
}
