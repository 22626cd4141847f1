// Package anim sweeps the displayed time toward the real time in small steps
// so the hand and hour ring visibly catch up after start-up or a settings
// change.
package anim

import (
	"fmt"
	"time"
)

// Interval is the delay between animation steps.
const Interval = 150 * time.Millisecond

// State is the scheduler's run state.
type State int

const (
	Resting State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// DisplayedTime is the hour and minute the face currently shows.
type DisplayedTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// At returns the displayed time matching t.
func At(t time.Time) DisplayedTime {
	return DisplayedTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (d DisplayedTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

// StepSize returns the number of minutes the next step adds, or 0 when d
// already matches now on the 12-hour dial and infinite rotation is off.
func StepSize(d DisplayedTime, now time.Time, infinite bool) int {
	trueHour, trueMinute := now.Hour(), now.Minute()
	switch {
	case infinite:
		return 5
	case d.Hour%12 != trueHour%12:
		if trueHour%12 < 6 {
			return 10
		}
		return 5
	case d.Minute != trueMinute:
		return 1
	default:
		return 0
	}
}

// Advance performs one animation step. It reports false, leaving d
// unchanged, when there is nothing left to animate.
func Advance(d DisplayedTime, now time.Time, infinite bool) (DisplayedTime, bool) {
	step := StepSize(d, now, infinite)
	if step == 0 {
		return d, false
	}
	if d.Minute < 60-step {
		d.Minute += step
	} else {
		d.Minute = 0
		d.Hour = (d.Hour + 1) % 24
	}
	return d, true
}
