package ui

import (
	"io"
	"time"
)

// Bell plays vibration patterns as terminal bells, one per "on" pulse.
type Bell struct {
	Out io.Writer
}

// Vibrate rings once for every on-duration in pattern.
func (b Bell) Vibrate(pattern []time.Duration) {
	if b.Out == nil {
		return
	}
	for i := 0; i < len(pattern); i += 2 {
		_, _ = io.WriteString(b.Out, "\a")
	}
}
