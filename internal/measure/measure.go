package measure

import "time"

// Unit selects the display unit for durations. Reserved: only milliseconds
// are rendered today.
type Unit int

const (
	Milliseconds Unit = iota
	Nanoseconds
	Seconds
)

// Measurement represents one completed timed section.
type Measurement struct {
	Label      string
	StartedAt  time.Time
	StoppedAt  time.Time
	DurationMS float64
}
