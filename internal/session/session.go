package session

import (
	"errors"
	"time"

	"bench_tui/internal/measure"
)

var (
	// ErrAlreadyRunning is returned by Start when a measurement is in progress.
	ErrAlreadyRunning = errors.New("measurement already running")
	// ErrNotRunning is returned by End when no measurement is in progress.
	ErrNotRunning = errors.New("no measurement running")
)

// Session records durations for labeled code sections and renders them as an
// aligned report. At most one measurement runs at a time. A Session is not
// safe for concurrent use; give each goroutine its own.
type Session struct {
	title string

	completed []measure.Measurement
	active    *measure.Measurement
	running   bool

	// Running maxima over completed measurements, used to pad report columns.
	maxLabelLen  int
	maxDurLen    int
	maxIntDigits int
}

func New(title string) *Session {
	return &Session{title: title}
}

func (s *Session) Title() string {
	return s.title
}

// Start begins timing a new section with the given label. Labels are opaque
// caller-supplied text; empty and duplicate labels are accepted.
func (s *Session) Start(label string) error {
	if s.running {
		return ErrAlreadyRunning
	}

	s.active = &measure.Measurement{
		Label:     label,
		StartedAt: time.Now(),
	}
	s.running = true
	return nil
}

// End stops the running measurement, stores it, and returns a copy of it.
func (s *Session) End() (measure.Measurement, error) {
	if !s.running || s.active == nil {
		return measure.Measurement{}, ErrNotRunning
	}

	m := *s.active
	m.StoppedAt = time.Now()
	m.DurationMS = float64(m.StoppedAt.Sub(m.StartedAt)) / float64(time.Millisecond)

	s.record(m)

	s.active = nil
	s.running = false
	return m, nil
}

// record appends a completed measurement and folds it into the column maxima.
func (s *Session) record(m measure.Measurement) {
	s.completed = append(s.completed, m)

	d := formatMS(m.DurationMS)
	if n := len(m.Label); n > s.maxLabelLen {
		s.maxLabelLen = n
	}
	if n := len(d); n > s.maxDurLen {
		s.maxDurLen = n
	}
	if n := digitsBeforeDecimal(d); n > s.maxIntDigits {
		s.maxIntDigits = n
	}
}

// Clear drops all stored measurements and any in-progress one, returning the
// session to its freshly constructed state. Column maxima are reset too, so a
// cleared session renders exactly like a new one.
func (s *Session) Clear() {
	s.completed = nil
	s.active = nil
	s.running = false
	s.maxLabelLen = 0
	s.maxDurLen = 0
	s.maxIntDigits = 0
}

// Measurements returns a copy of the completed measurements in completion
// order. An in-progress measurement is not included.
func (s *Session) Measurements() []measure.Measurement {
	out := make([]measure.Measurement, len(s.completed))
	copy(out, s.completed)
	return out
}

func (s *Session) Running() bool {
	return s.running
}

// Elapsed returns the time since the running measurement started, or 0 when
// no measurement is running.
func (s *Session) Elapsed() time.Duration {
	if !s.running || s.active == nil {
		return 0
	}
	return time.Since(s.active.StartedAt)
}
