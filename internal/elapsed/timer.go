package elapsed

import (
	"math"
	"strconv"
	"time"
)

// Timer is a stopwatch. It is not safe for concurrent use.
type Timer struct {
	now     func() time.Time
	start   time.Time
	stop    time.Time
	running bool
}

// NewTimer returns a stopped timer.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// Start starts measuring.
func (t *Timer) Start() {
	t.start = t.now()
	t.stop = time.Time{}
	t.running = true
}

// Stop ends the measure.
func (t *Timer) Stop() {
	t.stop = t.now()
	t.running = false
}

// Reset restarts the timer from now.
func (t *Timer) Reset() {
	t.Start()
}

// Running reports whether the timer was started and not stopped since.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the measured duration, up to now if the timer is
// still running.
func (t *Timer) Elapsed() time.Duration {
	stop := t.stop
	if stop.IsZero() {
		stop = t.now()
	}
	return stop.Sub(t.start)
}

func (t *Timer) Format() string { return Format(t.Elapsed()) }
func (t *Timer) Short() string  { return Short(t.Elapsed()) }
func (t *Timer) Clock() string  { return Clock(t.Elapsed(), true) }

// String returns the elapsed seconds with at most three decimals.
func (t *Timer) String() string {
	s := math.Round(t.Elapsed().Seconds()*1000) / 1000
	return strconv.FormatFloat(s, 'f', -1, 64)
}
