// Package elapsed formats durations for humans and measures them with a
// simple stopwatch.
package elapsed

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Below this many seconds durations are shown in milliseconds.
	millisUntil = 5
	// Below this many units (seconds, then minutes) the unit is kept.
	unitUntil = 90
)

// Format returns d in a long form, e.g. "1 minute, 37 seconds".
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	seconds := ms / 1000
	switch {
	case seconds < millisUntil:
		return fmt.Sprintf("%d milliseconds", ms)
	case seconds < unitUntil:
		return plural(seconds, "second")
	}

	var b strings.Builder
	minutes := seconds / 60
	if minutes < unitUntil {
		b.WriteString(plural(minutes, "minute"))
		if s := seconds % 60; s != 0 {
			b.WriteString(", ")
			b.WriteString(plural(s, "second"))
		}
		return b.String()
	}
	b.WriteString(plural(minutes/60, "hour"))
	if m := minutes % 60; m != 0 {
		b.WriteString(", ")
		b.WriteString(plural(m, "minute"))
	}
	return b.String()
}

// Short returns d in a compact form, e.g. "1mn, 37s".
func Short(d time.Duration) string {
	ms := d.Milliseconds()
	seconds := ms / 1000
	switch {
	case seconds < millisUntil:
		return fmt.Sprintf("%dms", ms)
	case seconds < unitUntil:
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < unitUntil {
		if s := seconds % 60; s > 0 {
			return fmt.Sprintf("%dmn, %ds", minutes, s)
		}
		return fmt.Sprintf("%dmn", minutes)
	}
	if m := minutes % 60; m > 0 {
		return fmt.Sprintf("%dh, %dmn", minutes/60, m)
	}
	return fmt.Sprintf("%dh", minutes/60)
}

// Clock returns d as [HH:]MM:SS, followed by :mmm when showMillis is set.
// Hours are omitted when zero.
func Clock(d time.Duration, showMillis bool) string {
	ms := d.Milliseconds()
	hours := ms / int64(time.Hour/time.Millisecond)
	minutes := ms / int64(time.Minute/time.Millisecond) % 60
	seconds := ms / 1000 % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%02d:", hours)
	}
	fmt.Fprintf(&b, "%02d:%02d", minutes, seconds)
	if showMillis {
		fmt.Fprintf(&b, ":%03d", ms%1000)
	}
	return b.String()
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
