package motion

import "time"

// Easing maps a linear fraction in [0,1] to an eased fraction.
// The curves in github.com/fogleman/ease satisfy this signature.
type Easing func(float64) float64

// A Timeline turns a start instant and a duration into per-frame progress.
// It is the runtime counterpart of Duration: compute how long a move should
// take, then sample an eased fraction of it every frame.
type Timeline struct {
	start   time.Time
	seconds float64
	easing  Easing
}

// NewTimeline starts a timeline at start lasting the given number of
// seconds. A nil easing means linear. Durations of zero or less complete
// immediately.
func NewTimeline(start time.Time, seconds float64, easing Easing) Timeline {
	return Timeline{start: start, seconds: seconds, easing: easing}
}

// Progress returns the eased fraction of the timeline elapsed at now,
// clamped to [0,1].
func (tl Timeline) Progress(now time.Time) float64 {
	f := tl.linear(now)
	if tl.easing != nil {
		f = tl.easing(f)
	}
	return f
}

// Done reports whether the timeline has fully elapsed at now.
func (tl Timeline) Done(now time.Time) bool {
	return tl.linear(now) >= 1
}

func (tl Timeline) linear(now time.Time) float64 {
	if tl.seconds <= 0 {
		return 1
	}
	f := now.Sub(tl.start).Seconds() / tl.seconds
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
