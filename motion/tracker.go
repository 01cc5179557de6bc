package motion

// Direction indicates which way a move goes along the horizontal axis.
type Direction int

const (
	Left  Direction = iota // negative offsets
	Right                  // positive offsets
)

// Sign returns the multiplier applied to a distance moved in d.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// A Tracker accumulates a one-dimensional position offset across moves.
// The position is private; callers observe it only through the value
// Advance returns. Separate trackers are fully independent.
type Tracker struct {
	position float64
}

// NewTracker returns a tracker starting at position 0.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Advance moves the tracked position by distance in the given direction and
// returns the new position. Distance is taken as-is; zero and negative
// values simply accumulate.
func (t *Tracker) Advance(dir Direction, distance float64) float64 {
	t.position += dir.Sign() * distance
	return t.position
}
