package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerAccumulates(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 10.0, tr.Advance(Right, 10))
	assert.Equal(t, 6.0, tr.Advance(Left, 4))
	assert.Equal(t, -14.0, tr.Advance(Left, 20))
}

func TestTrackerAcceptsAnyDistance(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 0.0, tr.Advance(Right, 0))
	assert.Equal(t, -5.0, tr.Advance(Right, -5))
	assert.Equal(t, 0.0, tr.Advance(Left, -5))
}

func TestTrackersAreIndependent(t *testing.T) {
	a := NewTracker()
	b := NewTracker()

	a.Advance(Right, 100)
	assert.Equal(t, 1.0, b.Advance(Right, 1))
	assert.Equal(t, 101.0, a.Advance(Right, 1))
}

func TestDirectionSign(t *testing.T) {
	assert.Equal(t, -1.0, Left.Sign())
	assert.Equal(t, 1.0, Right.Sign())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}
