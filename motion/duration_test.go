package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	t.Run("simple quotient", func(t *testing.T) {
		assert.Equal(t, 2.0, Duration(100, 50))
	})

	t.Run("tiny result clamps to floor", func(t *testing.T) {
		assert.Equal(t, 0.1, Duration(5, 1000))
	})

	t.Run("zero and negative speed behave like speed 1", func(t *testing.T) {
		want := Duration(42, 1)
		assert.Equal(t, want, Duration(42, 0))
		assert.Equal(t, want, Duration(42, -17))
		assert.Equal(t, want, Duration(42, 0.25))
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		// 12.5 / 100 = 0.125, exactly representable
		assert.Equal(t, 0.13, Duration(12.5, 100))
	})

	t.Run("never below floor", func(t *testing.T) {
		for _, d := range []float64{0, 0.001, 1, 50, 10000} {
			for _, s := range []float64{-5, 0, 1, 99, 100000} {
				assert.GreaterOrEqual(t, Duration(d, s), 0.1, "distance=%v speed=%v", d, s)
			}
		}
	})

	t.Run("at most two decimals", func(t *testing.T) {
		for _, d := range []float64{1, 7, 33.3, 1234.56} {
			for _, s := range []float64{1, 3, 7, 60, 144} {
				got := Duration(d, s)
				scaled := got * 100
				assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "distance=%v speed=%v", d, s)
			}
		}
	})

	t.Run("monotonic in distance and speed", func(t *testing.T) {
		assert.LessOrEqual(t, Duration(100, 40), Duration(200, 40))
		assert.GreaterOrEqual(t, Duration(100, 40), Duration(100, 80))
	})
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.7s", FormatSeconds(0.7))
	assert.Equal(t, "2s", FormatSeconds(2))
	assert.Equal(t, "0.1s", FormatSeconds(0.1))
	assert.Equal(t, "1.25s", FormatSeconds(1.25))
}
