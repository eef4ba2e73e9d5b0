package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixedClock_Now(t *testing.T) {
	t.Parallel()

	instant := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	clk := FixedClock{Instant: instant}

	assert.Equal(t, instant, clk.Now())
	assert.Equal(t, instant, clk.Now(), "fixed clock never advances")
}
