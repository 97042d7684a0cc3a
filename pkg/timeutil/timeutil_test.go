package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidClock(t *testing.T) {
	for _, good := range []string{"00:00", "09:30", "15:04", "23:59"} {
		assert.True(t, ValidClock(good), "expected %q to parse", good)
	}
	for _, bad := range []string{"", "24:00", "9:3", "12:60", "noon", "12.30"} {
		assert.False(t, ValidClock(bad), "expected %q to be rejected", bad)
	}
}

func TestClockBefore(t *testing.T) {
	assert.True(t, ClockBefore("09:00", "11:00"))
	assert.False(t, ClockBefore("11:00", "09:00"))
	assert.False(t, ClockBefore("09:00", "09:00"))
	assert.False(t, ClockBefore("junk", "09:00"), "malformed input compares false")
}
