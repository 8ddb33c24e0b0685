package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 3, 8, 20, 45, 0, 0, time.UTC))
	sw := NewStopwatch(time.Minute, clock)

	sw.Start()
	assert.True(t, sw.Running)

	clock.Advance(40 * time.Second)
	stopped, by := sw.Stopped()
	assert.False(t, stopped)
	assert.Equal(t, -20*time.Second, by)
	assert.Equal(t, 40*time.Second, sw.Elapsed())

	clock.Advance(20 * time.Second)
	stopped, by = sw.Stopped()
	assert.True(t, stopped)
	assert.Equal(t, time.Duration(0), by)

	sw.Stop()
	assert.False(t, sw.Running)
}
