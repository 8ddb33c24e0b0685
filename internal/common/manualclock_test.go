package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	var fired []string
	clock.AfterFunc(2*time.Hour, func() { fired = append(fired, "second") })
	clock.AfterFunc(time.Hour, func() { fired = append(fired, "first") })
	clock.AfterFunc(3*time.Hour, func() { fired = append(fired, "third") })

	clock.Advance(2 * time.Hour)
	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 1, clock.Pending())
	assert.Equal(t, start.Add(2*time.Hour), clock.Now())
}

func TestManualClockStoppedTimerNeverFires(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	fired := false
	timer := clock.AfterFunc(time.Minute, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clock.Advance(time.Hour)
	assert.False(t, fired)
	assert.Equal(t, 0, clock.Pending())
}
