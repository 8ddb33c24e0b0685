package bot

import (
	"errors"
	"testing"
	"time"

	"raidreminder/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestDeleterDeletesAtDeadline(t *testing.T) {
	start := time.Date(2025, time.March, 8, 21, 0, 0, 0, time.UTC)
	clock := common.NewManualClock(start)
	gateway := &mockGateway{}
	gateway.On("ChannelMessageDelete", "chat", "42").Return(nil).Once()

	deleter := NewDeleter(gateway, clock)
	deleter.Schedule("chat", "42", start.Add(60*time.Hour))
	assert.Equal(t, 1, deleter.Pending())

	clock.Advance(60*time.Hour - time.Second)
	gateway.AssertNotCalled(t, "ChannelMessageDelete", "chat", "42")

	clock.Advance(time.Second)
	gateway.AssertExpectations(t)
	assert.Equal(t, 0, deleter.Pending())
}

func TestDeleterFailureIsNotRetried(t *testing.T) {
	start := time.Date(2025, time.March, 8, 21, 0, 0, 0, time.UTC)
	clock := common.NewManualClock(start)
	gateway := &mockGateway{}
	gateway.On("ChannelMessageDelete", "chat", "42").Return(errors.New("Unknown Message")).Once()

	deleter := NewDeleter(gateway, clock)
	deleter.Schedule("chat", "42", start.Add(time.Hour))

	clock.Advance(48 * time.Hour)
	gateway.AssertNumberOfCalls(t, "ChannelMessageDelete", 1)
	assert.Equal(t, 0, deleter.Pending())
	assert.Equal(t, 0, clock.Pending())
}

func TestDeleterPastDeadlineDeletesOnNextTick(t *testing.T) {
	start := time.Date(2025, time.March, 8, 21, 0, 0, 0, time.UTC)
	clock := common.NewManualClock(start)
	gateway := &mockGateway{}
	gateway.On("ChannelMessageDelete", "chat", "42").Return(nil).Once()

	deleter := NewDeleter(gateway, clock)
	deleter.Schedule("chat", "42", start.Add(-time.Hour))

	clock.Advance(0)
	gateway.AssertExpectations(t)
}

func TestDeleterTimersAreIndependent(t *testing.T) {
	start := time.Date(2025, time.March, 8, 21, 0, 0, 0, time.UTC)
	clock := common.NewManualClock(start)
	gateway := &mockGateway{}
	gateway.On("ChannelMessageDelete", "chat", "1").Return(errors.New("gone")).Once()
	gateway.On("ChannelMessageDelete", "chat", "2").Return(nil).Once()

	deleter := NewDeleter(gateway, clock)
	first := deleter.Schedule("chat", "1", start.Add(time.Hour))
	second := deleter.Schedule("chat", "2", start.Add(2*time.Hour))
	assert.NotEqual(t, first, second)

	clock.Advance(3 * time.Hour)
	gateway.AssertExpectations(t)
}

func TestDeleterShutdown(t *testing.T) {
	start := time.Date(2025, time.March, 8, 21, 0, 0, 0, time.UTC)
	clock := common.NewManualClock(start)
	gateway := &mockGateway{}

	deleter := NewDeleter(gateway, clock)
	deleter.Schedule("chat", "1", start.Add(time.Hour))
	deleter.Schedule("chat", "2", start.Add(2*time.Hour))

	assert.Equal(t, 2, deleter.Shutdown())
	assert.Equal(t, 0, deleter.Pending())

	clock.Advance(3 * time.Hour)
	gateway.AssertNotCalled(t, "ChannelMessageDelete", "chat", "1")
	gateway.AssertNotCalled(t, "ChannelMessageDelete", "chat", "2")
}
