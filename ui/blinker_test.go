package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/folio/sched"
)

func TestBlinkerTypesThenBlinks(t *testing.T) {
	clock := sched.NewManual()
	changes := 0
	b := NewBlinker(clock, "Hi!", func() { changes++ })
	b.Start()

	assert.Equal(t, "▁", b.View())
	assert.False(t, b.Done())

	clock.Advance(BlinkerTypeDuration / 3)
	assert.Equal(t, "H", b.Typed())

	clock.Advance(BlinkerTypeDuration - BlinkerTypeDuration/3)
	require.True(t, b.Done())
	assert.Equal(t, "Hi!▁", b.View())
	assert.Equal(t, 3, changes)

	clock.Advance(BlinkInterval)
	assert.Equal(t, "Hi! ", b.View(), "cursor blinks off")
	clock.Advance(BlinkInterval)
	assert.Equal(t, "Hi!▁", b.View())
	assert.Equal(t, 5, changes)
}

func TestBlinkerStop(t *testing.T) {
	clock := sched.NewManual()
	b := NewBlinker(clock, "Hello", nil)
	b.Start()
	clock.Advance(BlinkerTypeDuration / 5)
	b.Stop()
	assert.Zero(t, clock.Pending())

	clock.Advance(10 * time.Second)
	assert.Equal(t, "H", b.Typed())
}

func TestBlinkerRestart(t *testing.T) {
	clock := sched.NewManual()
	b := NewBlinker(clock, "ab", nil)
	b.Start()
	clock.Advance(BlinkerTypeDuration)
	require.True(t, b.Done())

	b.Start()
	assert.Equal(t, "", b.Typed())
	assert.False(t, b.Done())
	assert.Equal(t, 1, clock.Pending())
}

func TestBlinkerEmptyText(t *testing.T) {
	clock := sched.NewManual()
	b := NewBlinker(clock, "", nil)
	b.Start()
	assert.True(t, b.Done())
	assert.Equal(t, "▁", b.View())
}

func TestBlinkerCycle(t *testing.T) {
	clock := sched.NewManual()
	cycles := 0
	b := NewBlinker(clock, "abc", nil)
	b.CycleAfter = time.Second
	b.OnCycleComplete = func() { cycles++ }
	b.Start()

	clock.Advance(BlinkerTypeDuration)
	require.Equal(t, "abc", b.Typed())

	clock.Advance(time.Second)
	assert.Equal(t, "abc", b.Typed(), "erasing starts after the pause")
	assert.Zero(t, cycles)

	clock.Advance(BlinkerEraseDuration / 2)
	assert.Equal(t, "ab▁", b.View(), "cursor stays solid while erasing")

	clock.Advance(BlinkerEraseDuration / 2)
	assert.Equal(t, "", b.Typed())
	assert.Equal(t, 1, cycles)
}
