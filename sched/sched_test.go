package sched

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual(t *testing.T) {
	t.Run("runs tasks in due order", func(t *testing.T) {
		m := NewManual()
		var got []string
		m.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })
		m.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
		m.AfterFunc(200*time.Millisecond, func() { got = append(got, "c") })

		m.Advance(150 * time.Millisecond)
		assert.Equal(t, []string{"a"}, got)
		m.Advance(50 * time.Millisecond)
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Equal(t, 0, m.Pending())
	})

	t.Run("stop prevents the callback", func(t *testing.T) {
		m := NewManual()
		ran := false
		task := m.AfterFunc(time.Second, func() { ran = true })
		assert.True(t, task.Stop())
		assert.False(t, task.Stop())
		m.Advance(2 * time.Second)
		assert.False(t, ran)
	})

	t.Run("nested scheduling within the window", func(t *testing.T) {
		m := NewManual()
		var at []time.Duration
		m.AfterFunc(100*time.Millisecond, func() {
			at = append(at, m.Now())
			m.AfterFunc(100*time.Millisecond, func() { at = append(at, m.Now()) })
		})
		m.Advance(time.Second)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, at)
		assert.Equal(t, time.Second, m.Now())
	})

	t.Run("close drops pending and later tasks", func(t *testing.T) {
		m := NewManual()
		ran := 0
		m.AfterFunc(time.Millisecond, func() { ran++ })
		m.Close()
		task := m.AfterFunc(time.Millisecond, func() { ran++ })
		assert.False(t, task.Stop())
		m.Advance(time.Second)
		assert.Zero(t, ran)
	})
}

func TestLoop(t *testing.T) {
	msgs := make(chan tea.Msg, 4)
	l := NewLoop(func(msg tea.Msg) { msgs <- msg })

	ran := 0
	l.AfterFunc(time.Millisecond, func() { ran++ })

	var msg tea.Msg
	select {
	case msg = <-msgs:
	case <-time.After(time.Second):
		t.Fatal("timer never posted")
	}
	require.IsType(t, FireMsg{}, msg)
	assert.Zero(t, ran, "callback must wait for Handle")

	assert.True(t, l.Handle(msg))
	assert.Equal(t, 1, ran)

	assert.True(t, l.Handle(msg), "stale fire is consumed")
	assert.Equal(t, 1, ran)

	assert.False(t, l.Handle(tea.KeyMsg{}))
}

func TestLoopStopAndClose(t *testing.T) {
	l := NewLoop(nil)

	ran := false
	task := l.AfterFunc(time.Hour, func() { ran = true })
	assert.Equal(t, 1, l.Pending())
	assert.True(t, task.Stop())
	assert.Equal(t, 0, l.Pending())

	other := l.AfterFunc(time.Hour, func() { ran = true })
	id := other.(*loopTask).id
	l.Close()
	assert.Equal(t, 0, l.Pending())
	assert.False(t, other.Stop())

	assert.True(t, l.Handle(FireMsg{ID: id}))
	assert.False(t, ran)

	late := l.AfterFunc(time.Millisecond, func() { ran = true })
	assert.False(t, late.Stop())
	assert.Equal(t, 0, l.Pending())
}
