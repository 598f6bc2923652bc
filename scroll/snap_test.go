package scroll

import (
	"testing"
	"time"

	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapHysteresis(t *testing.T) {
	g := &fixedGeometry{vh: 100, rects: map[string]section.Rect{
		"a": {Top: -40, Bottom: 60},
		"b": {Top: 60, Bottom: 160},
	}}
	clock := sched.NewManual()
	c := NewSnapController([]string{"a", "b"}, g, g, clock, SnapOptions{})

	c.Start()
	clock.Advance(SnapDebounce)
	require.Equal(t, "a", c.Current(), "first settle adopts the candidate")
	assert.Empty(t, g.calls, "first settle never scrolls")

	// a drops from 60% to 40% while b is at 70%.
	g.rects["a"] = section.Rect{Top: -60, Bottom: 40}
	g.rects["b"] = section.Rect{Top: 30, Bottom: 130}

	for i := 0; i < 5; i++ {
		c.OnScroll()
		clock.Advance(50 * time.Millisecond)
	}
	assert.Empty(t, g.calls, "still inside the debounce window")

	clock.Advance(SnapDebounce)
	require.Equal(t, []scrollCall{{"b", true}}, g.calls)
	assert.Equal(t, "b", c.Current())
	assert.InDelta(t, 40, c.LastMeasure()["a"], 0.001)
	assert.InDelta(t, 70, c.LastMeasure()["b"], 0.001)

	// The smooth scroll is fire-and-forget; later settles do not snap again.
	c.OnScroll()
	clock.Advance(SnapDebounce)
	c.OnScroll()
	clock.Advance(SnapDebounce)
	assert.Len(t, g.calls, 1)
}

func TestSnapKeepsCurrentAboveThreshold(t *testing.T) {
	g := &fixedGeometry{vh: 100, rects: map[string]section.Rect{
		"a": {Top: 0, Bottom: 100},
		"b": {Top: 100, Bottom: 200},
	}}
	clock := sched.NewManual()
	c := NewSnapController([]string{"a", "b"}, g, g, clock, SnapOptions{})
	c.Start()
	clock.Advance(SnapDebounce)

	g.rects["a"] = section.Rect{Top: -45, Bottom: 55}
	g.rects["b"] = section.Rect{Top: 55, Bottom: 155}
	c.OnScroll()
	clock.Advance(SnapDebounce)

	assert.Empty(t, g.calls)
	assert.Equal(t, "a", c.Current())
}

func TestSnapConvergesWithStack(t *testing.T) {
	g := newStack(20, ids, 20, 20, 20, 20)
	clock := sched.NewManual()
	c := NewSnapController(ids, g, g, clock, SnapOptions{})
	c.Start()
	clock.Advance(SnapDebounce)
	require.Equal(t, section.Home, c.Current())

	g.offset = 13
	c.OnScroll()
	clock.Advance(SnapDebounce)

	require.Equal(t, []scrollCall{{section.Projects, true}}, g.calls)
	assert.Equal(t, 20, g.offset)
	assert.Equal(t, section.Projects, c.Current())
}

func TestSnapGates(t *testing.T) {
	rects := func() *fixedGeometry {
		return &fixedGeometry{vh: 100, rects: map[string]section.Rect{
			"a": {Top: -60, Bottom: 40},
			"b": {Top: 40, Bottom: 140},
		}}
	}

	t.Run("preference off", func(t *testing.T) {
		g := rects()
		clock := sched.NewManual()
		enabled := false
		c := NewSnapController([]string{"a", "b"}, g, g, clock, SnapOptions{
			Enabled: func() bool { return enabled },
		})
		c.Start()
		clock.Advance(SnapDebounce)
		assert.Equal(t, "", c.Current())

		enabled = true
		c.OnScroll()
		clock.Advance(SnapDebounce)
		assert.Equal(t, "b", c.Current())
		assert.Empty(t, g.calls)
	})

	t.Run("mobile flag", func(t *testing.T) {
		g := rects()
		clock := sched.NewManual()
		c := NewSnapController([]string{"a", "b"}, g, g, clock, SnapOptions{
			Mobile:          func() bool { return true },
			DisableOnMobile: true,
		})
		c.Start()
		assert.Zero(t, clock.Pending())
	})

	t.Run("mobile without flag", func(t *testing.T) {
		g := rects()
		clock := sched.NewManual()
		c := NewSnapController([]string{"a", "b"}, g, g, clock, SnapOptions{
			Mobile: func() bool { return true },
		})
		c.Start()
		assert.Equal(t, 1, clock.Pending())
	})

	t.Run("no container", func(t *testing.T) {
		clock := sched.NewManual()
		c := NewSnapController([]string{"a"}, nil, nil, clock, SnapOptions{})
		c.Start()
		assert.Zero(t, clock.Pending())
	})
}

func TestSnapStopCancelsPendingSettle(t *testing.T) {
	g := &fixedGeometry{vh: 100, rects: map[string]section.Rect{"a": {Top: 0, Bottom: 100}}}
	clock := sched.NewManual()
	c := NewSnapController([]string{"a"}, g, g, clock, SnapOptions{})
	c.OnScroll()
	c.Stop()
	assert.NotPanics(t, func() { clock.Advance(time.Second) })
	assert.Equal(t, "", c.Current())

	c.OnScroll()
	assert.Zero(t, clock.Pending())
}
