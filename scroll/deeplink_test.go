package scroll

import (
	"testing"
	"time"

	"github.com/kastheco/folio/sched"
	"github.com/kastheco/folio/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deepLinkRegistry() *section.Registry {
	return section.NewRegistry(
		section.Descriptor{ID: section.Home},
		section.Descriptor{ID: section.Projects},
		section.Descriptor{ID: section.Experience},
	)
}

func TestDeepLinkFound(t *testing.T) {
	g := newStack(20, []string{section.Home, section.Projects, section.Experience}, 20, 20, 20)
	loc := &fakeLocation{fragment: "#projects"}
	clock := sched.NewManual()
	d := NewDeepLinkResolver(deepLinkRegistry(), g, g, loc, clock)
	var resolved string
	d.OnResolved = func(id string) { resolved = id }

	d.Resolve()

	require.Equal(t, []scrollCall{{section.Projects, false}}, g.calls, "jump without animation")
	assert.Equal(t, 20, g.offset)
	assert.Equal(t, "", loc.fragment)
	assert.Equal(t, []string{""}, loc.replaced)
	assert.Equal(t, section.Projects, resolved)

	d.Resolve()
	assert.Len(t, g.calls, 1, "only on mount")
}

func TestDeepLinkUnknownSection(t *testing.T) {
	g := newStack(20, []string{section.Home}, 20)
	loc := &fakeLocation{fragment: "#doesnotexist"}
	clock := sched.NewManual()
	d := NewDeepLinkResolver(deepLinkRegistry(), g, g, loc, clock)

	assert.NotPanics(t, d.Resolve)
	clock.Advance(10 * time.Second)

	assert.Empty(t, g.calls)
	assert.Equal(t, 0, g.offset)
	assert.Equal(t, "#doesnotexist", loc.fragment)
	assert.Empty(t, loc.replaced)
}

func TestDeepLinkRetriesUntilLaidOut(t *testing.T) {
	// Experience is registered but not laid out yet.
	g := newStack(20, []string{section.Home, section.Projects}, 20, 20)
	loc := &fakeLocation{fragment: "experience"}
	clock := sched.NewManual()
	d := NewDeepLinkResolver(deepLinkRegistry(), g, g, loc, clock)

	d.Resolve()
	assert.Equal(t, 1, d.Attempts())
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, d.Attempts())

	g.ids = append(g.ids, section.Experience)
	g.heights[section.Experience] = 20
	clock.Advance(200 * time.Millisecond)

	require.Equal(t, []scrollCall{{section.Experience, false}}, g.calls)
	assert.Equal(t, "", loc.fragment)
	assert.Zero(t, clock.Pending())
}

func TestDeepLinkGivesUpSilently(t *testing.T) {
	g := newStack(20, []string{section.Home}, 20)
	loc := &fakeLocation{fragment: "#projects"}
	clock := sched.NewManual()
	d := NewDeepLinkResolver(deepLinkRegistry(), g, g, loc, clock)

	d.Resolve()
	clock.Advance(time.Minute)

	assert.Equal(t, len(DeepLinkBackoff), d.Attempts())
	assert.Zero(t, clock.Pending())
	assert.Empty(t, g.calls)
	assert.Equal(t, "#projects", loc.fragment)
}

func TestDeepLinkStopCancelsRetry(t *testing.T) {
	g := newStack(20, []string{section.Home}, 20)
	loc := &fakeLocation{fragment: "#projects"}
	clock := sched.NewManual()
	d := NewDeepLinkResolver(deepLinkRegistry(), g, g, loc, clock)

	d.Resolve()
	require.Equal(t, 1, clock.Pending())
	d.Stop()
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Minute)
	assert.Equal(t, 1, d.Attempts())
}

func TestDeepLinkNoFragment(t *testing.T) {
	g := newStack(20, []string{section.Home}, 20)
	clock := sched.NewManual()
	NewDeepLinkResolver(deepLinkRegistry(), g, g, &fakeLocation{}, clock).Resolve()
	NewDeepLinkResolver(deepLinkRegistry(), g, g, nil, clock).Resolve()
	assert.Zero(t, clock.Pending())
	assert.Empty(t, g.calls)
}
