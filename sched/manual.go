package sched

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. It is not safe for
// concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	tasks  []*manualTask
	closed bool
}

type manualTask struct {
	m   *Manual
	due time.Duration
	seq uint64
	fn  func()
}

func NewManual() *Manual {
	return &Manual{}
}

// Now returns the time elapsed since the Manual was created.
func (m *Manual) Now() time.Duration { return m.now }

func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if m.closed {
		return inert{}
	}
	m.seq++
	t := &manualTask{m: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running due tasks in order. Tasks
// scheduled by a callback run in the same call if they fall inside d.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.fn()
	}
	m.now = target
}

func (m *Manual) next(limit time.Duration) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	t := m.tasks[0]
	if t.due > limit {
		return nil
	}
	m.tasks = m.tasks[1:]
	return t
}

// Pending returns the number of tasks waiting to run.
func (m *Manual) Pending() int { return len(m.tasks) }

// Close drops pending tasks and makes later scheduling inert.
func (m *Manual) Close() {
	m.closed = true
	m.tasks = nil
}

func (t *manualTask) Stop() bool {
	for i, other := range t.m.tasks {
		if other == t {
			t.m.tasks = append(t.m.tasks[:i], t.m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
