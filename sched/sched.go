// Package sched models delayed callbacks as cancellable tasks. Production
// tasks fire on the Bubble Tea update loop so every callback runs on the same
// goroutine as the rest of the model.
package sched

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Task is a pending callback.
type Task interface {
	// Stop cancels the task. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// FireMsg is delivered to the program when a Loop task is due.
type FireMsg struct {
	ID uint64
}

// Loop is the production Scheduler. Timers post a FireMsg through the sender
// and the model hands it back to Handle, which runs the callback.
type Loop struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	nextID  uint64
	pending map[uint64]*loopTask
	closed  bool
}

type loopTask struct {
	loop  *Loop
	id    uint64
	fn    func()
	timer *time.Timer
}

// NewLoop returns a Loop that posts through send. send may be nil and set
// later with Attach once the program exists.
func NewLoop(send func(tea.Msg)) *Loop {
	return &Loop{send: send, pending: make(map[uint64]*loopTask)}
}

// Attach sets the function used to post FireMsgs, usually tea.Program.Send.
func (l *Loop) Attach(send func(tea.Msg)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.send = send
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return inert{}
	}
	l.nextID++
	t := &loopTask{loop: l, id: l.nextID, fn: fn}
	l.pending[t.id] = t
	id := t.id
	t.timer = time.AfterFunc(d, func() { l.post(id) })
	return t
}

func (l *Loop) post(id uint64) {
	l.mu.Lock()
	send := l.send
	_, ok := l.pending[id]
	l.mu.Unlock()
	if !ok || send == nil {
		return
	}
	send(FireMsg{ID: id})
}

// Handle runs the callback for a FireMsg. It reports whether msg was a
// FireMsg; stale or cancelled ids are consumed without running anything.
func (l *Loop) Handle(msg tea.Msg) bool {
	fire, ok := msg.(FireMsg)
	if !ok {
		return false
	}
	l.mu.Lock()
	t, found := l.pending[fire.ID]
	if found {
		delete(l.pending, fire.ID)
	}
	l.mu.Unlock()
	if found {
		t.fn()
	}
	return true
}

// Pending returns the number of tasks that have not fired or been stopped.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Close cancels every pending task. Tasks scheduled after Close never run.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	for id, t := range l.pending {
		t.timer.Stop()
		delete(l.pending, id)
	}
}

func (t *loopTask) Stop() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	if _, ok := t.loop.pending[t.id]; !ok {
		return false
	}
	delete(t.loop.pending, t.id)
	t.timer.Stop()
	return true
}

type inert struct{}

func (inert) Stop() bool { return false }
