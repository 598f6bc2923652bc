package ui

import (
	"time"

	"github.com/kastheco/folio/sched"
)

const (
	// BlinkerTypeDuration is the time taken to type the whole text.
	BlinkerTypeDuration = 2 * time.Second
	// BlinkerEraseDuration is the time taken to erase it again when cycling.
	BlinkerEraseDuration = time.Second
	// BlinkInterval is the cursor on/off period once typing is done.
	BlinkInterval = 500 * time.Millisecond
)

// Blinker types text out one rune at a time and then blinks a cursor.
// With CycleAfter set it erases the text after that pause and calls
// OnCycleComplete.
type Blinker struct {
	sched    sched.Scheduler
	runes    []rune
	shown    int
	erasing  bool
	done     bool
	cursorOn bool
	task     sched.Task
	onChange func()

	CycleAfter      time.Duration
	OnCycleComplete func()
}

// NewBlinker prepares a blinker. onChange runs after every visible change.
func NewBlinker(s sched.Scheduler, text string, onChange func()) *Blinker {
	return &Blinker{sched: s, runes: []rune(text), onChange: onChange, cursorOn: true}
}

// Start begins typing from an empty string.
func (b *Blinker) Start() {
	b.Stop()
	b.shown, b.erasing, b.done, b.cursorOn = 0, false, false, true
	if len(b.runes) == 0 {
		b.finishTyping()
		return
	}
	b.schedule(BlinkerTypeDuration/time.Duration(len(b.runes)), b.typeNext)
}

// Stop cancels the animation.
func (b *Blinker) Stop() {
	if b.task != nil {
		b.task.Stop()
		b.task = nil
	}
}

// Typed returns the text shown so far.
func (b *Blinker) Typed() string { return string(b.runes[:b.shown]) }

// Done reports whether typing has finished.
func (b *Blinker) Done() bool { return b.done }

// View returns the typed text followed by the cursor. The cursor is solid
// while typing or erasing.
func (b *Blinker) View() string {
	cursor := "▁"
	if b.done && !b.erasing && !b.cursorOn {
		cursor = " "
	}
	return b.Typed() + cursor
}

func (b *Blinker) schedule(d time.Duration, fn func()) {
	b.task = b.sched.AfterFunc(d, func() {
		b.task = nil
		fn()
	})
}

func (b *Blinker) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

func (b *Blinker) typeNext() {
	b.shown++
	b.changed()
	if b.shown < len(b.runes) {
		b.schedule(BlinkerTypeDuration/time.Duration(len(b.runes)), b.typeNext)
		return
	}
	b.finishTyping()
}

func (b *Blinker) finishTyping() {
	b.done = true
	if b.CycleAfter > 0 && b.OnCycleComplete != nil {
		b.schedule(b.CycleAfter, b.startErase)
		return
	}
	b.schedule(BlinkInterval, b.blink)
}

func (b *Blinker) blink() {
	b.cursorOn = !b.cursorOn
	b.changed()
	b.schedule(BlinkInterval, b.blink)
}

func (b *Blinker) startErase() {
	b.erasing = true
	if len(b.runes) == 0 {
		b.endCycle()
		return
	}
	b.schedule(BlinkerEraseDuration/time.Duration(len(b.runes)), b.eraseNext)
}

func (b *Blinker) eraseNext() {
	if b.shown > 0 {
		b.shown--
		b.changed()
	}
	if b.shown > 0 {
		b.schedule(BlinkerEraseDuration/time.Duration(len(b.runes)), b.eraseNext)
		return
	}
	b.endCycle()
}

func (b *Blinker) endCycle() {
	b.erasing = false
	b.OnCycleComplete()
}
