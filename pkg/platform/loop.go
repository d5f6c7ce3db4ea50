package platform

import (
	"github.com/go-drift/viewkit/pkg/errors"
)

// Loop is a single-threaded cooperative run loop. Tasks posted during a turn
// run on the following turn, never re-entrantly.
type Loop struct {
	queue []func()
	turns int
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post enqueues fn for the next turn.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.queue = append(l.queue, fn)
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int { return len(l.queue) }

// Turns returns how many non-empty turns have run.
func (l *Loop) Turns() int { return l.turns }

// RunOnce runs every task that was queued when the turn started and returns
// how many ran. A panicking task is reported and the turn continues.
// Invariant violations propagate and abort the turn; the tasks it had not
// reached stay queued ahead of anything posted during it.
func (l *Loop) RunOnce() int {
	if len(l.queue) == 0 {
		return 0
	}
	batch := l.queue
	l.queue = nil
	l.turns++
	i := 0
	defer func() {
		if i < len(batch) {
			l.queue = append(batch[i+1:], l.queue...)
		}
	}()
	for ; i < len(batch); i++ {
		l.run(batch[i])
	}
	return len(batch)
}

func (l *Loop) run(task func()) {
	defer errors.Recover("platform.Loop.RunOnce")
	task()
}

// Drain runs turns until the queue is empty or maxTurns is reached, and
// reports whether the loop settled.
func (l *Loop) Drain(maxTurns int) bool {
	for i := 0; i < maxTurns; i++ {
		if l.RunOnce() == 0 {
			return true
		}
	}
	return len(l.queue) == 0
}

// Install registers the loop as the global dispatcher and returns a function
// that restores the previous one.
func (l *Loop) Install() (restore func()) {
	prev := RegisterDispatch(l.Post)
	return func() { RegisterDispatch(prev) }
}
