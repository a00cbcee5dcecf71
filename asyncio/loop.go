package asyncio

import (
	"sync"
	"time"
)

// A Loop is a [Task] spawner, and a task runner.
//
// When a task is spawned or a coroutine is resumed, the coroutine is added
// into an internal run queue.
// The Run method then pops and runs each of them from the queue until
// the queue is emptied and no timer is pending.
// It is done in a single-threaded manner.
// If one coroutine blocks, no other coroutines can run.
// The best practice is not to block.
//
// When the run queue is emptied but some timer is still pending, the Run
// method parks until the earliest deadline, then resumes every coroutine
// whose timer is due.
// Parking ends early when a task is spawned from another goroutine.
//
// The zero Loop is ready to use.
// Most programs would not use a Loop directly but call [Run], which spawns
// one task on a fresh Loop and drives it to completion.
type Loop struct {
	mu     sync.Mutex
	ready  []*Coroutine
	timers timerqueue
	parked bool
	wakeup chan struct{}
	pool   sync.Pool
}

// Spawn creates a [Coroutine] to work on t.
//
// The coroutine is added into the run queue. To run it, call the Run method.
//
// Spawn is safe for concurrent use.
// Spawning a task on a parked Loop wakes the Loop.
func (l *Loop) Spawn(t Task) {
	co := l.newCoroutine().init(l, must(t)).recyclable()
	l.resumeCoroutine(co)
}

func (l *Loop) resumeCoroutine(co *Coroutine) {
	l.mu.Lock()

	l.ready = append(l.ready, co)

	if l.parked {
		select {
		case l.wakeup <- struct{}{}:
		default:
		}
	}

	l.mu.Unlock()
}

// Run pops and runs every [Coroutine] in the run queue until the queue is
// emptied and no timer is pending.
//
// Run must not be called twice at the same time.
func (l *Loop) Run() {
	l.mu.Lock()

	for {
		for len(l.ready) != 0 {
			co := l.ready[0]
			l.ready[0] = nil
			l.ready = l.ready[1:]
			l.runCoroutine(co)
		}

		if l.timers.Empty() {
			break
		}

		l.park()
	}

	l.mu.Unlock()
}

// park sleeps until the earliest timer deadline, or until a task is spawned
// from another goroutine, and then fires every timer that is due.
// The caller must hold l.mu.
func (l *Loop) park() {
	now := time.Now()

	if d := l.timers.Peek().when.Sub(now); d > 0 {
		wakeup := l.wakeup
		if wakeup == nil {
			wakeup = make(chan struct{}, 1)
			l.wakeup = wakeup
		}

		// A poke from a previous cycle may not have been consumed.
		select {
		case <-wakeup:
		default:
		}

		l.parked = true
		l.mu.Unlock()

		tm := time.NewTimer(d)
		select {
		case <-tm.C:
		case <-wakeup:
			tm.Stop()
		}

		l.mu.Lock()
		l.parked = false

		now = time.Now()
	}

	l.fire(now)
}

// fire notifies every timer whose deadline has passed.
// The caller must hold l.mu; fire releases it while notifying.
func (l *Loop) fire(now time.Time) {
	var due []*timer
	for !l.timers.Empty() && !l.timers.Peek().when.After(now) {
		due = append(due, l.timers.Pop())
	}

	if len(due) == 0 {
		return
	}

	l.mu.Unlock()
	for _, tm := range due {
		tm.Notify()
	}
	l.mu.Lock()
}

func (l *Loop) addTimer(d time.Duration) *timer {
	tm := &timer{when: time.Now().Add(d)}

	l.mu.Lock()
	l.timers.Push(tm)
	l.mu.Unlock()

	return tm
}
