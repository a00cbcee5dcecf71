package asyncio

import (
	"sort"
	"time"
)

// A timer is an [Event] that a [Loop] notifies when its deadline passes.
// Timers are created by [Sleep] and fired by the Loop that owns them.
type timer struct {
	Signal
	when time.Time
}

// A timerqueue keeps pending timers sorted by deadline.
// Timers with the same deadline keep their arrival order (FIFO).
type timerqueue struct {
	s []*timer
}

func (q *timerqueue) Empty() bool {
	return len(q.s) == 0
}

func (q *timerqueue) Peek() *timer {
	return q.s[0]
}

func (q *timerqueue) Push(tm *timer) {
	s := q.s
	i := sort.Search(len(s), func(i int) bool {
		return tm.when.Before(s[i].when)
	})
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = tm
	q.s = s
}

func (q *timerqueue) Pop() (tm *timer) {
	s := q.s
	tm = s[0]
	n := copy(s, s[1:])
	s[n] = nil
	q.s = s[:n]
	return tm
}
