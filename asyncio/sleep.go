package asyncio

import "time"

// Sleep returns a [Task] that waits for the duration d to elapse, and
// then ends.
//
// Unlike [time.Sleep], which would suspend the whole [Loop], the returned
// task only suspends the [Coroutine] that runs it.
// Other coroutines are free to run in the meantime.
//
// If d is zero or negative, the returned task ends without suspending
// at all.
func Sleep(d time.Duration) Task {
	return func(co *Coroutine) Result {
		if d <= 0 {
			return co.End()
		}
		tm := co.loop.addTimer(d)
		return co.Await(tm).End()
	}
}
