package asyncio

// A Task is a piece of work that a coroutine is given to do when it is
// spawned.
// The return value of a task, a [Result], determines what next for a
// coroutine to do.
//
// The argument co must not escape, because co may be put into pool for
// recycling when co ends.
type Task func(co *Coroutine) Result

// Then returns a [Task] that first works on t, then next after t ends.
//
// The returned task keeps track of where t left off, so it must not be run
// more than once.
// To chain multiple tasks, use [Block] function.
func (t Task) Then(next Task) Task {
	if next == nil {
		panic("asyncio: Then(nil): undefined behavior")
	}
	return func(co *Coroutine) Result {
		switch res := t(co); res.action {
		case doEnd:
			return Result{action: doTransition, task: next}
		case doYield, doTransition:
			if res.task != nil {
				t = res.task
			}
			return Result{action: res.action}
		default:
			panic("asyncio: internal error: unknown action")
		}
	}
}

// Do returns a [Task] that calls f, and then ends.
func Do(f func()) Task {
	return func(co *Coroutine) Result {
		f()
		return co.End()
	}
}

// End returns a [Task] that ends without doing anything.
func End() Task {
	return (*Coroutine).End
}

// Await returns a [Task] that awaits some events until any of them notifies,
// and then ends.
//
// A coroutine that awaits no events can never resume, so with ev empty,
// the coroutine that runs the returned task ends right away.
// Tasks after it in a [Block] are never getting worked on.
func Await(ev ...Event) Task {
	return func(co *Coroutine) Result {
		return co.Await(ev...).End()
	}
}

// Block returns a [Task] that runs each of the given tasks in sequence.
// When one task ends, Block runs another.
//
// The returned task keeps track of progress, so it must not be run more
// than once.
func Block(s ...Task) Task {
	switch len(s) {
	case 0:
		return End()
	case 1:
		return s[0]
	case 2:
		return s[0].Then(s[1])
	}
	var t Task
	return func(co *Coroutine) Result {
		if t == nil {
			if len(s) == 0 {
				return co.End()
			}
			t, s = must(s[0]), s[1:]
		}
		switch res := t(co); res.action {
		case doEnd:
			t = nil
			return Result{action: doTransition}
		case doYield, doTransition:
			if res.task != nil {
				t = res.task
			}
			return Result{action: res.action}
		default:
			panic("asyncio: internal error: unknown action")
		}
	}
}

func must(t Task) Task {
	if t == nil {
		panic("asyncio: nil Task")
	}
	return t
}
