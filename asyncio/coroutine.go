package asyncio

import "runtime/debug"

const (
	doEnd = iota
	doYield
	doTransition
)

const (
	flagStale = 1 << iota
	flagWoken
	flagEnded
	flagRecyclable
	flagRecycled
)

// A Coroutine is an execution of code, similar to a goroutine but cooperative
// and stackless.
//
// A coroutine is created with a function called [Task].
// A coroutine's job is to end the task.
// When a [Loop] spawns a coroutine with a task, it runs the coroutine by
// calling the task function with the coroutine as the argument.
// The return value, a [Result], determines whether to end the coroutine or
// to yield it so that it could resume later.
//
// In order for a coroutine to resume, the coroutine must watch at least one
// [Event] (e.g. [Signal], [State], or the timer behind [Sleep]), when calling
// the task function.
// A notification of such an event resumes the coroutine.
// When a coroutine is resumed, the loop runs the coroutine again.
// A coroutine that yields watching nothing can never resume, so it ends
// instead.
//
// A coroutine can also make a transition to work on another task according to
// the return value of the task function.
// A coroutine can transition from one task to another until a task ends it.
type Coroutine struct {
	loop *Loop
	task Task
	flag uint8
	deps map[Event]bool
}

func (l *Loop) newCoroutine() *Coroutine {
	if co := l.pool.Get(); co != nil {
		return co.(*Coroutine)
	}
	return new(Coroutine)
}

func (l *Loop) freeCoroutine(co *Coroutine) {
	if co.flag&(flagRecyclable|flagRecycled) == flagRecyclable {
		co.loop = nil
		co.task = nil
		co.flag |= flagRecycled
		l.pool.Put(co)
	}
}

func (co *Coroutine) init(l *Loop, t Task) *Coroutine {
	co.loop = l
	co.task = t
	co.flag = flagStale
	return co
}

func (co *Coroutine) recyclable() *Coroutine {
	co.flag |= flagRecyclable
	return co
}

func (co *Coroutine) resume() {
	flag := co.flag
	if flag&flagEnded != 0 {
		return
	}

	if flag&flagWoken != 0 {
		co.flag = flag | flagStale
		return
	}

	co.flag = flag | flagStale | flagWoken
	co.loop.resumeCoroutine(co)
}

func (l *Loop) runCoroutine(co *Coroutine) {
	flag := co.flag
	flag &^= flagWoken
	co.flag = flag

	if flag&flagEnded != 0 {
		l.freeCoroutine(co)
		return
	}

	if flag&flagStale == 0 {
		return
	}

	l.mu.Unlock()
	co.run()
	l.mu.Lock()
}

func (co *Coroutine) run() {
	{
		deps := co.deps
		for d := range deps {
			deps[d] = false
		}
	}

	var res Result

	for {
		co.flag &^= flagStale | flagEnded

		res = co.call()

		if res.task != nil {
			co.task = res.task
		}

		if res.action != doTransition {
			break
		}

		co.clearDeps()
	}

	if res.action != doEnd {
		deps := co.deps
		for d, inUse := range deps {
			if !inUse {
				delete(deps, d)
				d.removeListener(co)
			}
		}
	}

	if res.action == doEnd || len(co.deps) == 0 {
		co.end()
	}
}

// call invokes the current task of co.
// If the task panics, call captures a stack trace of the panic site and
// repanics with a *panicError, so that [Run] can report where things went
// wrong rather than where the panic was recovered.
func (co *Coroutine) call() (res Result) {
	ok := false
	defer func() {
		if ok {
			return
		}
		if v := recover(); v != nil {
			panic(&panicError{value: v, stack: debug.Stack()})
		}
		panic("asyncio: asyncio does not support runtime.Goexit()")
	}()
	res = co.task(co)
	ok = true
	return res
}

func (co *Coroutine) end() {
	if co.flag&flagEnded != 0 {
		return
	}

	co.flag |= flagEnded

	co.clearDeps()

	if co.flag&flagWoken == 0 {
		co.loop.freeCoroutine(co)
	}
}

func (co *Coroutine) clearDeps() {
	deps := co.deps
	for d := range deps {
		delete(deps, d)
		d.removeListener(co)
	}
}

// Loop returns the [Loop] that spawned co.
//
// Since co can be recycled by a Loop, it is recommended to save
// the return value in a variable first.
func (co *Coroutine) Loop() *Loop {
	return co.loop
}

// Watch watches some events so that, when any of them notifies, co resumes.
func (co *Coroutine) Watch(ev ...Event) {
	deps := co.deps
	if deps == nil {
		deps = make(map[Event]bool)
		co.deps = deps
	}

	for _, d := range ev {
		if _, ok := deps[d]; ok {
			deps[d] = true
			continue
		}

		deps[d] = true
		d.addListener(co)
	}
}

// Result is the type of the return value of a [Task] function.
// A Result determines what next for a coroutine to do after running a task.
//
// A Result can be created by calling one of the following methods:
//   - [Coroutine.Await]: for creating a [PendingResult] that can be transformed
//     into a [Result] with one of its methods, which will then cause
//     the running coroutine to yield;
//   - [Coroutine.Yield]: for yielding a coroutine with additional events to
//     watch and, when resumed, reiterating the running task;
//   - [Coroutine.Transition]: for making a transition to work on another task;
//   - [Coroutine.End]: for ending the running task of a coroutine.
type Result struct {
	action int
	task   Task
}

// PendingResult is the return type of the [Coroutine.Await] method.
// A PendingResult is an intermediate value that must be transformed into
// a [Result] with one of its methods before returning from a [Task].
type PendingResult struct {
	res Result
}

// Reiterate returns a [Result] that will cause the running coroutine to yield
// and, when resumed, reiterate the running task.
func (pr PendingResult) Reiterate() Result {
	return pr.res
}

// Then returns a [Result] that will cause the running coroutine to yield and,
// when resumed, make a transition to work on another [Task].
func (pr PendingResult) Then(t Task) Result {
	pr.res.task = must(t)
	return pr.res
}

// End returns a [Result] that will cause the running coroutine to yield and,
// when resumed, end the running task.
func (pr PendingResult) End() Result {
	return pr.Then(End())
}

// Await returns a [PendingResult] that can be transformed into a [Result]
// with one of its methods, which will then cause co to yield.
// Await also accepts additional events to watch.
func (co *Coroutine) Await(ev ...Event) PendingResult {
	if len(ev) != 0 {
		co.Watch(ev...)
	}
	return PendingResult{res: Result{action: doYield}}
}

// Yield returns a [Result] that will cause co to yield and, when co is resumed,
// reiterate the running task.
// Yield also accepts additional events to watch.
func (co *Coroutine) Yield(ev ...Event) Result {
	return co.Await(ev...).Reiterate()
}

// Transition returns a [Result] that will cause co to make a transition to
// work on t.
func (co *Coroutine) Transition(t Task) Result {
	return Result{action: doTransition, task: must(t)}
}

// End returns a [Result] that will cause co to end its current running task.
func (co *Coroutine) End() Result {
	return Result{action: doEnd}
}
