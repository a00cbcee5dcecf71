// Package asyncio is a small library for contrasting blocking and
// cooperative execution on a single thread of control.
//
// Since Go has already done a great job in bringing green/virtual threads
// into life, most Go programs never need an event loop.
// This package implements one anyway, a single-threaded [Loop], so that the
// difference between the two kinds of waiting becomes observable.
//
// # Blocking vs. Cooperative Waiting
//
// A blocking wait, such as [time.Sleep], suspends the whole goroutine that
// performs it.
// Inside a [Loop] that goroutine is the loop itself, so nothing else can run
// until the wait is over.
//
// A cooperative wait, such as [Sleep], suspends only the [Coroutine] that
// performs it.
// The coroutine yields, the loop is free to run other ready coroutines, and
// the sleeper resumes once its timer is due.
//
// # Coroutines and Tasks
//
// A [Coroutine] is an execution of code, similar to a goroutine but
// cooperative and stackless.
// A coroutine is created with a function called [Task].
// A coroutine's job is to end the task.
// When a [Loop] spawns a coroutine with a task, it runs the coroutine by
// calling the task function with the coroutine as the argument.
// The return value, a [Result], determines whether to end the coroutine or
// to yield it so that it could resume later.
//
// In order for a coroutine to resume, the coroutine must watch at least one
// [Event] (e.g. [Signal], [State], or the timer behind [Sleep]) when calling
// the task function.
// A notification of such an event resumes the coroutine.
// A coroutine that yields watching nothing can never resume, so it ends
// instead.
//
// # The Run Context
//
// [Run] is the one-shot entry point.
// It creates a fresh [Loop], spawns the given task on it, and drives the
// loop on the calling goroutine until no coroutine is ready and no timer is
// pending.
// The loop never outlives the call, teardown needs no cooperation from the
// task, and a second Run starts from a clean slate.
//
// When only timers remain, the loop parks until the earliest deadline.
// [Loop.Spawn] is safe for concurrent use and wakes a parked loop, so work
// can be handed to a running loop from other goroutines.
//
// # Single-Loop Ownership
//
// Events and coroutine results are not synchronized.
// A [Signal] or [State] must not be shared by more than one [Loop], and
// their Notify/Set methods should only be called from within a task
// function.
//
// # Panic Propagation
//
// Coroutines propagate unrecovered panics to their [Loop], causing the
// [Loop.Run] method to panic.
// [Run] recovers such a panic and returns it as an error carrying the panic
// value and the stack trace of the panic site.
package asyncio
