// Package hello contrasts a blocking routine with a cooperative coroutine.
//
// [Routine] sleeps with [time.Sleep], which suspends the whole goroutine
// that calls it.
// [Coroutine] sleeps with [asyncio.Sleep], which only suspends the
// coroutine that runs it, leaving the [asyncio.Loop] free to do other work.
// [Main] runs one after the other and writes what each of them returns.
package hello

import (
	"fmt"
	"io"
	"time"

	"github.com/stankudrow/Asyncio-Practice/asyncio"
)

// DefaultSleep is how long both operations sleep unless told otherwise.
const DefaultSleep = time.Second

// Fixed texts that [Routine] and [Coroutine] produce.
const (
	RoutineResult   = "hello, routine."
	CoroutineResult = "Hello, coroutine."
)

// Routine writes a progress message that reports d to w, sleeps for d,
// and returns [RoutineResult].
//
// The sleep is a blocking one.
// Inside an [asyncio.Task] function it would suspend the whole
// [asyncio.Loop].
func Routine(w io.Writer, d time.Duration) string {
	fmt.Fprintf(w, "Routine is sleeping for %s.\n", d)
	time.Sleep(d)
	return RoutineResult
}

// Coroutine returns an [asyncio.Task] that writes a progress message that
// reports d to w, sleeps for d, and then sets result to [CoroutineResult].
//
// The sleep is a cooperative one.
// While the task is suspended, the [asyncio.Loop] that runs it is free to
// run other coroutines.
func Coroutine(w io.Writer, d time.Duration, result *asyncio.State[string]) asyncio.Task {
	return func(co *asyncio.Coroutine) asyncio.Result {
		fmt.Fprintf(w, "Coroutine is sleeping for %s.\n", d)
		return co.Transition(asyncio.Sleep(d).Then(asyncio.Do(func() {
			result.Set(CoroutineResult)
		})))
	}
}

// Main returns an [asyncio.Task] that runs [Routine] and then [Coroutine],
// writing the result of each to w on its own line.
//
// With both durations set to [DefaultSleep], the task writes four lines
// over the course of about two seconds:
//
//	Routine is sleeping for 1s.
//	hello, routine.
//	Coroutine is sleeping for 1s.
//	Hello, coroutine.
//
// The returned task keeps track of progress, so it must not be run more
// than once.
// Create a fresh one for each [asyncio.Run] call.
func Main(w io.Writer, routineSleep, coroutineSleep time.Duration) asyncio.Task {
	result := asyncio.NewState("")
	return asyncio.Block(
		asyncio.Do(func() { fmt.Fprintln(w, Routine(w, routineSleep)) }),
		Coroutine(w, coroutineSleep, result),
		asyncio.Do(func() { fmt.Fprintln(w, result.Get()) }),
	)
}
