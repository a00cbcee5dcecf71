// Command hello-asyncio contrasts blocking and cooperative sleeping.
//
// It runs two operations in sequence and prints four lines:
//
//	Routine is sleeping for 1s.
//	hello, routine.
//	Coroutine is sleeping for 1s.
//	Hello, coroutine.
//
// The first operation sleeps with time.Sleep, which suspends the whole
// thread of control.
// The second operation sleeps cooperatively on a single-threaded event loop,
// which only suspends the coroutine that runs it.
// With a single task the two look alike from the outside; the difference is
// in what else could have run during the wait.
//
// Usage:
//
//	hello-asyncio [-routine-sleep 1s] [-coroutine-sleep 1s]
//
// Both durations default to one second.
// The command exits 0 on success, 1 when the demonstration fails, and 2 on
// bad command-line flags.
package main
