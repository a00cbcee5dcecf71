package asyncio_test

import (
	"fmt"
	"time"

	"github.com/stankudrow/Asyncio-Practice/asyncio"
)

// This example creates a coroutine that prints the value of a state whenever
// it changes, and another coroutine that updates the state three times with
// a cooperative sleep between updates.
// The watcher only prints 0, 1, 2 and 3 because it is ended after 3.
func Example() {
	var myLoop asyncio.Loop

	var myState asyncio.State[int]

	myLoop.Spawn(func(co *asyncio.Coroutine) asyncio.Result {
		v := myState.Get()
		fmt.Println(v)

		if v < 3 {
			return co.Yield(&myState)
		}

		return co.End()
	})

	inc := func(v int) int { return v + 1 }

	myLoop.Spawn(asyncio.Block(
		asyncio.Do(func() { myState.Update(inc) }),
		asyncio.Sleep(time.Millisecond),
		asyncio.Do(func() { myState.Update(inc) }),
		asyncio.Sleep(time.Millisecond),
		asyncio.Do(func() { myState.Update(inc) }),
	))

	myLoop.Run()

	// Output:
	// 0
	// 1
	// 2
	// 3
}

// This example demonstrates that a cooperative sleep only suspends one
// coroutine.
// The coroutine that sleeps less finishes first, even though it is spawned
// last.
func ExampleSleep() {
	var myLoop asyncio.Loop

	myLoop.Spawn(asyncio.Sleep(30 * time.Millisecond).Then(asyncio.Do(func() {
		fmt.Println("slow")
	})))

	myLoop.Spawn(asyncio.Sleep(10 * time.Millisecond).Then(asyncio.Do(func() {
		fmt.Println("fast")
	})))

	myLoop.Run()

	// Output:
	// fast
	// slow
}

func ExampleRun() {
	err := asyncio.Run(asyncio.Block(
		asyncio.Do(func() { fmt.Println("step 1") }),
		asyncio.Sleep(10*time.Millisecond),
		asyncio.Do(func() { fmt.Println("step 2") }),
	))

	fmt.Println("err:", err)

	// Output:
	// step 1
	// step 2
	// err: <nil>
}

// This example demonstrates how one coroutine can await a signal that
// another coroutine notifies.
func ExampleSignal() {
	var myLoop asyncio.Loop

	var mySignal asyncio.Signal

	myLoop.Spawn(asyncio.Await(&mySignal).Then(asyncio.Do(func() {
		fmt.Println("notified")
	})))

	myLoop.Spawn(asyncio.Block(
		asyncio.Do(func() { fmt.Println("notifying") }),
		asyncio.Do(mySignal.Notify),
	))

	myLoop.Run()

	// Output:
	// notifying
	// notified
}

// This example demonstrates how a coroutine can transition from one task to
// another, like a state machine.
func ExampleCoroutine_Transition() {
	var myLoop asyncio.Loop

	var myState asyncio.State[int]

	myLoop.Spawn(func(co *asyncio.Coroutine) asyncio.Result {
		v := myState.Get()
		fmt.Println(v)

		if v < 2 {
			return co.Yield(&myState)
		}

		return co.Transition(func(co *asyncio.Coroutine) asyncio.Result {
			v := myState.Get()
			fmt.Println(v, "(transitioned)")

			if v < 4 {
				return co.Yield(&myState)
			}

			return co.End()
		})
	})

	inc := func(v int) int { return v + 1 }

	myLoop.Spawn(asyncio.Block(
		asyncio.Do(func() { myState.Update(inc) }),
		asyncio.Sleep(time.Millisecond),
		asyncio.Do(func() { myState.Update(inc) }),
		asyncio.Sleep(time.Millisecond),
		asyncio.Do(func() { myState.Update(inc) }),
		asyncio.Sleep(time.Millisecond),
		asyncio.Do(func() { myState.Update(inc) }),
	))

	myLoop.Run()

	// Output:
	// 0
	// 1
	// 2
	// 2 (transitioned)
	// 3 (transitioned)
	// 4 (transitioned)
}
