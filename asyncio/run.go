package asyncio

// Run creates a fresh [Loop], spawns a [Coroutine] on it to work on main,
// and drives the Loop on the calling goroutine until no coroutine is ready
// and no timer is pending.
//
// The Loop never outlives the call, and each call starts from a clean slate.
// Nothing carries over from one call to the next.
//
// If a task panics, Run stops driving the Loop, recovers the panic, and
// returns it as an error.
// The error message carries the panic value and a stack trace of the panic
// site.
// If the panic value is an error, the returned error wraps it, so that
// [errors.Is] and [errors.As] see through.
func Run(main Task) (err error) {
	defer func() {
		if v := recover(); v != nil {
			pe, ok := v.(*panicError)
			if !ok {
				panic(v)
			}
			err = pe
		}
	}()

	var l Loop
	l.Spawn(main)
	l.Run()

	return nil
}
