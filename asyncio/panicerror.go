package asyncio

import (
	"fmt"
	"strings"
)

// A panicError carries a value recovered from a panicking [Task], along
// with a stack trace of the panic site.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "asyncio: task panicked: %v", e.value)
	if e.stack != nil {
		b.WriteString("\n\n")
		b.Write(e.stack)
	}
	return b.String()
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
