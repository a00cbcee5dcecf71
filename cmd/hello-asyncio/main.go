package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/stankudrow/Asyncio-Practice/asyncio"
	"github.com/stankudrow/Asyncio-Practice/hello"
)

// run executes the demonstration and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hello-asyncio", flag.ContinueOnError)
	flags.SetOutput(stderr)

	routineSleep := flags.Duration("routine-sleep", hello.DefaultSleep,
		"how long the blocking routine sleeps")
	coroutineSleep := flags.Duration("coroutine-sleep", hello.DefaultSleep,
		"how long the cooperative coroutine sleeps")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if err := asyncio.Run(hello.Main(stdout, *routineSleep, *coroutineSleep)); err != nil {
		fmt.Fprintln(stderr, "hello-asyncio:", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
