package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-routine-sleep", "10ms", "-coroutine-sleep", "20ms"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Empty(t, stderr.String())

	want := "Routine is sleeping for 10ms.\n" +
		"hello, routine.\n" +
		"Coroutine is sleeping for 20ms.\n" +
		"Hello, coroutine.\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunDefaults(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	start := time.Now()
	code := run(nil, &stdout, &stderr)
	elapsed := time.Since(start)

	require.Equal(t, 0, code)
	require.GreaterOrEqual(t, elapsed, 2*time.Second)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[2], "1")
}

func TestRunBadFlags(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{"-routine-sleep", "bogus"}, &stdout, &stderr)

	require.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.NotEmpty(t, stderr.String())
}
