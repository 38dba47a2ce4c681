//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExitWithQ(t *testing.T) {
	t.Parallel()
	term := newTerminal(t, pagesDir(t, 2))
	term.start()
	term.ready()

	term.press(keyQuit)
	require.NoError(t, term.waitExit(1500*time.Millisecond), "q should exit cleanly")
}

func TestExitOnEmptyDirectory(t *testing.T) {
	t.Parallel()
	term := newTerminal(t, t.TempDir())
	term.start()
	term.expect("no pages", "empty state")

	term.press(keyCtrlC)
	term.waitExit(2 * time.Second)
}
