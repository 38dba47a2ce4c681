//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

var binPath = "lazypager_e2e"

// keep at most this much output; the status line is always near the end
const maxOutput = 1 << 20

const (
	keyEnter = "\r"
	keyCtrlC = "\x03"
	keyRight = "\x1b[C"
	keyNext  = "l"
	keyPrev  = "h"
	keyGoto  = "g"
	keyQuit  = "q"
)

// escapes strips CSI, OSC, charset and keypad sequences plus carriage returns
var escapes = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// terminal runs lazypager on a pseudo-terminal and records everything it draws
type terminal struct {
	t   *testing.T
	dir string
	cmd *exec.Cmd
	pty *os.File

	mu  sync.Mutex
	out []byte

	exited chan error
}

// newTerminal prepares a run against the pages in dir. The process is killed when the test ends.
func newTerminal(t *testing.T, dir string) *terminal {
	term := &terminal{t: t, dir: dir, exited: make(chan error, 1)}
	t.Cleanup(term.close)
	return term
}

// start launches the binary on a 120x40 terminal
func (term *terminal) start(args ...string) {
	term.t.Helper()
	args = append([]string{"-d", term.dir, "--log-file", filepath.Join(term.dir, "e2e.log")}, args...)
	term.cmd = exec.Command(binPath, args...)
	term.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+term.dir,
	)

	f, err := pty.StartWithSize(term.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(term.t, err, "failed to start lazypager")
	term.pty = f

	go term.read()
	go func() { term.exited <- term.cmd.Wait() }()
}

func (term *terminal) read() {
	buf := make([]byte, 8192)
	for {
		n, err := term.pty.Read(buf)
		if n > 0 {
			term.mu.Lock()
			term.out = append(term.out, buf[:n]...)
			if extra := len(term.out) - maxOutput; extra > 0 {
				term.out = term.out[extra:]
			}
			term.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// press writes keys to the terminal
func (term *terminal) press(keys ...string) {
	term.t.Helper()
	for _, k := range keys {
		_, err := term.pty.Write([]byte(k))
		require.NoError(term.t, err, "failed to send %q", k)
	}
}

// gotoPage jumps to a 1-based page through the goto prompt
func (term *terminal) gotoPage(page int) {
	term.t.Helper()
	term.press(keyGoto, strconv.Itoa(page)+keyEnter)
}

// signal delivers sig to the running process
func (term *terminal) signal(sig syscall.Signal) {
	term.t.Helper()
	require.NoError(term.t, term.cmd.Process.Signal(sig))
}

// screen returns the output drawn so far with escape sequences removed
func (term *terminal) screen() string {
	term.mu.Lock()
	defer term.mu.Unlock()
	return escapes.ReplaceAllString(string(term.out), "")
}

// see waits up to timeout for text to be drawn
func (term *terminal) see(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(term.screen(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// expect fails the test unless text is drawn within a few seconds
func (term *terminal) expect(text, why string) {
	term.t.Helper()
	if term.see(text, 3*time.Second) {
		return
	}
	tail := term.screen()
	if len(tail) > 2048 {
		tail = tail[len(tail)-2048:]
	}
	term.t.Fatalf("%s: %q not drawn\n--- tail ---\n%s", why, text, tail)
}

// ready waits for the first frame
func (term *terminal) ready() {
	term.t.Helper()
	require.True(term.t, term.see("lazypager", 5*time.Second), "lazypager never drew its title")
}

// waitExit waits for the process to end and returns its exit error
func (term *terminal) waitExit(timeout time.Duration) error {
	term.t.Helper()
	select {
	case err := <-term.exited:
		term.cmd = nil
		return err
	case <-time.After(timeout):
		term.t.Fatalf("lazypager still running after %s", timeout)
		return nil
	}
}

func (term *terminal) close() {
	if term.pty != nil {
		_ = term.pty.Close()
		term.pty = nil
	}
	if term.cmd != nil && term.cmd.Process != nil {
		_ = term.cmd.Process.Kill()
		<-term.exited
		term.cmd = nil
	}
}
