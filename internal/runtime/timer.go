package runtime

import (
	"os"
	"syscall"
	"time"
)

// Timer wraps the single-shot wall-clock alarm armed by SetAlarm. It
// exists so callers can Stop the underlying timer on a clean exit path
// (no point delivering SIGALRM to a process that already finished).
type Timer struct {
	t *time.Timer
}

func newTimer(seconds int) *Timer {
	pid := os.Getpid()
	t := time.AfterFunc(time.Duration(seconds)*time.Second, func() {
		syscall.Kill(pid, syscall.SIGALRM)
	})
	return &Timer{t: t}
}

// Stop cancels the pending alarm, if any.
func (t *Timer) Stop() {
	if t == nil || t.t == nil {
		return
	}
	t.t.Stop()
}
