//go:build !windows

package cli

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

var fatalExitSignals = map[unix.Signal]struct{}{
	unix.SIGABRT: {},
	unix.SIGBUS:  {},
	unix.SIGFPE:  {},
	unix.SIGILL:  {},
	unix.SIGSEGV: {},
	unix.SIGSYS:  {},
	unix.SIGTRAP: {},
}

func exitDueToFatalSignal(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		if ptr, ok := exitErr.Sys().(*syscall.WaitStatus); ok && ptr != nil {
			status = *ptr
		} else {
			return false
		}
	}
	ws := unix.WaitStatus(status)
	if !ws.Signaled() {
		return false
	}
	_, ok = fatalExitSignals[unix.Signal(ws.Signal())]
	return ok
}
