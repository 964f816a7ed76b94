//go:build windows

package cli

// Windows has no POSIX signals; a crashed child surfaces as a plain
// non-zero exit code.
func exitDueToFatalSignal(error) bool {
	return false
}
