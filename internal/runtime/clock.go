package runtime

import "syscall"

// ProcessTime returns the total user+system CPU time consumed by this
// process so far, in seconds. It is the Go/Linux equivalent of the
// original tool's time_stamp(), which summed ru_utime and ru_stime from
// getrusage(2), and is used only for the -v statistics banner (spec
// §4.E).
func ProcessTime() float64 {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	user := float64(usage.Utime.Sec) + float64(usage.Utime.Usec)*1e-6
	sys := float64(usage.Stime.Sec) + float64(usage.Stime.Usec)*1e-6
	return user + sys
}
