// Process listing.
//
// On macOS the kernel exposes the full process table through the
// kern.proc.all sysctl, no privileges required (other users'
// processes come back with reduced detail). Everywhere else we fall
// back to parsing ps output so the CLI stays useful on dev machines.

package psutils

import (
	"time"

	"github.com/analogsec/analog/utils"
)

var NotImplementedError = utils.NotImplementedError

// startTime converts the second/microsecond pair of a kernel
// timeval (kinfo_proc P_starttime) into a time.Time. time.Unix
// takes nanoseconds, so microseconds scale up.
func startTime(sec, usec int64) time.Time {
	return time.Unix(sec, usec*1000)
}

func ByteToString(orig []byte) string {
	n := -1
	l := -1
	for i, b := range orig {
		// skip left side null
		if l == -1 && b == 0 {
			continue
		}
		if l == -1 {
			l = i
		}

		if b == 0 {
			break
		}
		n = i + 1
	}
	if n == -1 {
		return ""
	}
	return string(orig[l:n])
}
