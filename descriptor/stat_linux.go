//go:build linux

package descriptor

import (
	"os"
	"syscall"
)

func ownerOf(fi os.FileInfo) (uid, gid uint32, ok bool) {
	stat, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return stat.Uid, stat.Gid, true
}

// Linux has no BSD file flags.
func fileFlags(fi os.FileInfo) uint32 {
	return 0
}
