//go:build darwin

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

func fileFlags(fi os.FileInfo) uint32 {
	stat, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return stat.Flags
}
