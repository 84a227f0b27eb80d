//go:build !darwin && !linux

package descriptor

import "os"

func ownerOf(fi os.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}

func fileFlags(fi os.FileInfo) uint32 {
	return 0
}
