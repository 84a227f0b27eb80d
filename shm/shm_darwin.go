//go:build darwin

package shm

import (
	"golang.org/x/sys/unix"
)

// MakeSegment creates a private SysV segment, the rough equivalent
// of CreateFileMapping over the pagefile. Used by the docs demo.
func MakeSegment(size int) (int, error) {
	return unix.SysvShmGet(unix.IPC_PRIVATE, size,
		unix.IPC_CREAT|unix.IPC_EXCL|0600)
}

// AttachSegment maps the segment into our address space
// (MapViewOfFile analogue).
func AttachSegment(id int, readonly bool) ([]byte, error) {
	flags := 0
	if readonly {
		flags = unix.SHM_RDONLY
	}
	return unix.SysvShmAttach(id, 0, flags)
}

func DetachSegment(buf []byte) error {
	return unix.SysvShmDetach(buf)
}

// RemoveSegment marks the segment for deletion once all attachments
// drop, like the last CloseHandle on a section.
func RemoveSegment(id int) error {
	_, err := unix.SysvShmCtl(id, unix.IPC_RMID, nil)
	return err
}
