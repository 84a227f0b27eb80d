//go:build darwin

package vm

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map allocates an anonymous read-write mapping, the mmap
// equivalent of VirtualAlloc(MEM_COMMIT, PAGE_READWRITE).
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func Unmap(buf []byte) error {
	return unix.Munmap(buf)
}

// Protect changes the protection of the pages backing buf
// (VirtualProtect analogue). The range is widened to page
// boundaries, so co-located data on the same pages changes with it.
func Protect(buf []byte, prot int) error {
	if len(buf) == 0 {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&buf[0]))
	pagesize := uintptr(syscall.Getpagesize())

	aligned, aligned_size := alignRange(addr, uintptr(len(buf)), pagesize)

	aligned_buf := unsafe.Slice((*byte)(unsafe.Pointer(aligned)),
		int(aligned_size))
	return unix.Mprotect(aligned_buf, prot)
}
