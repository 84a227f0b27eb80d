package vm

import (
	"encoding/hex"
)

// Protection values accepted by Protect, matching the unix PROT_*
// bits so the darwin implementation can pass them straight through.
const (
	ProtNone  = 0
	ProtRead  = 1
	ProtWrite = 2
	ProtExec  = 4
)

// alignRange widens [addr, addr+size) to page boundaries. mprotect
// only accepts page aligned ranges, so protecting an arbitrary
// buffer means protecting every page it touches.
func alignRange(addr, size, pagesize uintptr) (uintptr, uintptr) {
	aligned := addr &^ (pagesize - 1)
	offset := addr - aligned
	aligned_size := (size + offset + pagesize - 1) &^ (pagesize - 1)
	return aligned, aligned_size
}

// Dump renders up to limit bytes as a conventional hex dump.
func Dump(buf []byte, limit int) string {
	if limit > 0 && len(buf) > limit {
		buf = buf[:limit]
	}
	return hex.Dump(buf)
}
