//go:build linux || darwin

package descriptor

import (
	"golang.org/x/sys/unix"
)

// GetXAttr retrieves extended attribute data associated with path.
func GetXAttr(path, attr string) ([]byte, error) {
	// find size
	size, err := unix.Getxattr(path, attr, nil)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	size, err = unix.Getxattr(path, attr, buf)
	if err != nil {
		return nil, err
	}
	return buf[:size], nil
}

// ListXAttr retrieves the names of extended attributes associated
// with path.
func ListXAttr(path string) ([]string, error) {
	// find size
	size, err := unix.Listxattr(path, nil)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []string{}, nil
	}

	buf := make([]byte, size)
	size, err = unix.Listxattr(path, buf)
	if err != nil {
		return nil, err
	}

	return nullTermToStrings(buf[:size]), nil
}

func nullTermToStrings(buf []byte) []string {
	result := []string{}
	offset := 0
	for i, b := range buf {
		if b == 0 {
			result = append(result, string(buf[offset:i]))
			offset = i + 1
		}
	}
	return result
}
