//go:build !darwin

package shm

import "github.com/analogsec/analog/utils"

func MakeSegment(size int) (int, error) {
	return 0, utils.NotImplementedError
}

func AttachSegment(id int, readonly bool) ([]byte, error) {
	return nil, utils.NotImplementedError
}

func DetachSegment(buf []byte) error {
	return utils.NotImplementedError
}

func RemoveSegment(id int) error {
	return utils.NotImplementedError
}
