//go:build !darwin

package vm

import "github.com/analogsec/analog/utils"

func Map(size int) ([]byte, error) {
	return nil, utils.NotImplementedError
}

func Unmap(buf []byte) error {
	return utils.NotImplementedError
}

func Protect(buf []byte, prot int) error {
	return utils.NotImplementedError
}
