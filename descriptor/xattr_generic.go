//go:build !linux && !darwin

package descriptor

import "github.com/analogsec/analog/utils"

func GetXAttr(path, attr string) ([]byte, error) {
	return nil, utils.NotImplementedError
}

func ListXAttr(path string) ([]string, error) {
	return nil, utils.NotImplementedError
}
