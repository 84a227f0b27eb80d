//go:build !darwin

package token

import "github.com/analogsec/analog/utils"

func FromPid(pid int32) (*Token, error) {
	return nil, utils.NotImplementedError
}
