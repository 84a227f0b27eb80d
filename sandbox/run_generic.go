//go:build !darwin && !linux && !freebsd

package sandbox

import (
	"os/exec"

	"github.com/analogsec/analog/utils"
)

func configureCredentials(cmd *exec.Cmd, opts RunOptions) error {
	if opts.Uid != 0 || opts.Gid != 0 {
		return utils.NotImplementedError
	}
	return nil
}
