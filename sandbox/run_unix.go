//go:build darwin || linux || freebsd

package sandbox

import (
	"fmt"
	"os/exec"
	"os/user"
	"strconv"
	"syscall"
)

// configureCredentials drops the child to another identity and puts
// it in its own process group so signals hit the whole confined
// tree.
func configureCredentials(cmd *exec.Cmd, opts RunOptions) error {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}

	cmd.SysProcAttr.Setpgid = true

	if opts.Uid == 0 && opts.Gid == 0 {
		return nil
	}

	gid := opts.Gid
	if gid == 0 {
		// Without an explicit gid the child would land in group 0
		// (wheel) - use the target user's primary group instead.
		derived, err := primaryGid(opts.Uid)
		if err != nil {
			return err
		}
		gid = derived
	}

	cmd.SysProcAttr.Credential = &syscall.Credential{
		Uid:    opts.Uid,
		Gid:    gid,
		Groups: []uint32{gid},
	}

	return nil
}

func primaryGid(uid uint32) (uint32, error) {
	target, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return 0, fmt.Errorf(
			"sandbox: cannot resolve primary group of uid %d: %w",
			uid, err)
	}

	gid, err := strconv.ParseUint(target.Gid, 10, 32)
	if err != nil {
		return 0, fmt.Errorf(
			"sandbox: unexpected gid %q for uid %d", target.Gid, uid)
	}

	return uint32(gid), nil
}
