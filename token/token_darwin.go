//go:build darwin

package token

import (
	"golang.org/x/sys/unix"
)

// P_TRACED in kp_proc.p_flag means a debugger is attached.
const pTraced = 0x00000800

// FromPid reads another process's credentials from the kernel via
// sysctl. Needs no special privilege for processes owned by the
// caller; other processes require root.
func FromPid(pid int32) (*Token, error) {
	proc, err := unix.SysctlKinfoProc("kern.proc.pid", int(pid))
	if err != nil {
		return nil, err
	}

	ngroups := int(proc.Eproc.Ucred.Ngroups)
	if ngroups > len(proc.Eproc.Ucred.Groups) {
		ngroups = len(proc.Eproc.Ucred.Groups)
	}

	groups := make([]uint32, 0, ngroups)
	for i := 0; i < ngroups; i++ {
		groups = append(groups, proc.Eproc.Ucred.Groups[i])
	}

	return &Token{
		Pid:    proc.Proc.P_pid,
		Ruid:   proc.Eproc.Pcred.P_ruid,
		Euid:   proc.Eproc.Ucred.Uid,
		Rgid:   proc.Eproc.Pcred.P_rgid,
		Egid:   firstGroup(groups),
		Groups: groups,
		Traced: proc.Proc.P_flag&pTraced != 0,
	}, nil
}

// The effective gid is the first entry of the kernel's group list.
func firstGroup(groups []uint32) uint32 {
	if len(groups) > 0 {
		return groups[0]
	}
	return 0
}
