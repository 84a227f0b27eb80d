//go:build darwin

package psutils

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/Velocidex/ordereddict"
	"github.com/analogsec/analog/token"
)

const pTraced = 0x00000800

func GetProcess(ctx context.Context, pid int32) (*ordereddict.Dict, error) {
	proc, err := getKProc(pid)
	if err != nil {
		return nil, err
	}

	return getProcessData(proc), nil
}

func ListProcesses(ctx context.Context) ([]*ordereddict.Dict, error) {
	result := []*ordereddict.Dict{}
	processes, err := Processes()
	if err != nil {
		return nil, err
	}

	for _, item := range processes {
		result = append(result, getProcessData(&item))
	}

	return result, nil
}

func Processes() ([]unix.KinfoProc, error) {
	var ret []unix.KinfoProc

	kprocs, err := unix.SysctlKinfoProcSlice("kern.proc.all")
	if err != nil {
		return ret, err
	}

	ret = append(ret, kprocs...)
	return ret, nil
}

func getKProc(pid int32) (*unix.KinfoProc, error) {
	return unix.SysctlKinfoProc("kern.proc.pid", int(pid))
}

func getProcessData(proc *unix.KinfoProc) *ordereddict.Dict {
	pid := proc.Proc.P_pid
	name := ByteToString(proc.Proc.P_comm[:])
	uid := proc.Eproc.Ucred.Uid

	return ordereddict.NewDict().
		SetCaseInsensitive().
		Set("Pid", pid).
		Set("Ppid", proc.Eproc.Ppid).
		Set("Name", name).
		Set("Uid", uid).
		Set("Username", token.LookupUID(uid)).
		Set("Elevated", uid == 0).
		Set("Traced", proc.Proc.P_flag&pTraced != 0).
		Set("CreateTime", startTime(proc.Proc.P_starttime.Sec,
			int64(proc.Proc.P_starttime.Usec)))
}
