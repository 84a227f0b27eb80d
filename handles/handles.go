// Open file handles.
//
// The Windows handle table has no direct macOS API, but lsof reports
// the same information: every open file, socket, pipe and kqueue per
// process. We drive lsof in field mode (-F) which is its documented
// machine readable interface, the same way procfs would be read on
// Linux.

package handles

import (
	"context"
	"strconv"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

type Handle struct {
	Pid    int32
	Fd     string
	Type   string
	Access string
	Name   string
}

func (self *Handle) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Pid", self.Pid).
		Set("Fd", self.Fd).
		Set("Type", self.Type).
		Set("Access", self.Access).
		Set("Name", self.Name)
}

type Options struct {
	// Restrict to one process.
	Pid int32

	// Only unix domain sockets - the local RPC endpoints that map
	// loosely to ALPC ports.
	UnixOnly bool

	LsofPath string
}

func List(ctx context.Context, opts Options) ([]*Handle, error) {
	lsof := opts.LsofPath
	if lsof == "" {
		lsof = "lsof"
	}

	// -n/-P: no name resolution, -F: field mode with pid, fd,
	// access, type and name records.
	args := []string{"-n", "-P", "-F", "pfatn"}
	if opts.Pid > 0 {
		args = append(args, "-a", "-p", strconv.Itoa(int(opts.Pid)))
	}
	if opts.UnixOnly {
		args = append(args, "-U")
	}

	stdout, _, err := utils.RunTool(ctx, lsof, args...)
	if err != nil {
		// lsof exits 1 when some process info was unavailable but
		// still prints what it could. Only fail with no output.
		if len(stdout) == 0 {
			return nil, err
		}
	}

	return ParseLsofOutput(stdout), nil
}
