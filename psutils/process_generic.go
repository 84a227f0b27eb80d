//go:build !darwin

package psutils

import (
	"context"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

func GetProcess(ctx context.Context, pid int32) (*ordereddict.Dict, error) {
	rows, err := ListProcesses(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		row_pid, pres := row.Get("Pid")
		if pres && row_pid == pid {
			return row, nil
		}
	}

	return nil, utils.NotFoundError
}

func ListProcesses(ctx context.Context) ([]*ordereddict.Dict, error) {
	stdout, _, err := utils.RunTool(ctx, "ps",
		"-axo", "pid=,ppid=,uid=,lstart=,comm=")
	if err != nil {
		return nil, err
	}

	return ParsePsOutput(string(stdout)), nil
}
