package psutils

import (
	"strconv"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/araddon/dateparse"

	"github.com/analogsec/analog/token"
)

// ParsePsOutput parses `ps -axo pid=,ppid=,uid=,lstart=,comm=`
// output. lstart is a fixed five field timestamp (asctime format)
// and comm may contain spaces, so columns are consumed positionally
// from the left.
func ParsePsOutput(output string) []*ordereddict.Dict {
	result := []*ordereddict.Dict{}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}

		pid, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			continue
		}
		ppid, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			continue
		}
		uid, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}

		create_time := time.Time{}
		parsed, err := dateparse.ParseLocal(
			strings.Join(fields[3:8], " "))
		if err == nil {
			create_time = parsed
		}

		name := strings.Join(fields[8:], " ")

		result = append(result, ordereddict.NewDict().
			SetCaseInsensitive().
			Set("Pid", int32(pid)).
			Set("Ppid", int32(ppid)).
			Set("Name", name).
			Set("Uid", uint32(uid)).
			Set("Username", token.LookupUID(uint32(uid))).
			Set("Elevated", uid == 0).
			Set("Traced", false).
			Set("CreateTime", create_time))
	}

	return result
}
