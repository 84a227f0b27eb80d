// System V shared memory segments.
//
// Windows section objects (CreateFileMapping and friends) have two
// macOS cousins: POSIX/SysV shared memory and mach memory entries.
// Only the SysV side has an enumeration tool (ipcs), so that is what
// the sections listing shows.

package shm

import (
	"context"
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"
	"github.com/dustin/go-humanize"

	"github.com/analogsec/analog/utils"
)

type Segment struct {
	Id    uint64
	Key   string
	Mode  string
	Owner string
	Group string
	Size  uint64
}

func (self *Segment) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Id", self.Id).
		Set("Key", self.Key).
		Set("Mode", self.Mode).
		Set("Owner", self.Owner).
		Set("Group", self.Group).
		Set("Size", humanize.Bytes(self.Size))
}

func List(ctx context.Context, ipcs_path string) ([]*Segment, error) {
	if ipcs_path == "" {
		ipcs_path = "ipcs"
	}

	stdout, _, err := utils.RunTool(ctx, ipcs_path, "-m", "-b")
	if err != nil {
		return nil, err
	}

	return ParseIpcsOutput(string(stdout)), nil
}

// ParseIpcsOutput decodes `ipcs -m -b` output. Segment lines start
// with the type letter m:
//
//	m  65536 0x0052e2c1 --rw-rw-rw-   root  wheel  1024
func ParseIpcsOutput(output string) []*Segment {
	result := []*Segment{}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 6 || fields[0] != "m" {
			continue
		}

		id, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		segment := &Segment{
			Id:    id,
			Key:   fields[2],
			Mode:  fields[3],
			Owner: fields[4],
			Group: fields[5],
		}

		if len(fields) > 6 {
			size, err := strconv.ParseUint(fields[6], 10, 64)
			if err == nil {
				segment.Size = size
			}
		}

		result = append(result, segment)
	}

	return result
}
