package dylib

import (
	"context"
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"
	"github.com/dustin/go-humanize"

	"github.com/analogsec/analog/utils"
)

// Kext is one loaded kernel extension - the macOS analogue of a
// kernel driver module listed by a Windows "driverquery".
type Kext struct {
	Index   int
	Refs    int
	Address string
	Size    uint64
	Name    string
	Version string
}

func (self *Kext) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Index", self.Index).
		Set("Refs", self.Refs).
		Set("Address", self.Address).
		Set("Size", humanize.Bytes(self.Size)).
		Set("Name", self.Name).
		Set("Version", self.Version)
}

func ListKexts(ctx context.Context, kextstat_path string) ([]*Kext, error) {
	if kextstat_path == "" {
		kextstat_path = "kextstat"
	}

	stdout, _, err := utils.RunTool(ctx, kextstat_path, "-l")
	if err != nil {
		return nil, err
	}

	return ParseKextstatOutput(string(stdout)), nil
}

// ParseKextstatOutput decodes kextstat -l lines:
//
//	Index Refs Address            Size       Wired      Name (Version) UUID <Linked Against>
//	    1  157 0xffffff8000200000 0x10000    0x10000    com.apple.kpi.bsd (19.6.0) ...
func ParseKextstatOutput(output string) []*Kext {
	result := []*Kext{}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}

		index, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		refs, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		size, _ := strconv.ParseUint(
			strings.TrimPrefix(fields[3], "0x"), 16, 64)

		kext := &Kext{
			Index:   index,
			Refs:    refs,
			Address: fields[2],
			Size:    size,
			Name:    fields[5],
		}

		if len(fields) > 6 {
			kext.Version = strings.Trim(fields[6], "()")
		}

		result = append(result, kext)
	}

	return result
}
