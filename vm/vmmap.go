// Virtual memory region inspection.
//
// VirtualQueryEx has a direct macOS counterpart in mach_vm_region,
// but the supported user-facing interface is vmmap, which also
// labels regions with their purpose. The protection column pairs
// current and maximum protection - the same current/max split
// VirtualProtect works against.

package vm

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

type Region struct {
	Type      string
	Start     uint64
	End       uint64
	VSize     string
	Prot      string
	MaxProt   string
	ShareMode string
	Detail    string
}

func (self *Region) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Type", self.Type).
		Set("Start", "0x"+strconv.FormatUint(self.Start, 16)).
		Set("End", "0x"+strconv.FormatUint(self.End, 16)).
		Set("VSize", self.VSize).
		Set("Prot", self.Prot).
		Set("MaxProt", self.MaxProt).
		Set("Page", ProtToPage(self.Prot)).
		Set("ShareMode", self.ShareMode).
		Set("Detail", self.Detail)
}

// ProtToPage translates an rwx triple to the PAGE_* constant a
// Windows reader would expect.
func ProtToPage(prot string) string {
	switch prot {
	case "---":
		return "PAGE_NOACCESS"
	case "r--":
		return "PAGE_READONLY"
	case "rw-":
		return "PAGE_READWRITE"
	case "r-x":
		return "PAGE_EXECUTE_READ"
	case "rwx":
		return "PAGE_EXECUTE_READWRITE"
	case "--x":
		return "PAGE_EXECUTE"
	}
	return "PAGE_UNKNOWN(" + prot + ")"
}

var regionRegex = regexp.MustCompile(
	`^(\S.*?)\s+([0-9a-f]+)-([0-9a-f]+)\s+\[\s*([^\]]+?)\s*\]\s+([rwx-]{3})/([rwx-]{3})\s+SM=(\S+)\s*(.*)$`)

func Regions(ctx context.Context, pid int32, vmmap_path string) (
	[]*Region, error) {

	if vmmap_path == "" {
		vmmap_path = "vmmap"
	}

	stdout, _, err := utils.RunTool(ctx, vmmap_path,
		strconv.Itoa(int(pid)))
	if err != nil {
		return nil, err
	}

	return ParseVmmapOutput(string(stdout)), nil
}

// ParseVmmapOutput extracts region lines:
//
//	__TEXT       102bd4000-102bd8000 [  16K] r-x/r-x SM=COW  /usr/bin/true
func ParseVmmapOutput(output string) []*Region {
	result := []*Region{}

	for _, line := range strings.Split(output, "\n") {
		m := regionRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start, err := strconv.ParseUint(m[2], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(m[3], 16, 64)
		if err != nil {
			continue
		}

		result = append(result, &Region{
			Type:      strings.TrimSpace(m[1]),
			Start:     start,
			End:       end,
			VSize:     m[4],
			Prot:      m[5],
			MaxProt:   m[6],
			ShareMode: m[7],
			Detail:    strings.TrimSpace(m[8]),
		})
	}

	return result
}
