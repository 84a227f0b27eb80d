package signing

import (
	"context"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

// SigningInfo is the parsed form of codesign -dvv output.
type SigningInfo struct {
	Identifier     string
	Format         string
	TeamIdentifier string

	// Leaf first, root last.
	Authority []string

	Flags      string
	Runtime    bool
	SignedTime string
}

// Adhoc reports whether the code directory carries the adhoc flag -
// hashed, but vouched for by no authority.
func (self *SigningInfo) Adhoc() bool {
	return strings.Contains(self.Flags, "adhoc")
}

func (self *SigningInfo) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Identifier", self.Identifier).
		Set("Format", self.Format).
		Set("TeamIdentifier", self.TeamIdentifier).
		Set("Authority", self.Authority).
		Set("Flags", self.Flags).
		Set("HardenedRuntime", self.Runtime).
		Set("SignedTime", self.SignedTime)
}

func Show(ctx context.Context, path, codesign_path string) (
	*SigningInfo, error) {

	if codesign_path == "" {
		codesign_path = "codesign"
	}

	// codesign writes the details to stderr.
	_, stderr, err := utils.RunTool(ctx, codesign_path, "-dvv", path)
	if err != nil {
		return nil, err
	}

	return ParseCodesignInfo(string(stderr)), nil
}

// ParseCodesignInfo decodes the key=value lines of codesign -dvv.
// Authority appears once per certificate in the chain. Flags hide
// inside the CodeDirectory line:
//
//	CodeDirectory v=20500 size=450 flags=0x10000(runtime) hashes=8+7
func ParseCodesignInfo(output string) *SigningInfo {
	result := &SigningInfo{}

	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}

		switch key {
		case "Identifier":
			result.Identifier = value
		case "Format":
			result.Format = value
		case "TeamIdentifier":
			result.TeamIdentifier = value
		case "Authority":
			result.Authority = append(result.Authority, value)
		case "Signed Time", "Timestamp":
			result.SignedTime = value
		case "CodeDirectory v":
			for _, field := range strings.Fields(value) {
				if strings.HasPrefix(field, "flags=") {
					result.Flags = strings.TrimPrefix(field, "flags=")
					result.Runtime = strings.Contains(
						result.Flags, "runtime")
				}
			}
		}
	}

	return result
}
