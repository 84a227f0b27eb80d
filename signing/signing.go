// Code signature inspection via codesign.
//
// Authenticode maps cleanly onto macOS code signing: the authority
// chain is the certificate chain, the team identifier is the
// publisher, entitlements fill the role of signed manifest
// capabilities, and the hardened runtime flag is the closest thing
// to a forced integrity policy. codesign is the only supported
// interface to all of it, so this package is a parser around its
// output.

package signing

import (
	"context"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

type Status string

const (
	StatusSigned   Status = "Signed"
	StatusAdhoc    Status = "Adhoc"
	StatusUnsigned Status = "Unsigned"
	StatusInvalid  Status = "Invalid"
)

type VerifyResult struct {
	Path   string
	Status Status
	Detail string
}

func (self *VerifyResult) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Path", self.Path).
		Set("Status", string(self.Status)).
		Set("Detail", self.Detail)
}

// Verify runs codesign --verify and classifies the result. codesign
// communicates through its exit code and stderr text.
func Verify(ctx context.Context, path, codesign_path string) (
	*VerifyResult, error) {

	if codesign_path == "" {
		codesign_path = "codesign"
	}

	_, stderr, err := utils.RunTool(ctx, codesign_path,
		"--verify", "--deep", "--strict", path)

	result := &VerifyResult{Path: path}

	if err == nil {
		// Ad-hoc signatures verify cleanly, so the distinction
		// only shows up in the code directory flags.
		result.Status = StatusSigned
		info, info_err := Show(ctx, path, codesign_path)
		if info_err == nil && info.Adhoc() {
			result.Status = StatusAdhoc
			result.Detail = "code directory flags " + info.Flags
		}
		return result, nil
	}

	tool_err, ok := err.(*utils.ToolError)
	if !ok {
		// codesign itself could not run.
		return nil, err
	}

	detail := utils.FirstLine(string(stderr))
	if detail == "" {
		detail = utils.FirstLine(tool_err.Stderr)
	}
	result.Detail = detail

	switch {
	case strings.Contains(detail, "not signed at all"):
		result.Status = StatusUnsigned
	default:
		result.Status = StatusInvalid
	}

	return result, nil
}
