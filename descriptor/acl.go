package descriptor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

// ACE is one macOS ACL entry as attached with chmod +a. Unlike the
// synthesized mode entries these are real ordered ACEs with deny
// support, which is what makes them the honest DACL analogue.
type ACE struct {
	Index     int      `json:"Index"`
	Kind      string   `json:"Kind"` // user or group
	Principal string   `json:"Principal"`
	Allow     bool     `json:"Allow"`
	Perms     []string `json:"Perms"`
	Inherited bool     `json:"Inherited,omitempty"`
}

func (self ACE) String() string {
	effect := "deny"
	if self.Allow {
		effect = "allow"
	}
	return fmt.Sprintf("%s:%s %s %s", self.Kind, self.Principal,
		effect, strings.Join(self.Perms, ","))
}

func (self ACE) ToDict() *ordereddict.Dict {
	effect := "deny"
	if self.Allow {
		effect = "allow"
	}
	return ordereddict.NewDict().
		Set("Index", self.Index).
		Set("Kind", self.Kind).
		Set("Principal", self.Principal).
		Set("Effect", effect).
		Set("Perms", strings.Join(self.Perms, ",")).
		Set("Inherited", self.Inherited)
}

// ReadACL shells out to ls -lde and parses the ACE continuation
// lines. There is no public syscall API for reading macOS ACLs
// without cgo, and ls output is the documented interface everyone
// uses.
func ReadACL(ctx context.Context, path, ls_path string) ([]ACE, error) {
	if ls_path == "" {
		ls_path = "ls"
	}

	stdout, _, err := utils.RunTool(ctx, ls_path, "-lde", path)
	if err != nil {
		return nil, err
	}

	return ParseLsACL(string(stdout)), nil
}

// ParseLsACL extracts ACE lines from ls -le output. ACE lines look
// like:
//
//	0: user:bob allow read,write
//	1: group:admin inherited deny delete
//
// The first line (the regular ls listing) and anything unparseable
// is skipped, which also makes this safe on paths with spaces.
func ParseLsACL(output string) []ACE {
	result := []ACE{}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		idx_str, rest, found := strings.Cut(line, ": ")
		if !found {
			continue
		}

		index, err := strconv.Atoi(idx_str)
		if err != nil {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) < 3 {
			continue
		}

		kind, principal, found := strings.Cut(fields[0], ":")
		if !found {
			continue
		}

		ace := ACE{
			Index:     index,
			Kind:      kind,
			Principal: principal,
		}

		rest_fields := fields[1:]
		if rest_fields[0] == "inherited" {
			ace.Inherited = true
			rest_fields = rest_fields[1:]
			if len(rest_fields) < 2 {
				continue
			}
		}

		switch rest_fields[0] {
		case "allow":
			ace.Allow = true
		case "deny":
			ace.Allow = false
		default:
			continue
		}

		ace.Perms = strings.Split(rest_fields[1], ",")
		result = append(result, ace)
	}

	return result
}

// Grant appends an allow/deny entry, e.g.
// Grant(ctx, "file", "user:bob", true, []string{"read"}, "").
func Grant(ctx context.Context, path, principal string,
	allow bool, perms []string, chmod_path string) error {

	if chmod_path == "" {
		chmod_path = "chmod"
	}

	effect := "deny"
	if allow {
		effect = "allow"
	}

	entry := fmt.Sprintf("%s %s %s", principal, effect,
		strings.Join(perms, ","))
	_, _, err := utils.RunTool(ctx, chmod_path, "+a", entry, path)
	return err
}

// Revoke removes a matching entry with chmod -a.
func Revoke(ctx context.Context, path, principal string,
	allow bool, perms []string, chmod_path string) error {

	if chmod_path == "" {
		chmod_path = "chmod"
	}

	effect := "deny"
	if allow {
		effect = "allow"
	}

	entry := fmt.Sprintf("%s %s %s", principal, effect,
		strings.Join(perms, ","))
	_, _, err := utils.RunTool(ctx, chmod_path, "-a", entry, path)
	return err
}
