// Path allow-list policy.
//
// This is the discretionary half of the sandbox story: a policy of
// path prefixes the confined process may read or write, plus a
// network switch. Check answers policy questions in-process; the
// same policy compiles to an SBPL profile for sandbox-exec when a
// command is actually run confined.

package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/analogsec/analog/config"
)

type Access int

const (
	AccessRead Access = iota
	AccessWrite
)

func (self Access) String() string {
	if self == AccessWrite {
		return "write"
	}
	return "read"
}

type Policy struct {
	ReadPaths    []string
	WritePaths   []string
	AllowNetwork bool
}

func FromConfig(config_obj *config.Config) *Policy {
	result := &Policy{}
	if config_obj.Sandbox != nil {
		result.ReadPaths = config_obj.Sandbox.ReadPaths
		result.WritePaths = config_obj.Sandbox.WritePaths
		result.AllowNetwork = config_obj.Sandbox.AllowNetwork
	}
	return result
}

// Check decides whether the policy admits an access. Write paths
// are implicitly readable. Symlinks are resolved first so a link
// from an allowed prefix into a denied one does not widen the
// policy.
func (self *Policy) Check(path string, access Access) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		path = resolved
	}
	path = filepath.Clean(path)

	if !filepath.IsAbs(path) {
		return fmt.Errorf("sandbox: relative path %q", path)
	}

	allowed := self.WritePaths
	if access == AccessRead {
		allowed = make([]string, 0,
			len(self.ReadPaths)+len(self.WritePaths))
		allowed = append(allowed, self.ReadPaths...)
		allowed = append(allowed, self.WritePaths...)
	}

	for _, prefix := range allowed {
		if underPrefix(path, prefix) {
			return nil
		}
	}

	return fmt.Errorf("sandbox: %s access to %s denied by policy",
		access, path)
}

// underPrefix is a path-component aware prefix test: /usr admits
// /usr/bin but not /usrX.
func underPrefix(path, prefix string) bool {
	prefix = filepath.Clean(prefix)
	if path == prefix {
		return true
	}
	if prefix == "/" {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
