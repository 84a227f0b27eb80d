package sandbox

import (
	"fmt"
	"strings"
)

// Profile compiles the policy to SBPL, the scheme dialect
// sandbox-exec evaluates. Deny by default, then the process
// plumbing every dynamically linked binary needs, then the policy's
// path grants.
func (self *Policy) Profile() string {
	b := &strings.Builder{}

	b.WriteString("(version 1)\n")
	b.WriteString("(deny default)\n")
	b.WriteString("(allow process-fork)\n")
	b.WriteString("(allow process-exec)\n")
	b.WriteString("(allow sysctl-read)\n")
	b.WriteString("(allow signal (target self))\n")

	for _, p := range self.ReadPaths {
		fmt.Fprintf(b, "(allow file-read* (subpath %q))\n", p)
	}
	for _, p := range self.WritePaths {
		fmt.Fprintf(b, "(allow file-read* (subpath %q))\n", p)
		fmt.Fprintf(b, "(allow file-write* (subpath %q))\n", p)
	}

	if self.AllowNetwork {
		b.WriteString("(allow network*)\n")
		b.WriteString("(allow system-socket)\n")
	}

	return b.String()
}
