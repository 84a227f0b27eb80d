package integrity

import (
	"os"
	"strings"
)

// InAppSandbox reports whether the current process runs inside the
// App Sandbox. Sandboxed processes get a container id in the
// environment and a home directory redirected into the container.
func InAppSandbox() bool {
	if os.Getenv("APP_SANDBOX_CONTAINER_ID") != "" {
		return true
	}

	home, err := os.UserHomeDir()
	if err == nil && strings.Contains(home, "/Library/Containers/") {
		return true
	}

	return false
}

// SandboxExecPath is where macOS keeps the sandbox-exec helper. A
// var so tests can point it elsewhere.
var SandboxExecPath = "/usr/bin/sandbox-exec"

func SandboxExecAvailable() bool {
	_, err := os.Stat(SandboxExecPath)
	return err == nil
}
