package sandbox

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/shlex"
)

type RunOptions struct {
	// Run the child under a different identity (requires root).
	Uid uint32
	Gid uint32

	// Override for the sandbox-exec binary.
	SandboxExecPath string

	Stdout *os.File
	Stderr *os.File
}

// SplitCommand splits a single command string into argv, respecting
// shell quoting.
func SplitCommand(command string) ([]string, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("sandbox: empty command")
	}
	return argv, nil
}

// RunConfined executes argv under the policy. On macOS the command
// is wrapped with sandbox-exec and a generated profile; elsewhere
// (or when sandbox-exec is missing) it refuses rather than run the
// command unconfined.
func RunConfined(ctx context.Context, policy *Policy, argv []string,
	opts RunOptions) (int, error) {

	if len(argv) == 0 {
		return -1, fmt.Errorf("sandbox: empty command")
	}

	sandbox_exec := opts.SandboxExecPath
	if sandbox_exec == "" {
		sandbox_exec = "/usr/bin/sandbox-exec"
	}

	_, err := os.Stat(sandbox_exec)
	if err != nil {
		return -1, fmt.Errorf(
			"sandbox: sandbox-exec not available at %s, refusing to run unconfined",
			sandbox_exec)
	}

	profile, err := os.CreateTemp("", "analog-sbpl-*.sb")
	if err != nil {
		return -1, err
	}
	defer os.Remove(profile.Name())

	_, err = profile.WriteString(policy.Profile())
	if err != nil {
		profile.Close()
		return -1, err
	}
	profile.Close()

	wrapped := append([]string{"-f", profile.Name()}, argv...)
	cmd := exec.CommandContext(ctx, sandbox_exec, wrapped...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err = configureCredentials(cmd, opts)
	if err != nil {
		return -1, err
	}

	err = cmd.Run()
	if err != nil {
		exit_err, ok := err.(*exec.ExitError)
		if ok {
			return exit_err.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
