package utils

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ToolError is returned when an external tool exits non-zero. The
// stderr tail is preserved because tools like codesign report their
// verdict there rather than through the exit code alone.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (self *ToolError) Error() string {
	return fmt.Sprintf("%s: exit status %d: %s",
		self.Tool, self.ExitCode, FirstLine(self.Stderr))
}

// RunTool runs an external command and captures stdout and stderr
// separately. A non-zero exit returns both the captured output and a
// *ToolError so callers can still parse partial output.
func RunTool(ctx context.Context, tool string, args ...string) (
	stdout []byte, stderr []byte, err error) {

	cmd := exec.CommandContext(ctx, tool, args...)

	out := &bytes.Buffer{}
	errs := &bytes.Buffer{}
	cmd.Stdout = out
	cmd.Stderr = errs

	err = cmd.Run()
	if err != nil {
		exit_err, ok := err.(*exec.ExitError)
		if ok {
			return out.Bytes(), errs.Bytes(), &ToolError{
				Tool:     tool,
				ExitCode: exit_err.ExitCode(),
				Stderr:   errs.String(),
			}
		}
		return out.Bytes(), errs.Bytes(), err
	}

	return out.Bytes(), errs.Bytes(), nil
}

func FirstLine(in string) string {
	in = strings.TrimSpace(in)
	idx := strings.IndexByte(in, '\n')
	if idx >= 0 {
		return in[:idx]
	}
	return in
}
