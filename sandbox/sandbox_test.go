package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analogsec/analog/config"
)

func testPolicy() *Policy {
	return &Policy{
		ReadPaths:  []string{"/usr", "/bin"},
		WritePaths: []string{"/private/tmp"},
	}
}

func TestPolicyCheck(t *testing.T) {
	policy := testPolicy()

	assert.NoError(t, policy.Check("/usr/bin/true", AccessRead))
	assert.NoError(t, policy.Check("/usr", AccessRead))
	assert.NoError(t, policy.Check("/private/tmp/scratch", AccessWrite))

	// Write paths are readable too.
	assert.NoError(t, policy.Check("/private/tmp/scratch", AccessRead))

	// Read paths are not writable.
	assert.Error(t, policy.Check("/usr/bin/true", AccessWrite))

	assert.Error(t, policy.Check("/etc/passwd", AccessRead))
	assert.Error(t, policy.Check("relative/path", AccessRead))
}

func TestPolicyCheckPrefixBoundary(t *testing.T) {
	policy := testPolicy()

	// /usr must not admit /usrX.
	assert.Error(t, policy.Check("/usrX/bin/evil", AccessRead))

	// Dot segments cannot escape.
	assert.Error(t, policy.Check("/usr/../etc/passwd", AccessRead))
}

func TestPolicyRootPrefix(t *testing.T) {
	policy := &Policy{ReadPaths: []string{"/"}}
	assert.NoError(t, policy.Check("/anything/at/all", AccessRead))
}

func TestFromConfig(t *testing.T) {
	policy := FromConfig(config.GetDefaultConfig())
	assert.NotEmpty(t, policy.ReadPaths)
	assert.False(t, policy.AllowNetwork)
}

func TestProfileGeneration(t *testing.T) {
	policy := testPolicy()
	profile := policy.Profile()

	assert.Contains(t, profile, "(version 1)")
	assert.Contains(t, profile, "(deny default)")
	assert.Contains(t, profile, `(allow file-read* (subpath "/usr"))`)
	assert.Contains(t, profile, `(allow file-write* (subpath "/private/tmp"))`)
	assert.NotContains(t, profile, "network")

	policy.AllowNetwork = true
	assert.Contains(t, policy.Profile(), "(allow network*)")
}

func TestSplitCommand(t *testing.T) {
	argv, err := SplitCommand(`codesign --verify "/Applications/My App.app"`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"codesign", "--verify", "/Applications/My App.app"}, argv)

	_, err = SplitCommand("")
	assert.Error(t, err)
}

func TestRunConfinedRequiresSandboxExec(t *testing.T) {
	_, err := RunConfined(context.Background(), testPolicy(),
		[]string{"/usr/bin/true"},
		RunOptions{SandboxExecPath: "/nonexistent/sandbox-exec"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to run unconfined")
}
