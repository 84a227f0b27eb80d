package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	config_obj, err := LoadConfig(
		filepath.Join(t.TempDir(), "no_such_file.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "info", config_obj.Logging.Level)
	assert.Equal(t, "lsof", config_obj.ToolPath("lsof"))
}

func TestToolOverride(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "analog.yaml")
	err := os.WriteFile(filename, []byte(`
Tools:
  lsof: /opt/local/bin/lsof
`), 0600)
	assert.NoError(t, err)

	config_obj, err := LoadConfig(filename)
	assert.NoError(t, err)
	assert.Equal(t, "/opt/local/bin/lsof", config_obj.ToolPath("lsof"))
	assert.Equal(t, "codesign", config_obj.ToolPath("codesign"))
}

func TestValidation(t *testing.T) {
	assert.Error(t, Validate(&Config{
		Logging: &LoggingConfig{Level: "loud"},
	}))
	assert.Error(t, Validate(&Config{
		Output: &OutputConfig{Format: "xml"},
	}))
	assert.Error(t, Validate(&Config{
		Sandbox: &SandboxConfig{ReadPaths: []string{"tmp"}},
	}))
	assert.NoError(t, Validate(GetDefaultConfig()))
}
