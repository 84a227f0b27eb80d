package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Velocidex/ordereddict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analogsec/analog/config"
)

func TestGetLoggerIsCached(t *testing.T) {
	SuppressLogging = true
	defer Reset()

	config_obj := config.GetDefaultConfig()
	require.NoError(t, InitLogging(config_obj))

	first := GetLogger(config_obj, &GenericComponent)
	second := GetLogger(config_obj, &GenericComponent)
	assert.Same(t, first, second)

	other := GetLogger(config_obj, &ToolComponent)
	assert.NotSame(t, first, other)
}

func TestAuditLogWritesToComponentFile(t *testing.T) {
	SuppressLogging = true
	defer Reset()

	tmp_dir := t.TempDir()

	config_obj := config.GetDefaultConfig()
	config_obj.Logging.OutputDirectory = tmp_dir
	require.NoError(t, InitLogging(config_obj))

	LogAudit(config_obj, "chmod", ordereddict.NewDict().
		Set("Path", "/tmp/x").
		Set("Mode", "0640"))

	data, err := os.ReadFile(filepath.Join(tmp_dir, "audit.log"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "chmod")
	assert.Contains(t, string(data), "/tmp/x")
	assert.Contains(t, string(data), "0640")
}
