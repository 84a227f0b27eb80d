package descriptor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0640))

	desc, err := Describe(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, path, desc.Path)
	assert.Equal(t, os.FileMode(0640), desc.Mode.Perm())
	assert.Len(t, desc.ModeEntries, 3)

	if runtime.GOOS == "darwin" || runtime.GOOS == "linux" {
		assert.Equal(t, uint32(os.Getuid()), desc.Uid)
	}

	row := desc.ToDict()
	mode, pres := row.Get("Mode")
	assert.True(t, pres)
	assert.Contains(t, mode, "rw-r-----")
}

func TestDescribeMissingFile(t *testing.T) {
	_, err := Describe(context.Background(),
		filepath.Join(t.TempDir(), "nope"), Options{})
	assert.Error(t, err)
}
