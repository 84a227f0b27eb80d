//go:build darwin

package shm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentLifecycle(t *testing.T) {
	id, err := MakeSegment(4096)
	require.NoError(t, err)
	defer func() {
		_ = RemoveSegment(id)
	}()

	buf, err := AttachSegment(id, false)
	require.NoError(t, err)
	require.Len(t, buf, 4096)

	copy(buf, []byte("section contents"))
	require.NoError(t, DetachSegment(buf))

	// The segment outlives its attachments - a fresh read only view
	// sees the same bytes.
	readonly, err := AttachSegment(id, true)
	require.NoError(t, err)

	assert.Equal(t, []byte("section contents"), readonly[:16])
	require.NoError(t, DetachSegment(readonly))

	require.NoError(t, RemoveSegment(id))
}
