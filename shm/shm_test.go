package shm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ipcsFixture = `IPC status from <running system> as of Sun Aug 23 10:11:12 UTC 2026
T     ID     KEY        MODE       OWNER    GROUP  SEGSZ
Shared Memory:
m  65536 0x0052e2c1 --rw-rw-rw-     root    wheel  4096
m  65537 0x00000000 --rw-------    alice    staff  1048576
`

func TestParseIpcsOutput(t *testing.T) {
	segments := ParseIpcsOutput(ipcsFixture)
	require.Len(t, segments, 2)

	assert.Equal(t, uint64(65536), segments[0].Id)
	assert.Equal(t, "0x0052e2c1", segments[0].Key)
	assert.Equal(t, "root", segments[0].Owner)
	assert.Equal(t, uint64(4096), segments[0].Size)

	row := segments[1].ToDict()
	size, _ := row.Get("Size")
	assert.Equal(t, "1.0 MB", size)
}

func TestParseIpcsOutputNoSegments(t *testing.T) {
	assert.Empty(t, ParseIpcsOutput("IPC status\nT ID KEY\nShared Memory:\n"))
	assert.Empty(t, ParseIpcsOutput(""))
}
