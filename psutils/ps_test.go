package psutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const psFixture = `    1     0     0 Mon Mar  9 08:01:12 2026 /sbin/launchd
  501   440   501 Mon Mar  9 08:05:47 2026 Google Chrome Helper
  bad   row   here not a date at all now garbage
  742     1   501 Tue Mar 10 11:22:33 2026 nc
`

func TestParsePsOutput(t *testing.T) {
	rows := ParsePsOutput(psFixture)
	require.Len(t, rows, 3)

	name, _ := rows[0].Get("Name")
	assert.Equal(t, "/sbin/launchd", name)

	elevated, _ := rows[0].Get("Elevated")
	assert.Equal(t, true, elevated)

	// comm with spaces survives.
	name, _ = rows[1].Get("Name")
	assert.Equal(t, "Google Chrome Helper", name)

	ppid, _ := rows[2].Get("Ppid")
	assert.Equal(t, int32(1), ppid)

	elevated, _ = rows[2].Get("Elevated")
	assert.Equal(t, false, elevated)
}

func TestParsePsOutputEmpty(t *testing.T) {
	assert.Empty(t, ParsePsOutput(""))
	assert.Empty(t, ParsePsOutput("\n\n"))
}

func TestStartTime(t *testing.T) {
	// Half a second of microseconds must come out as half a second,
	// not half a microsecond.
	ts := startTime(1756000000, 500000)
	assert.Equal(t, int64(1756000000), ts.Unix())
	assert.Equal(t, 500*time.Millisecond,
		time.Duration(ts.Nanosecond()))

	ts = startTime(1756000000, 0)
	assert.Equal(t, 0, ts.Nanosecond())
}

func TestByteToString(t *testing.T) {
	assert.Equal(t, "launchd",
		ByteToString([]byte{'l', 'a', 'u', 'n', 'c', 'h', 'd', 0, 0}))
	assert.Equal(t, "", ByteToString([]byte{0, 0}))
}
