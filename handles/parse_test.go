package handles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Captured from `lsof -n -P -F pfatn` on a mac, trimmed.
const lsofFixture = `p312
fcwd
a
tDIR
n/
ftxt
a
tREG
n/usr/libexec/secd
f3
au
tunix
n/private/var/run/mDNSResponder
p845
f7
ar
tREG
n/Users/alice/Library/Preferences/com.apple.finder.plist
`

func TestParseLsofOutput(t *testing.T) {
	result := ParseLsofOutput([]byte(lsofFixture))
	require.Len(t, result, 4)

	assert.Equal(t, Handle{
		Pid: 312, Fd: "cwd", Type: "DIR", Access: "", Name: "/",
	}, *result[0])

	assert.Equal(t, Handle{
		Pid: 312, Fd: "3", Type: "unix", Access: "u",
		Name: "/private/var/run/mDNSResponder",
	}, *result[2])

	// The pid carries across sections.
	assert.Equal(t, int32(845), result[3].Pid)
	assert.Equal(t, "r", result[3].Access)
}

func TestParseLsofOutputIncomplete(t *testing.T) {
	// A section without a name record is dropped rather than
	// emitted half empty.
	result := ParseLsofOutput([]byte("p99\nf1\ntREG\n"))
	assert.Empty(t, result)

	assert.Empty(t, ParseLsofOutput(nil))
}

func TestHandleToDict(t *testing.T) {
	h := &Handle{Pid: 1, Fd: "5", Type: "PIPE", Name: "->0xdead"}
	row := h.ToDict()
	assert.Equal(t, []string{"Pid", "Fd", "Type", "Access", "Name"},
		row.Keys())
}
