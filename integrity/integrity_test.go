package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analogsec/analog/token"
)

func TestLevelFor(t *testing.T) {
	root := &token.Token{Euid: 0}
	admin := &token.Token{Ruid: 501, Euid: 501,
		Groups: []uint32{20, token.AdminGroupGid}}
	standard := &token.Token{Ruid: 502, Euid: 502, Groups: []uint32{20}}

	assert.Equal(t, LevelSystem, LevelFor(root, false))
	assert.Equal(t, LevelHigh, LevelFor(admin, false))
	assert.Equal(t, LevelMedium, LevelFor(standard, false))

	// Sandbox drops everyone but root to Low.
	assert.Equal(t, LevelLow, LevelFor(admin, true))
	assert.Equal(t, LevelLow, LevelFor(standard, true))
	assert.Equal(t, LevelSystem, LevelFor(root, true))
}

func TestDescribeRow(t *testing.T) {
	row := Describe(&token.Token{Pid: 99, Ruid: 501, Euid: 501}, false)

	level, _ := row.Get("Level")
	assert.Equal(t, "Medium", level)

	rid, _ := row.Get("Rid")
	assert.Equal(t, uint32(0x2000), rid)
}

func TestParseCsrutilStatusEnabled(t *testing.T) {
	status := ParseCsrutilStatus(
		"System Integrity Protection status: enabled.\n")
	assert.True(t, status.Enabled)
	assert.Empty(t, status.Features.Keys())
}

func TestParseCsrutilStatusCustom(t *testing.T) {
	output := `System Integrity Protection status: unknown (Custom Configuration).

Configuration:
	Apple Internal: disabled
	Kext Signing: enabled
	Filesystem Protections: enabled
	Debugging Restrictions: disabled

This is an unsupported configuration, likely to break in the future and leave your machine in an unknown state.
`
	status := ParseCsrutilStatus(output)
	assert.False(t, status.Enabled)

	require.Equal(t, []string{
		"Apple Internal", "Kext Signing",
		"Filesystem Protections", "Debugging Restrictions"},
		status.Features.Keys())

	kext, _ := status.Features.Get("Kext Signing")
	assert.Equal(t, "enabled", kext)

	rows := status.ToRows()
	require.Len(t, rows, 5)
	feature, _ := rows[0].Get("Feature")
	assert.Equal(t, "System Integrity Protection", feature)
}
