package token

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfMatchesOsPackage(t *testing.T) {
	tok := Self()

	assert.Equal(t, int32(os.Getpid()), tok.Pid)
	assert.Equal(t, uint32(os.Getuid()), tok.Ruid)
	assert.Equal(t, uint32(os.Geteuid()), tok.Euid)
	assert.Equal(t, tok.Euid == 0, tok.Elevated())
}

func TestAdminDetection(t *testing.T) {
	assert.False(t, (&Token{Ruid: 501, Rgid: 20}).Admin())
	assert.True(t, (&Token{Rgid: AdminGroupGid}).Admin())
	assert.True(t, (&Token{Groups: []uint32{20, 12, AdminGroupGid}}).Admin())
}

func TestToDictShape(t *testing.T) {
	tok := &Token{Pid: 1, Ruid: 0, Euid: 0, Groups: []uint32{0}}
	row := tok.ToDict()

	elevated, pres := row.Get("Elevated")
	assert.True(t, pres)
	assert.Equal(t, true, elevated)

	assert.Equal(t, []string{
		"Pid", "Username", "Uid", "Euid", "Gid", "Egid",
		"Groups", "Elevated", "Admin", "Traced"}, row.Keys())
}

func TestLookupCachesMisses(t *testing.T) {
	// An absurd uid resolves to its own number and must not panic.
	assert.Equal(t, "4294000000", LookupUID(4294000000))
	// Second call is served from cache.
	assert.Equal(t, "4294000000", LookupUID(4294000000))
}
