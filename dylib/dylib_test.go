package dylib

import (
	"testing"

	"github.com/alecthomas/assert"
)

const otoolFixture = `/usr/bin/true:
	/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1319.100.3)
	/usr/lib/libobjc.A.dylib (compatibility version 1.0.0, current version 228.0.0)
some unrelated trailing line
`

func TestParseOtoolOutput(t *testing.T) {
	libs := ParseOtoolOutput(otoolFixture)
	assert.Equal(t, 2, len(libs))

	assert.Equal(t, "/usr/lib/libSystem.B.dylib", libs[0].Path)
	assert.Equal(t, "1.0.0", libs[0].Compat)
	assert.Equal(t, "1319.100.3", libs[0].Current)

	row := libs[1].ToDict()
	dylib, _ := row.Get("Dylib")
	assert.Equal(t, "/usr/lib/libobjc.A.dylib", dylib)
}

const kextstatFixture = `Index Refs Address            Size       Wired      Name (Version) UUID <Linked Against>
    1  157 0xffffff8000200000 0x10000    0x10000    com.apple.kpi.bsd (19.6.0) F2C0A1B2 <>
   23    0 0xffffff7f80e00000 0x7000     0x7000     com.example.driver (1.2.3) DEADBEEF <1>
`

func TestParseKextstatOutput(t *testing.T) {
	kexts := ParseKextstatOutput(kextstatFixture)
	assert.Equal(t, 2, len(kexts))

	assert.Equal(t, 1, kexts[0].Index)
	assert.Equal(t, 157, kexts[0].Refs)
	assert.Equal(t, "com.apple.kpi.bsd", kexts[0].Name)
	assert.Equal(t, "19.6.0", kexts[0].Version)
	assert.Equal(t, uint64(0x10000), kexts[0].Size)

	assert.Equal(t, "com.example.driver", kexts[1].Name)
}

func TestImportedLibrariesRejectsNonMacho(t *testing.T) {
	// This test binary is an ELF (or PE) on the build machine, or
	// the path does not exist - either way no panic, just an error.
	_, err := ImportedLibraries("/definitely/not/a/file")
	assert.Error(t, err)
}
