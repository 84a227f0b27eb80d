package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vmmapFixture = `Process:         true [742]
Path:            /usr/bin/true

==== Non-writable regions for process 742
REGION TYPE                    START - END         [ VSIZE] PRT/MAX SHRMOD  REGION DETAIL
__TEXT                     102bd4000-102bd8000    [   16K] r-x/r-x SM=COW  /usr/bin/true
__LINKEDIT                 102bdc000-102be0000    [   16K] r--/r-- SM=COW  /usr/bin/true

==== Writable regions for process 742
MALLOC_SMALL           7f8e4c800000-7f8e4d000000  [ 8192K] rw-/rwx SM=PRV  MallocHelperZone_0x102bd4000
Stack                  7ff7b0000000-7ff7b0800000  [ 8192K] rw-/rwx SM=PRV  thread 0
`

func TestParseVmmapOutput(t *testing.T) {
	regions := ParseVmmapOutput(vmmapFixture)
	require.Len(t, regions, 4)

	assert.Equal(t, "__TEXT", regions[0].Type)
	assert.Equal(t, uint64(0x102bd4000), regions[0].Start)
	assert.Equal(t, uint64(0x102bd8000), regions[0].End)
	assert.Equal(t, "r-x", regions[0].Prot)
	assert.Equal(t, "r-x", regions[0].MaxProt)
	assert.Equal(t, "COW", regions[0].ShareMode)
	assert.Equal(t, "/usr/bin/true", regions[0].Detail)

	assert.Equal(t, "MALLOC_SMALL", regions[2].Type)
	assert.Equal(t, "16K", regions[0].VSize)

	row := regions[2].ToDict()
	page, _ := row.Get("Page")
	assert.Equal(t, "PAGE_READWRITE", page)
}

func TestProtToPage(t *testing.T) {
	assert.Equal(t, "PAGE_NOACCESS", ProtToPage("---"))
	assert.Equal(t, "PAGE_EXECUTE_READWRITE", ProtToPage("rwx"))
	assert.Equal(t, "PAGE_UNKNOWN(-w-)", ProtToPage("-w-"))
}

func TestAlignRange(t *testing.T) {
	// A range straddling two 4K pages widens to both.
	aligned, size := alignRange(0x1ff0, 0x20, 0x1000)
	assert.Equal(t, uintptr(0x1000), aligned)
	assert.Equal(t, uintptr(0x2000), size)

	// Already aligned stays put.
	aligned, size = alignRange(0x2000, 0x1000, 0x1000)
	assert.Equal(t, uintptr(0x2000), aligned)
	assert.Equal(t, uintptr(0x1000), size)
}

func TestDump(t *testing.T) {
	out := Dump([]byte("analog security notes"), 8)
	assert.Contains(t, out, "61 6e 61 6c 6f 67 20 73")
	assert.NotContains(t, out, "notes")
}
