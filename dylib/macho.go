// Linked library inspection.
//
// The EnumProcessModules analogue on macOS splits in two: static
// imports come from the Mach-O load commands (readable with
// debug/macho, no tool needed), kernel modules come from kextstat.
// otool -L output is also parseable for cases where debug/macho
// cannot open the file (old fat layouts, encrypted binaries).

package dylib

import (
	"debug/macho"
	"fmt"

	"github.com/Velocidex/ordereddict"
)

type LinkedLib struct {
	Path    string
	Compat  string
	Current string
}

func (self *LinkedLib) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Dylib", self.Path).
		Set("Compat", self.Compat).
		Set("Current", self.Current)
}

// ImportedLibraries reads the LC_LOAD_DYLIB entries from a Mach-O
// file, handling both thin and universal (fat) binaries.
func ImportedLibraries(path string) ([]string, error) {
	file, err := macho.Open(path)
	if err == nil {
		defer file.Close()
		return file.ImportedLibraries()
	}

	// Try as a universal binary - report the first architecture,
	// imports rarely differ between slices.
	fat, fat_err := macho.OpenFat(path)
	if fat_err != nil {
		return nil, fmt.Errorf("%s: not a Mach-O file: %w", path, err)
	}
	defer fat.Close()

	if len(fat.Arches) == 0 {
		return nil, fmt.Errorf("%s: universal binary with no slices", path)
	}

	return fat.Arches[0].ImportedLibraries()
}
