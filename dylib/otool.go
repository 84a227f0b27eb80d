package dylib

import (
	"context"
	"regexp"
	"strings"

	"github.com/analogsec/analog/utils"
)

var otoolLibRegex = regexp.MustCompile(
	`^\s+(\S+) \(compatibility version ([\d.]+), current version ([\d.]+)`)

// LinkedLibraries shells out to otool -L which also reports the
// version stamps debug/macho does not surface.
func LinkedLibraries(ctx context.Context, path, otool_path string) (
	[]*LinkedLib, error) {

	if otool_path == "" {
		otool_path = "otool"
	}

	stdout, _, err := utils.RunTool(ctx, otool_path, "-L", path)
	if err != nil {
		return nil, err
	}

	return ParseOtoolOutput(string(stdout)), nil
}

// ParseOtoolOutput decodes otool -L listings:
//
//	/usr/bin/true:
//		/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1319.0.0)
func ParseOtoolOutput(output string) []*LinkedLib {
	result := []*LinkedLib{}

	for _, line := range strings.Split(output, "\n") {
		m := otoolLibRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		result = append(result, &LinkedLib{
			Path:    m[1],
			Compat:  m[2],
			Current: m[3],
		})
	}

	return result
}
