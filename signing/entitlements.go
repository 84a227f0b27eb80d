package signing

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/Velocidex/ordereddict"
	"howett.net/plist"

	"github.com/analogsec/analog/utils"
)

// Entitlements extracts and decodes the entitlements plist of a
// signed binary. Entitlements are the capability grants baked into
// the signature - app sandbox, JIT, library validation opt-outs -
// and correspond to the privilege set carried by a Windows token,
// except they are immutable and attested by the signature.
func Entitlements(ctx context.Context, path, codesign_path string) (
	*ordereddict.Dict, error) {

	if codesign_path == "" {
		codesign_path = "codesign"
	}

	stdout, _, err := utils.RunTool(ctx, codesign_path,
		"-d", "--entitlements", "-", "--xml", path)
	if err != nil {
		return nil, err
	}

	return DecodeEntitlements(stdout)
}

// DecodeEntitlements parses an entitlements plist. Older codesign
// versions prefix the XML with a binary blob header (magic
// 0xfade7171), so everything before the first '<' is discarded.
func DecodeEntitlements(data []byte) (*ordereddict.Dict, error) {
	idx := bytes.IndexByte(data, '<')
	if idx < 0 {
		// No XML at all - an unsigned binary yields empty output.
		return ordereddict.NewDict(), nil
	}
	data = data[idx:]

	var parsed map[string]interface{}
	_, err := plist.Unmarshal(data, &parsed)
	if err != nil {
		return nil, fmt.Errorf("entitlements plist: %w", err)
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := ordereddict.NewDict()
	for _, k := range keys {
		result.Set(k, parsed[k])
	}

	return result, nil
}
