package prefs

import (
	"fmt"
	"sort"

	"github.com/Velocidex/ordereddict"
	"howett.net/plist"
)

// DecodeDomainPlist turns an exported domain plist into one row per
// top level key. Values keep their native type - the renderer
// stringifies them.
func DecodeDomainPlist(data []byte) ([]*ordereddict.Dict, error) {
	var parsed map[string]interface{}
	_, err := plist.Unmarshal(data, &parsed)
	if err != nil {
		return nil, fmt.Errorf("domain plist: %w", err)
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []*ordereddict.Dict{}
	for _, k := range keys {
		value := parsed[k]
		result = append(result, ordereddict.NewDict().
			Set("Key", k).
			Set("Type", fmt.Sprintf("%T", value)).
			Set("Value", value))
	}

	return result, nil
}
