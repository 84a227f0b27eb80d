package integrity

import (
	"context"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

// SIPStatus is the parsed csrutil status output. SIP is the closest
// macOS concept to Windows mandatory integrity control applied to
// the filesystem: even uid 0 cannot write to protected paths while
// it is enabled.
type SIPStatus struct {
	Enabled bool

	// Per feature status from csrutil status --verbose, e.g.
	// "Filesystem Protections" -> "enabled".
	Features *ordereddict.Dict
}

func (self *SIPStatus) ToRows() []*ordereddict.Dict {
	status := "disabled"
	if self.Enabled {
		status = "enabled"
	}

	result := []*ordereddict.Dict{
		ordereddict.NewDict().
			Set("Feature", "System Integrity Protection").
			Set("Status", status),
	}

	for _, feature := range self.Features.Keys() {
		feature_status, _ := self.Features.Get(feature)
		result = append(result, ordereddict.NewDict().
			Set("Feature", feature).
			Set("Status", feature_status))
	}

	return result
}

func SIP(ctx context.Context, csrutil_path string) (*SIPStatus, error) {
	if csrutil_path == "" {
		csrutil_path = "csrutil"
	}

	stdout, _, err := utils.RunTool(ctx, csrutil_path, "status")
	if err != nil {
		return nil, err
	}

	return ParseCsrutilStatus(string(stdout)), nil
}

// ParseCsrutilStatus decodes csrutil output:
//
//	System Integrity Protection status: enabled.
//
// and in custom configurations the verbose per-feature block:
//
//	Configuration:
//	        Apple Internal: disabled
//	        Kext Signing: enabled
func ParseCsrutilStatus(output string) *SIPStatus {
	result := &SIPStatus{Features: ordereddict.NewDict()}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "System Integrity Protection status:") {
			result.Enabled = strings.Contains(line, "enabled")
			continue
		}

		feature, status, found := strings.Cut(line, ": ")
		if !found || feature == "Configuration" {
			continue
		}

		status = strings.TrimSuffix(strings.TrimSpace(status), ".")
		switch status {
		case "enabled", "disabled":
			result.Features.Set(feature, status)
		}
	}

	return result
}
