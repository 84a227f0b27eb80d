package descriptor

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quarantine is the decoded com.apple.quarantine attribute. The
// value is semicolon separated: flags (hex), download time (hex unix
// seconds), agent name, and optionally an event UUID.
type Quarantine struct {
	Flags      uint64
	Downloaded time.Time
	Agent      string
	EventId    string
}

func (self *Quarantine) String() string {
	return fmt.Sprintf("%s at %s", self.Agent,
		self.Downloaded.UTC().Format(time.RFC3339))
}

func ParseQuarantine(value string) (*Quarantine, error) {
	parts := strings.Split(strings.TrimSpace(value), ";")
	if len(parts) < 3 {
		return nil, fmt.Errorf(
			"quarantine attribute has %d fields, need at least 3",
			len(parts))
	}

	flags, err := strconv.ParseUint(parts[0], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("quarantine flags %q: %w", parts[0], err)
	}

	epoch, err := strconv.ParseInt(parts[1], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("quarantine timestamp %q: %w", parts[1], err)
	}

	result := &Quarantine{
		Flags:      flags,
		Downloaded: time.Unix(epoch, 0),
		Agent:      parts[2],
	}
	if len(parts) > 3 {
		result.EventId = parts[3]
	}

	return result, nil
}
