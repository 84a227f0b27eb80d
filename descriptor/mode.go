package descriptor

import (
	"os"
)

// AccessEntry renders one class of the POSIX mode as a DACL-style
// allow entry. POSIX modes have no deny entries - absence of a bit
// is the deny.
type AccessEntry struct {
	Principal string   `json:"Principal"`
	Access    []string `json:"Access"`

	// Set for the setuid/setgid/sticky annotations.
	Special string `json:"Special,omitempty"`
}

// ModeEntries expands a file mode into owner/group/other entries.
func ModeEntries(mode os.FileMode) []AccessEntry {
	perm := mode.Perm()

	result := []AccessEntry{
		classEntry("OWNER", uint32(perm>>6)&7),
		classEntry("GROUP", uint32(perm>>3)&7),
		classEntry("EVERYONE", uint32(perm)&7),
	}

	if mode&os.ModeSetuid != 0 {
		result[0].Special = "setuid"
	}
	if mode&os.ModeSetgid != 0 {
		result[1].Special = "setgid"
	}
	if mode&os.ModeSticky != 0 {
		result[2].Special = "sticky"
	}

	return result
}

func classEntry(principal string, bits uint32) AccessEntry {
	access := []string{}
	if bits&4 != 0 {
		access = append(access, "read")
	}
	if bits&2 != 0 {
		access = append(access, "write")
	}
	if bits&1 != 0 {
		access = append(access, "execute")
	}
	return AccessEntry{Principal: principal, Access: access}
}
