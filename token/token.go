// Process credential inspection.
//
// The closest macOS analogue to a Windows access token is the
// process credential set: real/effective uid and gid, the
// supplementary group list, and a handful of kernel flags. Elevation
// maps to euid 0 and BUILTIN\Administrators membership maps to the
// admin group (gid 80).

package token

import (
	"os"

	"github.com/Velocidex/ordereddict"
)

// AdminGroupGid is the fixed gid of the admin group on macOS.
const AdminGroupGid = 80

type Token struct {
	Pid  int32
	Ruid uint32
	Euid uint32
	Rgid uint32
	Egid uint32

	// Supplementary groups.
	Groups []uint32

	// P_TRACED is set while a debugger is attached.
	Traced bool
}

// Self returns the token of the current process. This works on every
// platform - only the pid lookup path is darwin specific.
func Self() *Token {
	groups := []uint32{}
	gids, err := os.Getgroups()
	if err == nil {
		for _, g := range gids {
			groups = append(groups, uint32(g))
		}
	}

	return &Token{
		Pid:    int32(os.Getpid()),
		Ruid:   uint32(os.Getuid()),
		Euid:   uint32(os.Geteuid()),
		Rgid:   uint32(os.Getgid()),
		Egid:   uint32(os.Getegid()),
		Groups: groups,
	}
}

// Elevated is the UAC analogue: an effective uid of 0 confers the
// same "can do anything" status as an elevated administrator token.
func (self *Token) Elevated() bool {
	return self.Euid == 0
}

// Admin reports membership of the admin group, whether or not the
// process is currently running elevated.
func (self *Token) Admin() bool {
	if self.Rgid == AdminGroupGid || self.Egid == AdminGroupGid {
		return true
	}
	for _, g := range self.Groups {
		if g == AdminGroupGid {
			return true
		}
	}
	return false
}

func (self *Token) ToDict() *ordereddict.Dict {
	group_names := []string{}
	for _, g := range self.Groups {
		group_names = append(group_names, LookupGID(g))
	}

	return ordereddict.NewDict().
		Set("Pid", self.Pid).
		Set("Username", LookupUID(self.Euid)).
		Set("Uid", self.Ruid).
		Set("Euid", self.Euid).
		Set("Gid", self.Rgid).
		Set("Egid", self.Egid).
		Set("Groups", group_names).
		Set("Elevated", self.Elevated()).
		Set("Admin", self.Admin()).
		Set("Traced", self.Traced)
}
