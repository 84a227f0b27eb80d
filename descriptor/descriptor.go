// File security descriptors, macOS style.
//
// A Windows security descriptor bundles the owner SID, group SID,
// DACL and SACL. The macOS equivalent is spread across several
// mechanisms which this package gathers into one view:
//
//   - owner uid / group gid (the SID analogues)
//   - POSIX mode bits, expanded to DACL-like entries
//   - the optional ACL attached via chmod +a (real ordered ACEs)
//   - BSD file flags (SF_RESTRICTED is the SIP marker)
//   - extended attributes, with com.apple.quarantine decoded
//     (the mark-of-the-web analogue)

package descriptor

import (
	"context"
	"os"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/token"
)

type Descriptor struct {
	Path  string
	Owner string
	Group string
	Uid   uint32
	Gid   uint32
	Mode  os.FileMode

	// The three mode classes rendered as ACE-like entries.
	ModeEntries []AccessEntry

	// Real ACL entries, in evaluation order.
	ACL []ACE

	// BSD file flags.
	Restricted bool
	Immutable  bool
	Hidden     bool

	XAttrNames []string
	Quarantine *Quarantine
}

type Options struct {
	// Describe the symlink target instead of the link itself.
	Follow bool

	// Path of the ls binary, for the ACL listing.
	LsPath string
}

// Describe gathers the full descriptor view for one path.
func Describe(ctx context.Context, path string, opts Options) (
	*Descriptor, error) {

	stat_fn := os.Lstat
	if opts.Follow {
		stat_fn = os.Stat
	}

	fi, err := stat_fn(path)
	if err != nil {
		return nil, err
	}

	result := &Descriptor{
		Path:        path,
		Mode:        fi.Mode(),
		ModeEntries: ModeEntries(fi.Mode()),
	}

	uid, gid, ok := ownerOf(fi)
	if ok {
		result.Uid = uid
		result.Gid = gid
		result.Owner = token.LookupUID(uid)
		result.Group = token.LookupGID(gid)
	}

	flags := fileFlags(fi)
	result.Restricted = flags&sfRestricted != 0
	result.Immutable = flags&(sfImmutable|ufImmutable) != 0
	result.Hidden = flags&ufHidden != 0

	// Best effort - xattrs and ACLs may be unsupported on the
	// filesystem or platform.
	names, err := ListXAttr(path)
	if err == nil {
		result.XAttrNames = names

		for _, name := range names {
			if name == QuarantineAttr {
				data, err := GetXAttr(path, QuarantineAttr)
				if err == nil {
					q, err := ParseQuarantine(string(data))
					if err == nil {
						result.Quarantine = q
					}
				}
			}
		}
	}

	acl, err := ReadACL(ctx, path, opts.LsPath)
	if err == nil {
		result.ACL = acl
	}

	return result, nil
}

func (self *Descriptor) ToDict() *ordereddict.Dict {
	quarantine := ""
	if self.Quarantine != nil {
		quarantine = self.Quarantine.String()
	}

	return ordereddict.NewDict().
		Set("Path", self.Path).
		Set("Owner", self.Owner).
		Set("Group", self.Group).
		Set("Mode", self.Mode.String()).
		Set("DACL", self.ModeEntries).
		Set("ACL", self.ACL).
		Set("Restricted", self.Restricted).
		Set("Immutable", self.Immutable).
		Set("XAttrs", self.XAttrNames).
		Set("Quarantine", quarantine)
}
