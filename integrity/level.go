// Integrity level mapping.
//
// Windows stamps every token with an integrity level SID and the
// kernel enforces no-write-up between them. macOS has no single
// equivalent - the same separation comes from uid 0, the admin
// group, and the App Sandbox - but the four common levels map well
// enough to be a useful summary, and we keep the Windows RID values
// as the numeric column for familiarity.

package integrity

import (
	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/token"
)

type Level struct {
	Name string
	Rid  uint32
}

var (
	LevelSystem = Level{"System", 0x4000}
	LevelHigh   = Level{"High", 0x3000}
	LevelMedium = Level{"Medium", 0x2000}
	LevelLow    = Level{"Low", 0x1000}
)

// LevelFor classifies a token. Root outranks everything; a
// sandboxed process is Low even for an admin user, which mirrors
// how AppContainer processes behave on Windows.
func LevelFor(tok *token.Token, sandboxed bool) Level {
	if tok.Elevated() {
		return LevelSystem
	}
	if sandboxed {
		return LevelLow
	}
	if tok.Admin() {
		return LevelHigh
	}
	return LevelMedium
}

func Describe(tok *token.Token, sandboxed bool) *ordereddict.Dict {
	level := LevelFor(tok, sandboxed)

	return ordereddict.NewDict().
		Set("Pid", tok.Pid).
		Set("Username", token.LookupUID(tok.Euid)).
		Set("Level", level.Name).
		Set("Rid", level.Rid).
		Set("Elevated", tok.Elevated()).
		Set("Admin", tok.Admin()).
		Set("Sandboxed", sandboxed)
}
