package descriptor

// BSD file flags (sys/stat.h). SF_RESTRICTED marks SIP protected
// files - only processes with the right entitlement can modify them
// regardless of uid.
const (
	ufImmutable  = 0x00000002 // UF_IMMUTABLE
	ufHidden     = 0x00008000 // UF_HIDDEN
	sfImmutable  = 0x00020000 // SF_IMMUTABLE
	sfRestricted = 0x00080000 // SF_RESTRICTED
)

// QuarantineAttr carries download provenance, the closest thing
// macOS has to the NTFS Zone.Identifier stream.
const QuarantineAttr = "com.apple.quarantine"
