package ehfifty

// Revision selects one of the two incompatible protocol revisions. The
// revision is fixed at session-open time, not negotiated.
type Revision int

// Protocol revisions.
const (
	// RevisionCurrent is the length-prefixed framing spoken by current
	// firmware, with the full opcode set.
	RevisionCurrent Revision = iota

	// RevisionLegacy is the raw-payload framing spoken by early firmware.
	// Saved preset names cannot be read, and the EQ gain, EQ
	// frequency/bandwidth, preset name set, and mic EQ operations do
	// not exist.
	RevisionLegacy
)

// String returns the revision name.
func (r Revision) String() string {
	switch r {
	case RevisionCurrent:
		return "current"
	case RevisionLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}
