package glk

// GestaltSelector picks a capability for Gestalt to report on.
type GestaltSelector uint32

const (
	GestaltVersion GestaltSelector = iota
	GestaltLineInput
	GestaltCharInput
	GestaltCharOutput
	GestaltUnicode
	GestaltUnicodeNorm
	GestaltTimer
	GestaltMouseInput
	GestaltGraphics
	GestaltSound
	GestaltHyperlinks
)

// GestaltCharOutput answers.
const (
	CharOutputCannotPrint uint32 = 0
	CharOutputApproxPrint uint32 = 1
	CharOutputExactPrint  uint32 = 2
)

// gestaltVersion encodes 0.7.5 as major<<16 | minor<<8 | patch.
const gestaltVersion uint32 = 0x00000705

// printableLatin1 reports whether ch prints as itself in Latin-1
// output: the two printable ranges, control characters excluded.
func printableLatin1(ch uint32) bool {
	return (ch >= 32 && ch < 127) || (ch >= 160 && ch < 256)
}

// Gestalt answers a capability query. val is the character under
// question for the per-character selectors and ignored otherwise.
//
// The library reports only what it provides itself: character and line
// input, timers, Unicode streams, and normalization. Rendering-bound
// capabilities (mouse, graphics, sound, hyperlinks) depend on a display
// front end and report 0 here.
func (g *Glk) Gestalt(sel GestaltSelector, val uint32) uint32 {
	switch sel {
	case GestaltVersion:
		return gestaltVersion
	case GestaltLineInput, GestaltCharInput:
		if printableLatin1(val) {
			return 1
		}
		return 0
	case GestaltCharOutput:
		if printableLatin1(val) {
			return CharOutputExactPrint
		}
		return CharOutputCannotPrint
	case GestaltUnicode, GestaltUnicodeNorm, GestaltTimer:
		return 1
	default:
		return 0
	}
}
