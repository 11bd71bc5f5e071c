package decomptable

import "github.com/kevin-chtw/riichi-decomp/histogram"

// RawKind is the low-level waiting-shape classification produced by the
// table generator, before it's collapsed into the public 5-kind
// vocabulary (decomposer.WaitKind) at the decomposer boundary. Ryanmen is
// kept split into its three generation-time variants here because the
// join needs to know which side(s) of the two-tile pattern are open.
type RawKind uint8

const (
	Tanki RawKind = iota
	Shanpon
	Kanchan
	RyanmenHigh // e.g. 12m waits only 3m (the 0-side doesn't exist)
	RyanmenLow  // e.g. 89m waits only 7m (the 10-side doesn't exist)
	RyanmenBoth // e.g. 34m waits 2m or 5m
)

// NeedsRun reports whether this waiting shape requires sequential
// adjacency — true for anything but Tanki/Shanpon. Such a shape can
// never occur in the honor suit.
func (k RawKind) NeedsRun() bool {
	switch k {
	case Kanchan, RyanmenHigh, RyanmenLow, RyanmenBoth:
		return true
	}
	return false
}

// WaitingPattern is one way a single-suit histogram can be one tile shy
// of a complete grouping: anchored at PatternPos (0..=8), the rest of
// the suit's tiles (if any) are already fully grouped at CompleteKey —
// a background key that indexes into the C-Table for those groups.
type WaitingPattern struct {
	CompleteKey uint32
	Kind        RawKind
	PatternPos  uint8
}

// WTableNumKeysApprox mirrors the generator this table is modeled on; kept
// as documentation of the expected scale rather than an enforced
// constant, since this Go port's key set is produced from the same C-Table
// but stored without its bit-packed 4-alternative ceiling (see WTable).
const WTableNumKeysApprox = 66913

// WTable maps a packed single-suit histogram — the suit's actual,
// pre-win tile counts — to every way it can be read as some background
// complete grouping plus one partial waiting shape.
type WTable map[uint32][]WaitingPattern

// MakeWTable derives the W-Table from an already-built C-Table: for
// every complete-grouping key (the background), try appending one more
// partial shape (Tanki, Shanpon, Kanchan, or either/both ends of a
// two-adjacent-tile Ryanmen) and index the result — the suit's actual
// observable histogram — back to that background key.
func MakeWTable(c CTable) WTable {
	w := make(WTable, len(c))
	for key := range c {
		addWaitingForKey(w, key)
	}
	return w
}

func addWaitingForKey(w WTable, key uint32) {
	numTiles := histogram.SuitHist(key).Sum()
	midLen := numTiles / 3
	hasPair := numTiles%3 == 2

	push := func(newKey uint32, pos uint8, kind RawKind) {
		w[newKey] = append(w[newKey], WaitingPattern{CompleteKey: key, Kind: kind, PatternPos: pos})
	}

	if !hasPair {
		for i := uint8(0); i <= 8; i++ {
			if nk, ok := checkPattern(key, 0o1, i, 0); ok {
				push(nk, i, Tanki)
			}
		}
	}
	if midLen > 3 {
		return
	}
	for i := uint8(0); i <= 8; i++ {
		if nk, ok := checkPattern(key, 0o2, i, 0); ok {
			push(nk, i, Shanpon)
		}
	}
	for i := uint8(0); i <= 6; i++ {
		if nk, ok := checkPattern(key, 0o101, i, 1); ok {
			push(nk, i, Kanchan)
		}
	}
	for i := uint8(0); i <= 7; i++ {
		keyLow, okLow := checkPattern(key, 0o11, i, -1)
		keyHigh, okHigh := checkPattern(key, 0o11, i, 2)
		switch {
		case okLow && okHigh:
			push(keyLow, i, RyanmenBoth)
		case okLow:
			push(keyLow, i, RyanmenLow)
		case okHigh:
			push(keyHigh, i, RyanmenHigh)
		}
	}
}

// checkPattern adds the lane pattern pat at position patPos to key, and
// validates that the resulting key is still legal and that the lane at
// patPos+tenpaiOffset (the tile that would complete this shape) still
// has room for one more copy.
func checkPattern(key uint32, pat uint32, patPos uint8, tenpaiOffset int8) (uint32, bool) {
	newKey := key + (pat << (uint32(patPos) * 3))
	tenpai := int8(patPos) + tenpaiOffset
	if tenpai < 0 || tenpai > 8 {
		return 0, false
	}
	if histogram.SuitHist(newKey).IsOverflow() {
		return 0, false
	}
	if histogram.SuitHist(newKey).Get(uint8(tenpai)) >= 4 {
		return 0, false
	}
	return newKey, true
}
