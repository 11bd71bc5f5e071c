// Package decomptable builds the two lookup tables the decomposer joins
// across suits: the C-Table (complete single-suit groupings) and the
// W-Table (single-suit waiting shapes, derived from the C-Table). Both
// are immutable once built and safe to share across concurrent callers.
package decomptable

import (
	"github.com/kevin-chtw/riichi-decomp/handgroup"
	"github.com/kevin-chtw/riichi-decomp/histogram"
)

// CTableNumKeys is the number of distinct single-suit packed histograms
// that admit at least one complete grouping (pure 3N groups, or 3N+2
// groups-plus-pair). Exhaustively generated, so this also doubles as a
// generation sanity check.
const CTableNumKeys = 21743

// Alt is one structurally distinct way to completely group a single
// suit's tiles: up to 4 groups (encoded as ks codes, see
// handgroup.KoutsuKsCode/ShuntsuKsCode) plus an optional pair position
// (0..=8, or -1 if this grouping has no pair).
type Alt struct {
	Groups []uint8
	Pair   int8
}

// HasShuntsu reports whether any group in this alternative is a run —
// used to reject alternatives that would be illegal for the honor suit.
func (a Alt) HasShuntsu() bool {
	for _, ks := range a.Groups {
		if ks != 0xF && ks&1 == 1 {
			return true
		}
	}
	return false
}

func (a Alt) HasPair() bool { return a.Pair >= 0 }

// CTable maps a packed single-suit histogram to every complete grouping
// of it, bounded to at most 4 alternatives per key (the maximum number
// of structurally distinct groupings any legal single-suit histogram
// admits).
type CTable map[uint32][]Alt

const maxAltsPerKey = 4

func kKey(pos uint8) uint32 { return 3 << (uint32(pos) * 3) }
func sKey(pos uint8) uint32 { return 0o111 << (uint32(pos) * 3) }

// MakeCTable exhaustively generates the C-Table by recursive structural
// peel: every combination of triplets then runs (triplets always placed
// before runs, triplets at strictly increasing positions and runs at
// non-decreasing ones, so each distinct grouping is produced exactly
// once), seeded once with no pair and once per possible pair tile.
func MakeCTable() CTable {
	table := make(CTable, CTableNumKeys)
	insertAlt(table, 0, Alt{Pair: -1})
	dfsKou(table, 1, 0, 0, nil, -1)
	dfsShun(table, 1, 0, 0, nil, -1)
	for j := uint8(0); j <= 8; j++ {
		jKey := uint32(2) << (uint32(j) * 3)
		insertAlt(table, jKey, Alt{Pair: int8(j)})
		dfsKou(table, 1, 0, jKey, nil, int8(j))
		dfsShun(table, 1, 0, jKey, nil, int8(j))
	}
	return table
}

func insertAlt(table CTable, key uint32, alt Alt) {
	alts := table[key]
	if len(alts) >= maxAltsPerKey {
		return
	}
	table[key] = append(alts, alt)
}

func dfsKou(table CTable, n int, i0 uint8, key uint32, groups []uint8, pair int8) {
	for i := i0; i <= 8; i++ {
		newKey := key + kKey(i)
		if histogram.SuitHist(newKey).IsOverflow() {
			continue
		}
		newGroups := appendGroup(groups, handgroup.KoutsuKsCode(i))
		insertAlt(table, newKey, Alt{Groups: newGroups, Pair: pair})
		if n < 4 {
			dfsKou(table, n+1, i+1, newKey, newGroups, pair)
			dfsShun(table, n+1, 0, newKey, newGroups, pair)
		}
	}
}

func dfsShun(table CTable, n int, i0 uint8, key uint32, groups []uint8, pair int8) {
	for i := i0; i <= 6; i++ {
		newKey := key + sKey(i)
		if histogram.SuitHist(newKey).IsOverflow() {
			continue
		}
		newGroups := appendGroup(groups, handgroup.ShuntsuKsCode(i))
		insertAlt(table, newKey, Alt{Groups: newGroups, Pair: pair})
		if n < 4 {
			dfsShun(table, n+1, i, newKey, newGroups, pair)
		}
	}
}

func appendGroup(groups []uint8, code uint8) []uint8 {
	out := make([]uint8, len(groups)+1)
	copy(out, groups)
	out[len(groups)] = code
	return out
}
