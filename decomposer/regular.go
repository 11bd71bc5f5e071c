package decomposer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kevin-chtw/riichi-decomp/decomptable"
	"github.com/kevin-chtw/riichi-decomp/handgroup"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

// WaitKind is the public, spec-facing classification of a regular wait's
// incomplete shape.
type WaitKind uint8

const (
	// Pair (単騎): a lone tile waiting to complete its own pair.
	Pair WaitKind = iota
	// Closed (双碰): waiting between two already-complete pairs for either to become a triplet.
	Closed
	// Edge (辺張): a two-adjacent-tile wait anchored at the suit's edge, e.g.
	// 12m waits only 3m, or 89m waits only 7m.
	Edge
	// DoubleClosed (両面): two adjacent tiles open on both ends, e.g. 34m waits 2m or 5m.
	DoubleClosed
	// Clamped (嵌張): a tile closed in between two existing tiles, e.g. 13m waits 2m.
	Clamped
)

func (k WaitKind) String() string {
	switch k {
	case Pair:
		return "Pair"
	case Closed:
		return "Closed"
	case Edge:
		return "Edge"
	case DoubleClosed:
		return "DoubleClosed"
	case Clamped:
		return "Clamped"
	default:
		return "Unknown"
	}
}

func publicKind(k decomptable.RawKind) WaitKind {
	switch k {
	case decomptable.Tanki:
		return Pair
	case decomptable.Shanpon:
		return Closed
	case decomptable.Kanchan:
		return Clamped
	case decomptable.RyanmenHigh, decomptable.RyanmenLow:
		return Edge
	default: // RyanmenBoth
		return DoubleClosed
	}
}

// RegularWait is one decomposition of a regular (non-chiitoi, non-kokushi)
// waiting hand: a set of complete groups, an optional complete pair, and
// the incomplete shape that's waiting on WaitingTile.
type RegularWait struct {
	Groups      []handgroup.Group
	Pair        *tile.Tile
	Kind        WaitKind
	PatternTile tile.Tile
	WaitingTile tile.Tile
}

// HasPairOrTanki reports whether this decomposition accounts for the
// hand's pair, whether complete (Pair != nil) or as the Tanki wait itself.
func (w RegularWait) HasPairOrTanki() bool {
	return w.Pair != nil || w.Kind == Pair
}

// PairOrTanki returns the pair tile, whether complete or the Tanki wait.
func (w RegularWait) PairOrTanki() (tile.Tile, bool) {
	if w.Pair != nil {
		return *w.Pair, true
	}
	if w.Kind == Pair {
		return w.WaitingTile, true
	}
	return 0, false
}

// IsTrueRyanmen reports whether this is a genuine two-sided wait for
// scoring purposes (Pinfu-relevant): excludes the 89-edge and 12-edge
// cases that Edge also covers internally.
func (w RegularWait) IsTrueRyanmen() bool {
	n := w.PatternTile.NormalNum()
	switch w.Kind {
	case Edge:
		return n >= 2 && n <= 7
	case DoubleClosed:
		return true
	default:
		return false
	}
}

func (w RegularWait) sortedGroups() []handgroup.Group {
	out := append([]handgroup.Group{}, w.Groups...)
	sort.Slice(out, func(i, j int) bool {
		return groupOrderKey(out[i]) < groupOrderKey(out[j])
	})
	return out
}

func groupOrderKey(g handgroup.Group) uint16 {
	return uint16(g.Tile)*2 + uint16(g.Kind)
}

// Less implements the deterministic ordering: ascending by waiting tile,
// then pair tile, then lexicographic group order.
func (w RegularWait) Less(o RegularWait) bool {
	if w.WaitingTile != o.WaitingTile {
		return w.WaitingTile.Less(o.WaitingTile)
	}
	wp, wHasPair := w.PairOrTanki()
	op, oHasPair := o.PairOrTanki()
	if wHasPair != oHasPair {
		return !wHasPair
	}
	if wHasPair && wp != op {
		return wp.Less(op)
	}
	wg, og := w.sortedGroups(), o.sortedGroups()
	for i := 0; i < len(wg) && i < len(og); i++ {
		if wg[i] != og[i] {
			return groupOrderKey(wg[i]) < groupOrderKey(og[i])
		}
	}
	return len(wg) < len(og)
}

func (w RegularWait) String() string {
	var b strings.Builder
	parts := make([]string, 0, len(w.Groups))
	for _, g := range w.sortedGroups() {
		parts = append(parts, g.String())
	}
	b.WriteString(strings.Join(parts, " "))
	if w.Pair != nil {
		fmt.Fprintf(&b, " %d%d%c", w.Pair.NormalNum(), w.Pair.NormalNum(), w.Pair.Suit().Char())
	}
	p, t := w.PatternTile, w.WaitingTile
	switch w.Kind {
	case Pair:
		fmt.Fprintf(&b, " %d+%s", p.NormalNum(), t)
	case Closed:
		fmt.Fprintf(&b, " %d%d+%s", p.NormalNum(), p.NormalNum(), t)
	case Clamped:
		succ2, _ := p.Succ2()
		fmt.Fprintf(&b, " %d%d+%s", p.NormalNum(), succ2.NormalNum(), t)
	default: // Edge, DoubleClosed
		succ, _ := p.Succ()
		fmt.Fprintf(&b, " %d%d+%s", p.NormalNum(), succ.NormalNum(), t)
	}
	return b.String()
}
