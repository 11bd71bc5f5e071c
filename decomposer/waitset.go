package decomposer

import (
	"sort"

	"github.com/kevin-chtw/riichi-decomp/histogram"
)

// WaitSet aggregates every waiting decomposition found for a hand: the
// regular (groups-plus-pair) decompositions, any irregular wait, and the
// flattened set of tiles that complete the hand by any path.
type WaitSet struct {
	Regular   []RegularWait
	Irregular []IrregularWait
	WaitingOn histogram.Mask34
}

// IsEmpty reports whether the hand isn't actually waiting on anything.
func (ws WaitSet) IsEmpty() bool {
	return len(ws.Regular) == 0 && len(ws.Irregular) == 0
}

func newWaitSet(regular []RegularWait, irregular []IrregularWait) WaitSet {
	sort.Slice(regular, func(i, j int) bool { return regular[i].Less(regular[j]) })
	var mask histogram.Mask34
	for _, r := range regular {
		mask = mask.With(r.WaitingTile)
	}
	for _, ir := range irregular {
		for _, t := range ir.WaitingTiles {
			mask = mask.With(t)
		}
	}
	return WaitSet{Regular: regular, Irregular: irregular, WaitingOn: mask}
}

// Decompose finds every way the given 13-tile hand can be read as
// waiting for a 14th, combining the regular and irregular searches.
func (d *Decomposer) Decompose(h histogram.Hand) WaitSet {
	regular := d.DecomposeRegular(h.Packed())
	irregular := d.DecomposeIrregular(h)
	return newWaitSet(regular, irregular)
}
