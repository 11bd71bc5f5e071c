package decomposer

import (
	"github.com/kevin-chtw/riichi-decomp/histogram"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

// IrregularKind distinguishes the two special hand shapes that aren't
// built from groups and a pair.
type IrregularKind uint8

const (
	SevenPairs IrregularKind = iota
	ThirteenOrphans
)

func (k IrregularKind) String() string {
	if k == SevenPairs {
		return "SevenPairs"
	}
	return "ThirteenOrphans"
}

// IrregularWait is a waiting decomposition outside the usual 4-groups-
// plus-pair shape.
type IrregularWait struct {
	Kind IrregularKind
	// WaitingTiles lists every tile that completes the hand: always one
	// tile for Seven Pairs and the ordinary Thirteen Orphans wait, all
	// 13 kinds for the 13-sided Thirteen Orphans wait.
	WaitingTiles []tile.Tile
}

var kokushiTiles = func() []tile.Tile {
	var out []tile.Tile
	for e := uint8(0); e <= 33; e++ {
		t, _ := tile.FromEncoding(e)
		if t.IsPureTerminal() || t.IsHonor() {
			out = append(out, t)
		}
	}
	return out
}()

// decomposeSevenPairs matches a hand of exactly six distinct pairs and
// one lone tile waiting to become the seventh.
func decomposeSevenPairs(h histogram.Hand) (IrregularWait, bool) {
	var pairs, singles int
	var lone tile.Tile
	for e := uint8(0); e <= 33; e++ {
		t, _ := tile.FromEncoding(e)
		switch h.Count(t) {
		case 0:
		case 1:
			singles++
			lone = t
		case 2:
			pairs++
		default:
			return IrregularWait{}, false
		}
	}
	if pairs == 6 && singles == 1 {
		return IrregularWait{Kind: SevenPairs, WaitingTiles: []tile.Tile{lone}}, true
	}
	return IrregularWait{}, false
}

// decomposeThirteenOrphans matches the two Thirteen Orphans tenpai
// shapes: 12 of the 13 terminal/honor kinds plus a pair among them
// (single wait on the missing kind), or all 13 kinds once each
// (13-sided wait on any of them).
func decomposeThirteenOrphans(h histogram.Hand) (IrregularWait, bool) {
	var ones, twos int
	var missing tile.Tile
	haveMissing := false
	for _, t := range kokushiTiles {
		switch h.Count(t) {
		case 0:
			missing = t
			haveMissing = true
		case 1:
			ones++
		case 2:
			twos++
		default:
			return IrregularWait{}, false
		}
	}
	for e := uint8(0); e <= 33; e++ {
		t, _ := tile.FromEncoding(e)
		if !(t.IsPureTerminal() || t.IsHonor()) && h.Count(t) > 0 {
			return IrregularWait{}, false
		}
	}
	switch {
	case ones == 13 && twos == 0:
		all := append([]tile.Tile{}, kokushiTiles...)
		return IrregularWait{Kind: ThirteenOrphans, WaitingTiles: all}, true
	case ones == 11 && twos == 1 && haveMissing:
		return IrregularWait{Kind: ThirteenOrphans, WaitingTiles: []tile.Tile{missing}}, true
	}
	return IrregularWait{}, false
}

// DecomposeIrregular checks both irregular shapes independently; a hand
// can never legally match both, but nothing here assumes that.
func (d *Decomposer) DecomposeIrregular(h histogram.Hand) []IrregularWait {
	var out []IrregularWait
	if w, ok := decomposeSevenPairs(h); ok {
		out = append(out, w)
	}
	if w, ok := decomposeThirteenOrphans(h); ok {
		out = append(out, w)
	}
	return out
}
