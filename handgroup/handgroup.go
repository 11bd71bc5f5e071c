// Package handgroup implements HandGroup, a completed 3-tile group within
// a closed hand: Shuntsu (run) or Koutsu (triplet).
package handgroup

import (
	"fmt"

	"github.com/kevin-chtw/riichi-decomp/tile"
)

// Kind distinguishes the two group shapes.
type Kind uint8

const (
	Koutsu Kind = iota // 3 of a kind
	Shuntsu            // 3 consecutive numerals
)

// Group is a completed hand group: a Kind plus its defining tile (the
// repeated tile for Koutsu, the lowest tile for Shuntsu).
type Group struct {
	Kind Kind
	Tile tile.Tile
}

func (g Group) String() string {
	n := g.Tile.NormalNum()
	s := g.Tile.Suit().Char()
	switch g.Kind {
	case Koutsu:
		return fmt.Sprintf("%d%d%d%c", n, n, n, s)
	default:
		return fmt.Sprintf("%d%d%d%c", n, n+1, n+2, s)
	}
}

// KoutsuKsCode converts a koutsu position (0..=8, within one suit) to the
// 4-bit group-shape nibble used by the lookup-table generator. Koutsu(8)
// (999) would be 16, which does not fit in a nibble, so it's special-cased
// to 0xF, the code the invalid run 8-9-10 would otherwise have.
func KoutsuKsCode(pos uint8) uint8 {
	if pos == 8 {
		return 0xF
	}
	return pos * 2
}

// ShuntsuKsCode converts a shuntsu position (0..=6) to its 4-bit nibble.
func ShuntsuKsCode(pos uint8) uint8 { return pos*2 + 1 }

// KsCodeToGroup decodes a single-suit 4-bit group-shape nibble (as
// produced by KoutsuKsCode/ShuntsuKsCode) back into a position and kind,
// without suit/tile context — used by the decomposer to turn table
// entries back into groups.
func KsCodeToGroup(ks uint8) (pos uint8, kind Kind) {
	if ks == 0xF {
		return 8, Koutsu
	}
	if ks&1 == 1 {
		return (ks - 1) / 2, Shuntsu
	}
	return ks / 2, Koutsu
}
