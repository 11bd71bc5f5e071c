// Package histogram implements the packed tile-count representations used
// throughout the decomposer: a 27-bit single-suit histogram (nine 3-bit
// lanes, LSB-first) and the full 37-tile closed hand built from four of
// those plus a small red-five overlay.
package histogram

import (
	"fmt"

	"github.com/kevin-chtw/riichi-decomp/tile"
)

// SuitHist packs the counts of a single suit's 9 kinds into 27 bits, one
// 3-bit lane per kind, lane 0 holding the lowest numeral (or honor index).
// This is the same packed representation as a decomptable lookup key.
type SuitHist uint32

const laneMask SuitHist = 0o7

// Get returns the count at lane pos (0..=8).
func (s SuitHist) Get(pos uint8) uint8 {
	return uint8((s >> (uint32(pos) * 3)) & laneMask)
}

// With returns a copy of s with lane pos set to count (0..=4).
func (s SuitHist) With(pos uint8, count uint8) SuitHist {
	shift := uint32(pos) * 3
	cleared := s &^ (laneMask << shift)
	return cleared | (SuitHist(count) << shift)
}

// IsOverflow reports whether any lane holds more than 4 — the branchless
// carry trick from the original table generator's key_is_overflow.
func (s SuitHist) IsOverflow() bool {
	const lowBits = 0o333333333
	const highBits = 0o444444444
	return ((uint32(s)&lowBits)+lowBits)&uint32(s)&highBits != 0
}

// Sum adds up all nine lanes — the parallel bit-field addition from the
// original table generator's key_sum.
func (s SuitHist) Sum() uint32 {
	k := uint32(s)
	k = (k & 0o707070707) + ((k & 0o070707070) >> 3)
	k = (k & 0o700770077) + ((k & 0o077007700) >> 6)
	k = (k & 0o700007777) + ((k & 0o077770000) >> 12)
	return (k & 0o077777777) + (k >> 24)
}

// RedFives tracks which of the three red fives (man, pin, sou) are present,
// orthogonal to the packed counts (which treat a red five as a normal 5).
type RedFives uint8

const (
	RedMan RedFives = 1 << iota
	RedPin
	RedSou
)

func (r RedFives) Has(f RedFives) bool { return r&f != 0 }

// Hand is a full closed-hand histogram: one packed SuitHist per suit plus
// the red-five overlay.
type Hand struct {
	Suits [4]SuitHist
	Red   RedFives
}

// FromTiles builds a Hand from a flat tile list (e.g. parsed shorthand).
func FromTiles(tiles []tile.Tile) (Hand, error) {
	var h Hand
	for _, t := range tiles {
		if !t.IsValid() {
			return Hand{}, fmt.Errorf("histogram: invalid tile %v", t)
		}
		suit := t.Suit()
		pos := t.NormalNum() - 1
		if t.IsHonor() {
			pos = t.Num() - 1
		}
		count := h.Suits[suit].Get(pos)
		if count >= 4 {
			return Hand{}, fmt.Errorf("histogram: more than 4 copies of %v", t.ToNormal())
		}
		h.Suits[suit] = h.Suits[suit].With(pos, count+1)
		if t.IsRed() {
			switch t.Suit() {
			case tile.Man:
				h.Red |= RedMan
			case tile.Pin:
				h.Red |= RedPin
			case tile.Sou:
				h.Red |= RedSou
			}
		}
	}
	return h, nil
}

// Packed returns the four packed single-suit histograms, in suit order
// man/pin/sou/honor — the same layout a decomptable key uses.
func (h Hand) Packed() [4]uint32 {
	return [4]uint32{uint32(h.Suits[0]), uint32(h.Suits[1]), uint32(h.Suits[2]), uint32(h.Suits[3])}
}

// Count returns how many of the given (normalized) tile are in the hand.
func (h Hand) Count(t tile.Tile) uint8 {
	t = t.ToNormal()
	pos := t.NormalNum() - 1
	if t.IsHonor() {
		pos = t.Num() - 1
	}
	return h.Suits[t.Suit()].Get(pos)
}

// TotalTiles returns the total tile count across all four suits.
func (h Hand) TotalTiles() uint32 {
	var n uint32
	for _, s := range h.Suits {
		n += s.Sum()
	}
	return n
}

// Mask34 is a 1-bit-per-kind non-multiset view of a Hand, used to report
// waiting tiles.
type Mask34 uint64

func (m Mask34) Has(t tile.Tile) bool {
	return (uint64(m) >> uint64(t.NormalEncoding())) & 1 == 1
}

func (m Mask34) With(t tile.Tile) Mask34 {
	return m | Mask34(1<<uint64(t.NormalEncoding()))
}

// Tiles returns the set bits of m as a sorted tile list.
func (m Mask34) Tiles() []tile.Tile {
	var out []tile.Tile
	for e := uint8(0); e <= 33; e++ {
		if uint64(m)>>uint64(e)&1 == 1 {
			t, _ := tile.FromEncoding(e)
			out = append(out, t)
		}
	}
	return out
}
