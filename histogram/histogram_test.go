package histogram_test

import (
	"testing"

	"github.com/kevin-chtw/riichi-decomp/histogram"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

func TestSuitHistGetWith(t *testing.T) {
	var s histogram.SuitHist
	s = s.With(0, 3).With(8, 1)
	if s.Get(0) != 3 || s.Get(8) != 1 || s.Get(4) != 0 {
		t.Errorf("unexpected lanes: 0=%d 4=%d 8=%d", s.Get(0), s.Get(4), s.Get(8))
	}
}

func TestSuitHistOverflow(t *testing.T) {
	legal := histogram.SuitHist(0).With(0, 4)
	if legal.IsOverflow() {
		t.Errorf("4 copies should not overflow")
	}
	illegal := histogram.SuitHist(0o5) // lane 0 = 5
	if !illegal.IsOverflow() {
		t.Errorf("5 copies in one lane should overflow")
	}
}

func TestSuitHistSum(t *testing.T) {
	s := histogram.SuitHist(0).With(0, 3).With(4, 2).With(8, 1)
	if got := s.Sum(); got != 6 {
		t.Errorf("Sum() = %d, want 6", got)
	}
}

func TestFromTiles(t *testing.T) {
	tiles, err := tile.ParseAll("1112345678999m")
	if err != nil {
		t.Fatal(err)
	}
	h, err := histogram.FromTiles(tiles)
	if err != nil {
		t.Fatal(err)
	}
	if h.TotalTiles() != 13 {
		t.Errorf("TotalTiles() = %d, want 13", h.TotalTiles())
	}
	one, _ := tile.Parse("1m")
	if h.Count(one) != 3 {
		t.Errorf("Count(1m) = %d, want 3", h.Count(one))
	}
}

func TestFromTilesRejectsFifthCopy(t *testing.T) {
	tiles, _ := tile.ParseAll("11111m")
	if _, err := histogram.FromTiles(tiles); err == nil {
		t.Errorf("expected error for a 5th copy of the same tile")
	}
}

func TestMask34(t *testing.T) {
	var m histogram.Mask34
	one, _ := tile.Parse("1m")
	nine, _ := tile.Parse("9s")
	m = m.With(one).With(nine)
	if !m.Has(one) || !m.Has(nine) {
		t.Errorf("mask should contain both set tiles")
	}
	two, _ := tile.Parse("2m")
	if m.Has(two) {
		t.Errorf("mask should not contain an unset tile")
	}
	if got := m.Tiles(); len(got) != 2 {
		t.Errorf("Tiles() returned %d tiles, want 2", len(got))
	}
}
