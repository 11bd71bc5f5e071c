package decomposer_test

import (
	"testing"

	"github.com/kevin-chtw/riichi-decomp/decomposer"
	"github.com/kevin-chtw/riichi-decomp/histogram"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

func mustHand(t *testing.T, shorthand string) histogram.Hand {
	t.Helper()
	tiles, err := tile.ParseAll(shorthand)
	if err != nil {
		t.Fatalf("ParseAll(%q): %v", shorthand, err)
	}
	h, err := histogram.FromTiles(tiles)
	if err != nil {
		t.Fatalf("FromTiles(%q): %v", shorthand, err)
	}
	return h
}

func waitingTiles(t *testing.T, ws decomposer.WaitSet) []string {
	t.Helper()
	out := make([]string, len(ws.Regular))
	for i, w := range ws.Regular {
		out[i] = w.WaitingTile.String()
	}
	return out
}

func TestDecomposeTanki(t *testing.T) {
	h := mustHand(t, "111222333444m5p")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	// 111 222 333 444, 123 123 123 444 and 111 234 234 234 all leave 5p alone.
	if len(ws.Regular) != 3 {
		t.Fatalf("got %d regular waits, want 3: %+v", len(ws.Regular), ws.Regular)
	}
	w := ws.Regular[0]
	if w.Kind != decomposer.Pair {
		t.Errorf("Kind = %v, want Pair", w.Kind)
	}
	if w.WaitingTile.String() != "5p" {
		t.Errorf("WaitingTile = %v, want 5p", w.WaitingTile)
	}
	if w.Pair != nil {
		t.Errorf("Pair = %v, want nil (the tanki tile isn't a complete pair yet)", w.Pair)
	}
}

func TestDecomposeKanchan(t *testing.T) {
	h := mustHand(t, "123456789m11p13s")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range ws.Regular {
		if w.Kind == decomposer.Clamped && w.WaitingTile.String() == "2s" {
			found = true
			if w.Pair == nil || w.Pair.String() != "1p" {
				t.Errorf("Pair = %v, want 1p", w.Pair)
			}
		}
	}
	if !found {
		t.Errorf("no Clamped (kanchan) wait on 2s found in %+v", ws.Regular)
	}
}

func TestDecomposeRyanmenBoth(t *testing.T) {
	h := mustHand(t, "123456789m11p34s")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, w := range ws.Regular {
		if w.Kind == decomposer.DoubleClosed {
			got[w.WaitingTile.String()] = true
		}
	}
	if !got["2s"] || !got["5s"] {
		t.Errorf("expected DoubleClosed waits on both 2s and 5s, got %+v", ws.Regular)
	}
}

func TestDecomposeShanpon(t *testing.T) {
	h := mustHand(t, "123456789m55p77s")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{} // waiting tile -> pair tile
	for _, w := range ws.Regular {
		if w.Kind == decomposer.Closed {
			if w.Pair == nil {
				t.Fatalf("Shanpon wait missing Pair: %+v", w)
			}
			got[w.WaitingTile.String()] = w.Pair.String()
		}
	}
	if got["5p"] != "7s" || got["7s"] != "5p" {
		t.Errorf("expected reciprocal Shanpon waits on 5p/7s, got %+v", got)
	}
}

func TestDecomposeSevenPairs(t *testing.T) {
	h := mustHand(t, "1122334455667z")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range ws.Irregular {
		if w.Kind == decomposer.SevenPairs {
			found = true
			if len(w.WaitingTiles) != 1 || w.WaitingTiles[0].String() != "7z" {
				t.Errorf("SevenPairs wait = %+v, want a single wait on 7z", w.WaitingTiles)
			}
		}
	}
	if !found {
		t.Errorf("expected a SevenPairs wait, got %+v", ws.Irregular)
	}
}

func TestDecomposeThirteenOrphansThirteenWay(t *testing.T) {
	h := mustHand(t, "19m19p19s1234567z")
	ws, err := decomposer.Decompose(h)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range ws.Irregular {
		if w.Kind == decomposer.ThirteenOrphans {
			found = true
			if len(w.WaitingTiles) != 13 {
				t.Errorf("expected a 13-sided wait, got %d tiles", len(w.WaitingTiles))
			}
		}
	}
	if !found {
		t.Errorf("expected a ThirteenOrphans wait, got %+v", ws.Irregular)
	}
}

func TestStatsNonEmpty(t *testing.T) {
	cKeys, wKeys := decomposer.Default().Stats()
	if cKeys == 0 || wKeys == 0 {
		t.Errorf("Stats() = (%d, %d), want both nonzero once the tables are built", cKeys, wKeys)
	}
}

func TestDecomposeInvalidHandSize(t *testing.T) {
	h := mustHand(t, "123m")
	if _, err := decomposer.Decompose(h); err == nil {
		t.Errorf("expected an error for a hand that isn't 13 tiles")
	}
}
