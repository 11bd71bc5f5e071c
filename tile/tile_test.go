package tile_test

import (
	"testing"

	"github.com/kevin-chtw/riichi-decomp/tile"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want tile.Tile
	}{
		{"1m", 0},
		{"9m", 8},
		{"5p", 13},
		{"0p", 35},
		{"7z", 33},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := tile.Parse(c.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"0z", "8z", "1x", "m1"} {
		if _, err := tile.Parse(s); err == nil {
			t.Errorf("Parse(%q) expected error, got none", s)
		}
	}
}

func TestParseAll(t *testing.T) {
	tiles, err := tile.ParseAll("1112345678999m")
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(tiles) != 13 {
		t.Fatalf("ParseAll returned %d tiles, want 13", len(tiles))
	}
	if tiles[0].String() != "1m" || tiles[len(tiles)-1].String() != "9m" {
		t.Errorf("unexpected boundary tiles: %v .. %v", tiles[0], tiles[len(tiles)-1])
	}
}

func TestRedFiveRoundTrip(t *testing.T) {
	red, err := tile.Parse("0s")
	if err != nil {
		t.Fatal(err)
	}
	if !red.IsRed() {
		t.Errorf("0s should be red")
	}
	norm := red.ToNormal()
	if norm.NormalNum() != 5 || norm.Suit() != tile.Sou {
		t.Errorf("ToNormal(0s) = %v, want 5s", norm)
	}
	if norm.ToRed() != red {
		t.Errorf("ToRed(ToNormal(0s)) = %v, want %v", norm.ToRed(), red)
	}
}

func TestOrdering(t *testing.T) {
	four, _ := tile.Parse("4m")
	red, _ := tile.Parse("0m")
	five, _ := tile.Parse("5m")
	six, _ := tile.Parse("6m")
	if !four.Less(red) {
		t.Errorf("4m should sort before 0m")
	}
	if !red.Less(five) {
		t.Errorf("0m should sort before 5m")
	}
	if !five.Less(six) {
		t.Errorf("5m should sort before 6m")
	}
}

func TestSuccPred(t *testing.T) {
	one, _ := tile.Parse("1m")
	if _, ok := one.Pred(); ok {
		t.Errorf("1m should have no predecessor")
	}
	nine, _ := tile.Parse("9m")
	if _, ok := nine.Succ(); ok {
		t.Errorf("9m should have no successor")
	}
	two, ok := one.Succ()
	if !ok || two.String() != "2m" {
		t.Errorf("Succ(1m) = %v, %v; want 2m, true", two, ok)
	}
}
