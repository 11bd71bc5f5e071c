// Package tile implements the 37-kind tile model: 34 normal kinds plus the
// 3 red fives, packed into a single 6-bit encoding.
package tile

import "fmt"

// Suit identifies which of the four tile families a tile belongs to.
type Suit uint8

const (
	Man Suit = iota
	Pin
	Sou
	Honor
)

func (s Suit) Char() byte {
	switch s {
	case Man:
		return 'm'
	case Pin:
		return 'p'
	case Sou:
		return 's'
	default:
		return 'z'
	}
}

func suitFromChar(c byte) (Suit, bool) {
	switch c {
	case 'm':
		return Man, true
	case 'p':
		return Pin, true
	case 's':
		return Sou, true
	case 'z':
		return Honor, true
	default:
		return 0, false
	}
}

// Tile is a 6-bit encoding: 0..=33 are the 34 normal kinds (man, pin, sou,
// honor in that order), 34..=36 are the red fives (0m, 0p, 0s).
type Tile uint8

const (
	MinEncoding uint8 = 0
	MaxEncoding uint8 = 36
)

var (
	Min = Tile(MinEncoding)
	Max = Tile(MaxEncoding)
)

func FromEncoding(e uint8) (Tile, bool) {
	if e <= MaxEncoding {
		return Tile(e), true
	}
	return 0, false
}

// FromNumSuit builds a tile from its shorthand (num, suit). num == 0 means
// the red five of that suit; honors only accept num 1..=7.
func FromNumSuit(num uint8, suit Suit) (Tile, bool) {
	if num > 9 || suit > Honor {
		return 0, false
	}
	if suit == Honor && !(num >= 1 && num <= 7) {
		return 0, false
	}
	if num == 0 {
		if suit == Honor {
			return 0, false
		}
		return Tile(34 + uint8(suit)), true
	}
	return Tile(uint8(suit)*9 + num - 1), true
}

func (t Tile) Encoding() uint8   { return uint8(t) }
func (t Tile) IsValid() bool     { return uint8(t) <= MaxEncoding }
func (t Tile) IsNormal() bool    { return uint8(t) <= 33 }
func (t Tile) IsRed() bool       { return uint8(t) >= 34 && uint8(t) <= 36 }
func (t Tile) IsNumeral() bool   { return uint8(t) <= 26 || (uint8(t) >= 34 && uint8(t) <= 36) }
func (t Tile) IsWind() bool      { return uint8(t) >= 27 && uint8(t) <= 30 }
func (t Tile) IsDragon() bool    { return uint8(t) >= 31 && uint8(t) <= 33 }
func (t Tile) IsHonor() bool     { return uint8(t) >= 27 && uint8(t) <= 33 }

func (t Tile) IsPureTerminal() bool {
	return uint8(t) <= 26 && (uint8(t)%9 == 0 || uint8(t)%9 == 8)
}
func (t Tile) IsMiddle() bool   { return t.IsNumeral() && !t.IsPureTerminal() }
func (t Tile) IsTerminal() bool { return t.IsPureTerminal() || t.IsHonor() }

func (t Tile) NormalEncoding() uint8 {
	switch uint8(t) {
	case 34:
		return 4
	case 35:
		return 13
	case 36:
		return 22
	default:
		return uint8(t)
	}
}

func (t Tile) RedEncoding() uint8 {
	switch uint8(t) {
	case 4:
		return 34
	case 13:
		return 35
	case 22:
		return 36
	default:
		return uint8(t)
	}
}

func (t Tile) ToNormal() Tile { return Tile(t.NormalEncoding()) }
func (t Tile) ToRed() Tile    { return Tile(t.RedEncoding()) }

// orderingKey doubles the encoding space so a red five sorts between its
// normal neighbours 4 and 5.
func (t Tile) orderingKey() uint8 {
	if uint8(t) <= 33 {
		return uint8(t) * 2
	}
	return 7 + (uint8(t)-34)*18
}

func (t Tile) Num() uint8 {
	if uint8(t) <= 33 {
		return uint8(t)%9 + 1
	}
	return 0
}

func (t Tile) NormalNum() uint8 {
	if uint8(t) <= 33 {
		return uint8(t)%9 + 1
	}
	return 5
}

func (t Tile) Suit() Suit {
	if uint8(t) <= 33 {
		return Suit(uint8(t) / 9)
	}
	return Suit(uint8(t) - 34)
}

// Succ returns the next numeral in the same suit (normalized), for 1..=8.
func (t Tile) Succ() (Tile, bool) {
	if t.IsNumeral() && t.NormalNum() <= 8 {
		return Tile(t.NormalEncoding() + 1), true
	}
	return 0, false
}

// Succ2 returns the numeral two steps up (normalized), for 1..=7.
func (t Tile) Succ2() (Tile, bool) {
	if t.IsNumeral() && t.NormalNum() <= 7 {
		return Tile(t.NormalEncoding() + 2), true
	}
	return 0, false
}

// Pred returns the previous numeral in the same suit (normalized), for 2..=9.
func (t Tile) Pred() (Tile, bool) {
	if t.IsNumeral() && t.NormalNum() >= 2 {
		return Tile(t.NormalEncoding() - 1), true
	}
	return 0, false
}

// Pred2 returns the numeral two steps down (normalized), for 3..=9.
func (t Tile) Pred2() (Tile, bool) {
	if t.IsNumeral() && t.NormalNum() >= 3 {
		return Tile(t.NormalEncoding() - 2), true
	}
	return 0, false
}

// Less implements the total order 1m < ... < 4m < 0m < 5m < ... < 9m < 1p < ...
func (t Tile) Less(o Tile) bool { return t.orderingKey() < o.orderingKey() }

var shortNames = [37]string{
	"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m",
	"1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p",
	"1s", "2s", "3s", "4s", "5s", "6s", "7s", "8s", "9s",
	"1z", "2z", "3z", "4z", "5z", "6z", "7z",
	"0m", "0p", "0s",
}

func (t Tile) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("?(%d)", uint8(t))
	}
	return shortNames[t]
}

// Parse reads a single tile's shorthand, e.g. "7m" or "0p".
func Parse(s string) (Tile, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("tile: invalid shorthand %q", s)
	}
	num := s[0]
	if num < '0' || num > '9' {
		return 0, fmt.Errorf("tile: invalid numeral in %q", s)
	}
	suit, ok := suitFromChar(s[1])
	if !ok {
		return 0, fmt.Errorf("tile: invalid suit in %q", s)
	}
	t, ok := FromNumSuit(num-'0', suit)
	if !ok {
		return 0, fmt.Errorf("tile: invalid tile %q", s)
	}
	return t, nil
}

// ParseAll reads shorthand for a run of tiles sharing trailing suit
// letters, e.g. "1112345678999m" or "11123m8p8p777z". Unrecognized
// characters are silently skipped, matching the original parser.
func ParseAll(s string) ([]Tile, error) {
	var tiles []Tile
	var nums []uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			nums = append(nums, c-'0')
		default:
			if suit, ok := suitFromChar(c); ok {
				for _, n := range nums {
					t, ok := FromNumSuit(n, suit)
					if !ok {
						return nil, fmt.Errorf("tile: invalid tile %d%c", n, c)
					}
					tiles = append(tiles, t)
				}
				nums = nums[:0]
			}
		}
	}
	return tiles, nil
}
