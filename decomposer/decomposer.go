// Package decomposer joins the per-suit C-Table/W-Table lookups into full
// 13-tile waiting-hand decompositions: three (or four) suits fully
// grouped, one suit carrying the incomplete shape that the winning tile
// would complete.
package decomposer

import (
	"sync"

	"github.com/kevin-chtw/riichi-decomp/decomptable"
	"github.com/kevin-chtw/riichi-decomp/handgroup"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

// Decomposer holds the generated lookup tables. Building them walks tens
// of thousands of keys, so a Decomposer is meant to be built once and
// reused across every Decompose call; it holds no other mutable state
// and is safe for concurrent use.
type Decomposer struct {
	c decomptable.CTable
	w decomptable.WTable
}

// New builds a Decomposer, generating both lookup tables from scratch.
func New() *Decomposer {
	c := decomptable.MakeCTable()
	return &Decomposer{c: c, w: decomptable.MakeWTable(c)}
}

// Stats reports the generated table sizes, for the startup diagnostics a
// collaborator logs once after building its Decomposer.
func (d *Decomposer) Stats() (cKeys, wKeys int) {
	return len(d.c), len(d.w)
}

var (
	defaultOnce sync.Once
	defaultDec  *Decomposer
)

// Default returns a process-wide Decomposer, building its tables lazily
// on first use.
func Default() *Decomposer {
	defaultOnce.Do(func() { defaultDec = New() })
	return defaultDec
}

// partial is one in-progress assembly of a regular wait: the groups and
// (if found) the real pair gathered so far, plus the waiting shape
// anchored in the wait suit.
type partial struct {
	groups      []handgroup.Group
	pair        *tile.Tile
	pairSeen    int
	kind        decomptable.RawKind
	patternTile tile.Tile
}

func otherSuits(s uint8) [3]uint8 {
	var out [3]uint8
	j := 0
	for i := uint8(0); i < 4; i++ {
		if i == s {
			continue
		}
		out[j] = i
		j++
	}
	return out
}

// filterHonorAlts drops any alternative containing a run — runs don't
// exist among honor tiles.
func filterHonorAlts(alts []decomptable.Alt) []decomptable.Alt {
	out := make([]decomptable.Alt, 0, len(alts))
	for _, a := range alts {
		if !a.HasShuntsu() {
			out = append(out, a)
		}
	}
	return out
}

// groupsForAlt decodes an Alt's raw ks codes and pair position into
// concrete tiles for the given suit.
func groupsForAlt(a decomptable.Alt, suit uint8) ([]handgroup.Group, *tile.Tile, bool) {
	groups := make([]handgroup.Group, 0, len(a.Groups))
	for _, ks := range a.Groups {
		pos, kind := handgroup.KsCodeToGroup(ks)
		t, ok := tile.FromNumSuit(pos+1, tile.Suit(suit))
		if !ok {
			return nil, nil, false
		}
		groups = append(groups, handgroup.Group{Kind: kind, Tile: t})
	}
	var pair *tile.Tile
	if a.HasPair() {
		t, ok := tile.FromNumSuit(uint8(a.Pair)+1, tile.Suit(suit))
		if !ok {
			return nil, nil, false
		}
		pair = &t
	}
	return groups, pair, true
}

func waitingTileLow(p partial) (tile.Tile, bool) {
	switch p.kind {
	case decomptable.Tanki, decomptable.Shanpon:
		return p.patternTile, true
	case decomptable.Kanchan:
		return p.patternTile.Succ()
	case decomptable.RyanmenLow, decomptable.RyanmenBoth:
		return p.patternTile.Pred()
	default:
		return 0, false
	}
}

func waitingTileHigh(p partial) (tile.Tile, bool) {
	if p.kind != decomptable.RyanmenBoth && p.kind != decomptable.RyanmenHigh {
		return 0, false
	}
	return p.patternTile.Succ2()
}

func (p partial) requiredPairs() int {
	if p.kind == decomptable.Tanki {
		return 0
	}
	return 1
}

func (p partial) tryExtend(suit uint8, a decomptable.Alt) (partial, bool) {
	groups, pair, ok := groupsForAlt(a, suit)
	if !ok {
		return partial{}, false
	}
	if suit == 3 && a.HasShuntsu() {
		return partial{}, false
	}
	next := p
	next.groups = append(append([]handgroup.Group{}, p.groups...), groups...)
	next.pairSeen = p.pairSeen
	if pair != nil {
		next.pairSeen++
		if next.pairSeen > p.requiredPairs() {
			return partial{}, false
		}
		next.pair = pair
	}
	return next, true
}

// complete turns a fully extended partial into its final RegularWait(s).
// A RyanmenBoth shape yields two waits (one per end) but both keep the
// same public Kind (DoubleClosed) — only Kanchan, RyanmenHigh and
// RyanmenLow are genuinely one-sided.
func (p partial) complete() []RegularWait {
	if p.pairSeen != p.requiredPairs() {
		return nil
	}
	kind := publicKind(p.kind)
	var out []RegularWait
	if lo, ok := waitingTileLow(p); ok {
		out = append(out, RegularWait{
			Groups:      p.groups,
			Pair:        p.pair,
			Kind:        kind,
			PatternTile: p.patternTile,
			WaitingTile: lo,
		})
	}
	if hi, ok := waitingTileHigh(p); ok {
		out = append(out, RegularWait{
			Groups:      p.groups,
			Pair:        p.pair,
			Kind:        kind,
			PatternTile: p.patternTile,
			WaitingTile: hi,
		})
	}
	return out
}

// DecomposeRegular finds every regular (4 groups + pair, one tile shy)
// waiting decomposition across the four packed per-suit histograms.
func (d *Decomposer) DecomposeRegular(packed [4]uint32) []RegularWait {
	var suitAlts [4][]decomptable.Alt
	for s := uint8(0); s < 4; s++ {
		alts := d.c[packed[s]]
		if s == 3 {
			alts = filterHonorAlts(alts)
		}
		suitAlts[s] = alts
	}

	var out []RegularWait
	for waitSuit := uint8(0); waitSuit < 4; waitSuit++ {
		other := otherSuits(waitSuit)
		for _, wp := range d.w[packed[waitSuit]] {
			if waitSuit == 3 && wp.Kind.NeedsRun() {
				continue
			}
			patTile, ok := tile.FromNumSuit(wp.PatternPos+1, tile.Suit(waitSuit))
			if !ok {
				continue
			}
			bgAlts := d.c[wp.CompleteKey]
			if waitSuit == 3 {
				bgAlts = filterHonorAlts(bgAlts)
			}
			for _, bg := range bgAlts {
				bgGroups, bgPair, ok := groupsForAlt(bg, waitSuit)
				if !ok {
					continue
				}
				base := partial{kind: wp.Kind, patternTile: patTile, groups: bgGroups}
				if bgPair != nil {
					base.pair = bgPair
					base.pairSeen = 1
					if base.pairSeen > base.requiredPairs() {
						continue
					}
				}
				for _, a0 := range suitAlts[other[0]] {
					p1, ok := base.tryExtend(other[0], a0)
					if !ok {
						continue
					}
					for _, a1 := range suitAlts[other[1]] {
						p2, ok := p1.tryExtend(other[1], a1)
						if !ok {
							continue
						}
						for _, a2 := range suitAlts[other[2]] {
							p3, ok := p2.tryExtend(other[2], a2)
							if !ok {
								continue
							}
							out = append(out, p3.complete()...)
						}
					}
				}
			}
		}
	}
	return out
}
