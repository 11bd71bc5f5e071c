package decomposer

import (
	"errors"
	"fmt"

	"github.com/kevin-chtw/riichi-decomp/histogram"
)

// ErrInvalidHistogram is wrapped by errors reporting a hand that isn't a
// legal 13-tile closed hand.
var ErrInvalidHistogram = errors.New("decomposer: invalid histogram")

// ErrLutUnavailable is wrapped by errors reporting a failure building
// the lookup tables the decomposer depends on.
var ErrLutUnavailable = errors.New("decomposer: lookup tables unavailable")

// ValidateHand reports whether h is a legal 13-tile closed hand, wrapping
// ErrInvalidHistogram when it isn't. Exported so collaborators outside
// this package (the pitaya remote component, the CLI) can validate input
// before calling a *Decomposer directly.
func ValidateHand(h histogram.Hand) error {
	if h.TotalTiles() != 13 {
		return fmt.Errorf("%w: expected 13 tiles, got %d", ErrInvalidHistogram, h.TotalTiles())
	}
	for _, s := range h.Suits {
		if s.IsOverflow() {
			return fmt.Errorf("%w: suit histogram overflow", ErrInvalidHistogram)
		}
	}
	return nil
}

// Decompose validates h and finds every waiting decomposition, using the
// process-wide Decomposer (its lookup tables are built lazily on first
// use). Most callers building many hands should prefer holding their own
// *Decomposer via New and calling its Decompose method directly.
func Decompose(h histogram.Hand) (_ WaitSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLutUnavailable, r)
		}
	}()

	if err := ValidateHand(h); err != nil {
		return WaitSet{}, err
	}
	return Default().Decompose(h), nil
}
