package cards

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrEmptyCatalog = errors.New("cards: nothing to pick from")
	ErrBadWeight    = errors.New("cards: draw weight must be positive")
)

// Weighted is an outcome with a relative draw weight.
type Weighted interface {
	DrawWeight() int
}

// PickWeighted returns one entry with probability weight/total. Every weight
// must be positive. Rounding that leaves the roll past every entry falls back
// to the last one.
func PickWeighted[T Weighted](rng *rand.Rand, entries []T) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, ErrEmptyCatalog
	}
	total := 0
	for i, e := range entries {
		w := e.DrawWeight()
		if w <= 0 {
			return zero, fmt.Errorf("%w: entry %d has weight %d", ErrBadWeight, i, w)
		}
		total += w
	}

	r := rng.Float64() * float64(total)
	for _, e := range entries {
		w := float64(e.DrawWeight())
		if r < w {
			return e, nil
		}
		r -= w
	}
	return entries[len(entries)-1], nil
}
