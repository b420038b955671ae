package card

import (
	"fmt"
	"math/rand/v2"

	"unotrack/internal/apperrors"
)

// Composition of the standard 108-card deck.
const (
	WildCount     = 4 // plain wild cards
	WildFourCount = 4 // wild draw-four cards
	ZeroCount     = 1 // "0" per color
	NonzeroCount  = 2 // each of "1".."9" per color
	ActionCount   = 2 // each colored action per color

	// PerColorCount is how many cards carry a given color: one zero, two
	// each of 1..9, two each of Skip/DrawTwo/Reverse.
	PerColorCount = ZeroCount + 9*NonzeroCount + 3*ActionCount

	// ZeroPopulation and NonzeroPopulation are how many cards carry a given
	// number across all colors.
	ZeroPopulation    = ZeroCount * NumColors
	NonzeroPopulation = NonzeroCount * NumColors

	// DeckSize is the full composition: 8 wilds + 25 per color.
	DeckSize = WildCount + WildFourCount + NumColors*PerColorCount
)

// IntN is the slice of a random source the multiset needs. *math/rand/v2.Rand
// satisfies it; tests substitute deterministic implementations.
type IntN interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Multiset is a mutable bag over the fixed card-type population, keyed by
// card type with a remaining count per type. Every operation is bounded by
// the number of distinct types (54), never by the number of physical cards.
//
// It serves two roles: the canonical full deck, and the tracker's pool of
// cards not yet seen.
type Multiset struct {
	counts map[Card]int
	// order lists the distinct types in composition order so that draws with
	// a seeded source are reproducible; map iteration order would not be.
	order []Card
	size  int
	rng   IntN
}

// NewMultiset returns a multiset holding the full 108-card composition.
// A nil rng falls back to the shared math/rand/v2 source.
func NewMultiset(rng IntN) *Multiset {
	if rng == nil {
		rng = globalRand{}
	}
	m := &Multiset{
		counts: make(map[Card]int, 54),
		order:  make([]Card, 0, 54),
		rng:    rng,
	}
	m.add(Wild(), WildCount)
	m.add(WildFour(), WildFourCount)
	for c := Red; c <= Blue; c++ {
		m.add(Numbered(c, 0), ZeroCount)
		for n := 1; n <= 9; n++ {
			m.add(Numbered(c, n), NonzeroCount)
		}
		for _, a := range []Action{Skip, DrawTwo, Reverse} {
			m.add(ActionCard(c, a), ActionCount)
		}
	}
	return m
}

func (m *Multiset) add(c Card, n int) {
	m.counts[c] = n
	m.order = append(m.order, c)
	m.size += n
}

// Len returns the number of physical cards remaining.
func (m *Multiset) Len() int {
	return m.size
}

// Count returns the remaining count for the exact card type, 0 if the type
// was never present or is exhausted.
func (m *Multiset) Count(c Card) int {
	return m.counts[c]
}

// Draw removes and returns one card chosen uniformly among the remaining
// physical instances, i.e. weighted by per-type remaining count. The second
// return is false once the multiset is empty.
func (m *Multiset) Draw() (Card, bool) {
	if m.size == 0 {
		return Card{}, false
	}
	pick := m.rng.IntN(m.size)
	for _, c := range m.order {
		n := m.counts[c]
		if pick < n {
			m.take(c)
			return c, true
		}
		pick -= n
	}
	// Unreachable while counts sum to size.
	panic("card: multiset counts out of sync with size")
}

// Remove takes one instance of the exact card type out of the bag. Removing
// a card that is not in the bag is a programming error, reported as a
// StateError, and leaves the bag untouched.
func (m *Multiset) Remove(c Card) error {
	if m.counts[c] == 0 {
		return fmt.Errorf("remove %v: no copies remain: %w", c, apperrors.ErrState)
	}
	m.take(c)
	return nil
}

// take decrements the type's count, dropping the map entry when it reaches
// zero so exhausted types are absent rather than present-with-zero.
func (m *Multiset) take(c Card) {
	m.counts[c]--
	m.size--
	if m.counts[c] == 0 {
		delete(m.counts, c)
	}
}
