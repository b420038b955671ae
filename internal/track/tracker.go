package track

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/google/uuid"

	"unotrack/internal/apperrors"
	"unotrack/internal/card"
	"unotrack/internal/combin"
)

// Tracker maintains the observer's partition of the 108-card population into
// seen and unseen cards as the game progresses, and answers hypergeometric
// probability queries over the unseen part.
//
// Every card makes at most one transition, unseen to seen, through see().
// Seeing a card that cannot be unseen anymore (double-counting, or a card
// that never existed in the composition) is an error, never a no-op: it
// means the fed event stream describes an impossible game.
//
// A Tracker belongs to exactly one observer and one game. It is not safe for
// concurrent use and is discarded when the game ends.
type Tracker struct {
	id   uuid.UUID
	hand []card.Card

	unseen *card.Multiset
	seen   *CountsIndex

	// opponents holds hand sizes only; the tracker never knows which
	// opponent holds which unseen card.
	opponents []int

	// unfulfilled remembers, per opponent, the last requirement that
	// opponent failed to answer. Overwritten, never accumulated.
	unfulfilled []lastRequirement

	original int
	table    *combin.Table
	log      []Event
}

type lastRequirement struct {
	req card.Requirement
	ok  bool
}

// New builds a tracker for an observer holding hand, facing opponents with
// the given hand sizes. The unseen pool starts as the full composition minus
// the hand; the seen index starts seeded with the hand. rng feeds the unseen
// pool's Draw and may be nil for the shared source.
func New(hand []card.Card, opponentHandSizes []int, rng card.IntN) (*Tracker, error) {
	for i, n := range opponentHandSizes {
		if n < 0 {
			return nil, fmt.Errorf("opponent %d hand size %d: %w", i, n, apperrors.ErrInvalidArgument)
		}
	}
	t := &Tracker{
		id:          uuid.New(),
		hand:        slices.Clone(hand),
		unseen:      card.NewMultiset(rng),
		seen:        NewCountsIndex(),
		opponents:   slices.Clone(opponentHandSizes),
		unfulfilled: make([]lastRequirement, len(opponentHandSizes)),
	}
	t.original = t.unseen.Len()
	t.table = combin.New(t.original)
	for _, c := range t.hand {
		if err := t.see(c); err != nil {
			return nil, fmt.Errorf("hand: %w", err)
		}
	}
	return t, nil
}

// ID identifies the tracked game.
func (t *Tracker) ID() uuid.UUID {
	return t.id
}

// Hand returns a copy of the observer's hand in draw order.
func (t *Tracker) Hand() []card.Card {
	return slices.Clone(t.hand)
}

// Seen exposes read access to the seen-card counters.
func (t *Tracker) Seen() *CountsIndex {
	return t.seen
}

// UnseenLen returns the size of the unseen pool.
func (t *Tracker) UnseenLen() int {
	return t.unseen.Len()
}

// OpponentHandSize returns the tracked hand size for the opponent.
func (t *Tracker) OpponentHandSize(opponent int) (int, error) {
	if err := t.checkOpponent(opponent); err != nil {
		return 0, err
	}
	return t.opponents[opponent], nil
}

// LastUnfulfilled returns the last requirement the opponent failed to
// answer, if any was recorded.
func (t *Tracker) LastUnfulfilled(opponent int) (card.Requirement, bool) {
	if opponent < 0 || opponent >= len(t.unfulfilled) {
		return card.Requirement{}, false
	}
	u := t.unfulfilled[opponent]
	return u.req, u.ok
}

// CountDeck returns the size of the face-down draw pile implied by the
// current state: unseen cards minus cards in opponents' hands.
func (t *Tracker) CountDeck() int {
	n := t.unseen.Len()
	for _, k := range t.opponents {
		n -= k
	}
	return n
}

// see moves one card from the unseen pool into the seen index. Remove runs
// first so that an impossible observation fails atomically, before any
// bookkeeping is recorded.
func (t *Tracker) see(c card.Card) error {
	if err := t.unseen.Remove(c); err != nil {
		return err
	}
	t.seen.Count(c)
	return nil
}

func (t *Tracker) checkOpponent(opponent int) error {
	if opponent < 0 || opponent >= len(t.opponents) {
		return fmt.Errorf("opponent %d of %d: %w", opponent, len(t.opponents), apperrors.ErrInvalidArgument)
	}
	return nil
}

// InitialPlay marks the starting discard as seen.
func (t *Tracker) InitialPlay(c card.Card) error {
	if err := t.see(c); err != nil {
		return err
	}
	t.record(Event{Kind: EventInitialPlay, Opponent: -1, Card: c, HasCard: true})
	return nil
}

// PlayerDrew marks each drawn card as seen and appends it to the observer's
// hand. On error the cards before the failing one remain applied.
func (t *Tracker) PlayerDrew(cards []card.Card) error {
	for _, c := range cards {
		if err := t.see(c); err != nil {
			return err
		}
		t.hand = append(t.hand, c)
		t.record(Event{Kind: EventPlayerDrew, Opponent: -1, Card: c, HasCard: true})
	}
	return nil
}

// PlayerPlayed marks the observer's played card as seen. Removing the card
// from the hand is the turn engine's responsibility, not the tracker's.
func (t *Tracker) PlayerPlayed(c card.Card) error {
	if err := t.see(c); err != nil {
		return err
	}
	t.record(Event{Kind: EventPlayerPlayed, Opponent: -1, Card: c, HasCard: true})
	return nil
}

// OtherPlayerPlayed marks the opponent's played card as seen and decrements
// that opponent's hand size. A play from an empty hand means the tracked
// hand sizes have diverged from the real game: an internal invariant error.
func (t *Tracker) OtherPlayerPlayed(opponent int, c card.Card) error {
	if err := t.checkOpponent(opponent); err != nil {
		return err
	}
	if t.opponents[opponent] == 0 {
		return fmt.Errorf("opponent %d played %v with no cards tracked: %w", opponent, c, apperrors.ErrInternal)
	}
	if err := t.see(c); err != nil {
		return err
	}
	t.opponents[opponent]--
	t.record(Event{Kind: EventOtherPlayed, Opponent: opponent, Card: c, HasCard: true})
	return nil
}

// OtherPlayerCouldNotPlay records that the opponent failed to answer the
// requirement. Only the latest unfulfilled requirement per opponent is kept.
// Nothing moves between the pools.
func (t *Tracker) OtherPlayerCouldNotPlay(opponent int, req card.Requirement) error {
	if err := t.checkOpponent(opponent); err != nil {
		return err
	}
	t.unfulfilled[opponent] = lastRequirement{req: req, ok: true}
	t.record(Event{Kind: EventOtherCouldNotPlay, Opponent: opponent, Requirement: req})
	return nil
}

// OtherPlayerDrew adds n cards to the opponent's tracked hand size. The
// drawn cards stay unseen.
func (t *Tracker) OtherPlayerDrew(opponent, n int) error {
	if err := t.checkOpponent(opponent); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("drew %d cards, players must draw at least one: %w", n, apperrors.ErrInvalidArgument)
	}
	t.opponents[opponent] += n
	t.record(Event{Kind: EventOtherDrew, Opponent: opponent, Drawn: n})
	return nil
}

// RequirementProbability estimates the probability that the opponent holds
// at least one card answering the requirement, modeling the opponent's hand
// as a uniform k-subset of the unseen pool.
//
// The estimate is the color-match probability plus the number-match
// probability. Each term alone is a true probability in [0, 1]; their sum
// double-counts hands that match both ways, so the result is an upper bound
// and can exceed 1 when both terms are large. Callers wanting a displayable
// percentage should treat it as such.
func (t *Tracker) RequirementProbability(req card.Requirement, opponent int) (float64, error) {
	if err := t.checkOpponent(opponent); err != nil {
		return 0, err
	}
	n := t.unseen.Len()
	if seen := t.seen.Total(); seen+n != t.original {
		return 0, fmt.Errorf("seen %d + unseen %d != %d: %w", seen, n, t.original, apperrors.ErrInternal)
	}
	k := t.opponents[opponent]

	p := 0.0
	if req.HasColor {
		remaining := card.PerColorCount - t.seen.ColorCount(req.Color)
		frac, err := t.avoidingFraction(n, k, remaining)
		if err != nil {
			return 0, err
		}
		p += 1 - frac
	}
	if req.HasNumber {
		population := card.NonzeroPopulation
		if req.Number == 0 {
			population = card.ZeroPopulation
		}
		remaining := population - t.seen.NumberCount(req.Number)
		frac, err := t.avoidingFraction(n, k, remaining)
		if err != nil {
			return 0, err
		}
		p += 1 - frac
	}
	return p, nil
}

// avoidingFraction returns the fraction of k-subsets of the n unseen cards
// that avoid all `remaining` cards of the attribute: C(n-remaining, k) /
// C(n, k). When k exceeds n-remaining no such subset exists and the
// fraction is 0.
func (t *Tracker) avoidingFraction(n, k, remaining int) (float64, error) {
	if k > n-remaining {
		return 0, nil
	}
	universe, err := t.table.NCr(n, k)
	if err != nil {
		return 0, err
	}
	avoiding, err := t.table.NCr(n-remaining, k)
	if err != nil {
		return 0, err
	}
	f, _ := new(big.Rat).SetFrac(avoiding, universe).Float64()
	return f, nil
}
