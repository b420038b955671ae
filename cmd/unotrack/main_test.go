package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unotrack/internal/card"
	"unotrack/internal/config"
)

// Rounds must complete on arbitrary seeds: dealt hands routinely hold
// duplicate types and the observer replays cards the tracker already saw at
// construction, so any double-counting surfaces within a few turns.
func TestPlayRound_CompletesAcrossSeeds(t *testing.T) {
	cfg := config.Default()

	for seed := uint64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		s, err := playRound(cfg, 0, rng)
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, card.DeckSize, s.tracker.Seen().Total()+s.tracker.UnseenLen(),
			"seed %d: seen + unseen must still cover the composition", seed)
		assert.Equal(t, s.deck.Len(), s.tracker.CountDeck(),
			"seed %d: tracker's implied draw pile must match the dealer's deck", seed)
	}
}

func TestPlayRound_SmallTable(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Players = 2
	cfg.Game.HandSize = 5
	cfg.Game.MaxTurns = 60
	require.NoError(t, cfg.Validate())

	for seed := uint64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewPCG(seed, 1))
		s, err := playRound(cfg, 0, rng)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, s.deck.Len(), s.tracker.CountDeck(), "seed %d", seed)
	}
}

func TestDeal_TrackerMirrorsTheTable(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewPCG(7, 0))

	s, err := deal(cfg, rng)
	require.NoError(t, err)

	require.Len(t, s.hands, 4)
	for p, hand := range s.hands {
		assert.Len(t, hand, 7, "player %d", p)
	}
	assert.Equal(t, 8, s.tracker.Seen().Total(), "observer hand plus the open discard")
	assert.Equal(t, 100, s.tracker.UnseenLen())
	assert.Equal(t, s.deck.Len(), s.tracker.CountDeck())
	assert.True(t, s.req.HasColor,
		"the opening requirement always carries a color, declared if the discard was wild")
}
