// Command unotrack deals UNO games and shows, turn by turn, the tracked odds
// that each opponent can answer the observer's candidate plays. It plays the
// role of the turn engine and presentation layer around the tracking engine:
// it generates a plausible event stream, feeds it to the tracker, and renders
// the tracker's estimates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"unotrack/internal/apperrors"
	"unotrack/internal/card"
	"unotrack/internal/config"
	"unotrack/internal/logger"
	"unotrack/internal/track"
	"unotrack/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	seed := flag.Uint64("seed", 0, "override the deal seed (0 keeps the config value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = rand.Uint64()
	}

	if cfg.Log.Enabled {
		if err := logger.Init(); err != nil {
			log.Printf("debug log disabled: %v", err)
		} else {
			defer logger.Close()
			fmt.Printf("debug log: %s\n", logger.GetLogPath())
		}
	}

	for round := 0; round < cfg.Game.Rounds; round++ {
		rng := rand.New(rand.NewPCG(cfg.Game.Seed, uint64(round)))
		if _, err := playRound(cfg, round, rng); err != nil {
			if cfg.Log.Enabled {
				logger.LogError("round %d: %v", round+1, err)
			}
			log.Fatalf("round %d: %v", round+1, err)
		}
	}
}

// sim holds the dealer's omniscient view of one round. The tracker only ever
// receives what the observer could see.
type sim struct {
	rng     *rand.Rand
	deck    *card.Multiset
	hands   [][]card.Card // hands[0] is the observer
	tracker *track.Tracker
	req     card.Requirement
}

func playRound(cfg *config.Config, round int, rng *rand.Rand) (*sim, error) {
	s, err := deal(cfg, rng)
	if err != nil {
		return nil, err
	}

	fmt.Printf("%s\n", ui.TitleStyle(fmt.Sprintf("Round %d — game %s", round+1, s.tracker.ID())))
	fmt.Printf("Observer hand: %s\n", renderHand(s.hands[0]))
	fmt.Printf("Open discard:  %s\n\n", ui.RenderRequirement(s.req))

	for turn := 0; turn < cfg.Game.MaxTurns; turn++ {
		player := turn % cfg.Game.Players
		done, err := s.playTurn(player)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	fmt.Printf("\nDraw pile per tracker: %d cards, %d events applied\n\n",
		s.tracker.CountDeck(), len(s.tracker.Events()))
	if cfg.Log.Enabled {
		logger.LogInfo("round %d finished: game %s, deck %d", round+1, s.tracker.ID(), s.tracker.CountDeck())
	}
	return s, nil
}

func deal(cfg *config.Config, rng *rand.Rand) (*sim, error) {
	s := &sim{
		rng:   rng,
		deck:  card.NewMultiset(rng),
		hands: make([][]card.Card, cfg.Game.Players),
	}
	for p := range s.hands {
		for range cfg.Game.HandSize {
			c, ok := s.deck.Draw()
			if !ok {
				return nil, fmt.Errorf("deck exhausted during deal")
			}
			s.hands[p] = append(s.hands[p], c)
		}
	}
	discard, ok := s.deck.Draw()
	if !ok {
		return nil, fmt.Errorf("deck exhausted before the open discard")
	}

	sizes := make([]int, cfg.Game.Players-1)
	for i := range sizes {
		sizes[i] = cfg.Game.HandSize
	}
	tracker, err := track.New(s.hands[0], sizes, nil)
	if err != nil {
		return nil, err
	}
	if err := tracker.InitialPlay(discard); err != nil {
		return nil, err
	}
	s.tracker = tracker
	s.req = s.requirementFor(discard, 0)
	return s, nil
}

// playTurn advances one seat. Returns true when the round is over.
func (s *sim) playTurn(player int) (bool, error) {
	hand := s.hands[player]
	pick := -1
	for i, c := range hand {
		if c.Requirement().Matches(s.req) {
			pick = i
			break
		}
	}

	if player == 0 {
		if err := s.observerTurn(pick); err != nil {
			return false, err
		}
	} else {
		if err := s.opponentTurn(player, pick); err != nil {
			return false, err
		}
	}
	if pick >= 0 && len(s.hands[player]) == 0 {
		fmt.Printf("Player %d is out, round over.\n", player)
		return true, nil
	}
	return s.deck.Len() == 0, nil
}

func (s *sim) observerTurn(pick int) error {
	// Show the tracked odds for every candidate in hand against the next
	// opponent before committing to a play.
	fmt.Printf("Observer's turn (requirement %s), odds next opponent can answer:\n", ui.RenderRequirement(s.req))
	next := 0 // tracker opponent index of the player after the observer
	for _, c := range s.hands[0] {
		p, err := s.tracker.RequirementProbability(s.requirementFor(c, 0), next)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %s\n", ui.RenderOdds(p), ui.RenderCard(c))
	}

	if pick < 0 {
		c, ok := s.deck.Draw()
		if !ok {
			fmt.Println("  no play and the draw pile is empty")
			return nil
		}
		if err := s.tracker.PlayerDrew([]card.Card{c}); err != nil {
			return err
		}
		s.hands[0] = append(s.hands[0], c)
		fmt.Printf("  no play, drew %s\n", ui.RenderCard(c))
		return nil
	}

	c := s.hands[0][pick]
	// Every card in the observer's hand is already in the seen index: the
	// dealt hand was seeded at construction and draws were seen on arrival.
	// The tracker reports re-seeing it as a StateError; nothing moved, so
	// the play proceeds.
	if err := s.tracker.PlayerPlayed(c); err != nil && !errors.Is(err, apperrors.ErrState) {
		return err
	}
	s.hands[0] = slices.Delete(s.hands[0], pick, pick+1)
	s.req = s.requirementFor(c, 0)
	fmt.Printf("  played %s\n", ui.RenderCard(c))
	return nil
}

func (s *sim) opponentTurn(player, pick int) error {
	opp := player - 1 // tracker opponent index
	if pick < 0 {
		if err := s.tracker.OtherPlayerCouldNotPlay(opp, s.req); err != nil {
			return err
		}
		c, ok := s.deck.Draw()
		if !ok {
			return nil
		}
		if err := s.tracker.OtherPlayerDrew(opp, 1); err != nil {
			return err
		}
		s.hands[player] = append(s.hands[player], c)
		return nil
	}

	c := s.hands[player][pick]
	if err := s.tracker.OtherPlayerPlayed(opp, c); err != nil {
		return err
	}
	s.hands[player] = slices.Delete(s.hands[player], pick, pick+1)
	s.req = s.requirementFor(c, player)
	return nil
}

// requirementFor converts a played card into the constraint the next player
// faces. A wildcard imposes the color its player declares; the simulated
// declaration is the majority color left in that player's hand.
func (s *sim) requirementFor(c card.Card, player int) card.Requirement {
	if !c.IsWild() {
		return c.Requirement()
	}
	return card.ColorRequirement(s.declareColor(player))
}

func (s *sim) declareColor(player int) card.Color {
	counts := make(map[card.Color]int, card.NumColors)
	for _, c := range s.hands[player] {
		if col, ok := c.Color(); ok {
			counts[col]++
		}
	}
	best, bestN := card.Color(s.rng.IntN(card.NumColors)), 0
	for col := card.Red; col <= card.Blue; col++ {
		if counts[col] > bestN {
			best, bestN = col, counts[col]
		}
	}
	return best
}

func renderHand(hand []card.Card) string {
	out := ""
	for i, c := range hand {
		if i > 0 {
			out += ", "
		}
		out += ui.RenderCard(c)
	}
	return out
}
