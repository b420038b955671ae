package track

import (
	"fmt"

	"unotrack/internal/card"
)

// EventKind identifies a game observation applied to the tracker.
type EventKind int

const (
	EventInitialPlay EventKind = iota + 1
	EventPlayerDrew
	EventPlayerPlayed
	EventOtherPlayed
	EventOtherCouldNotPlay
	EventOtherDrew
)

var eventNames = map[EventKind]string{
	EventInitialPlay:       "initial_play",
	EventPlayerDrew:        "player_drew",
	EventPlayerPlayed:      "player_played",
	EventOtherPlayed:       "other_played",
	EventOtherCouldNotPlay: "other_could_not_play",
	EventOtherDrew:         "other_drew",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one applied observation, recorded after the tracker's state has
// been updated. Opponent is -1 for the observer's own events.
type Event struct {
	Seq      int
	Kind     EventKind
	Opponent int

	// Card is set (HasCard) for every kind except EventOtherCouldNotPlay
	// and EventOtherDrew.
	Card    card.Card
	HasCard bool

	// Requirement is the unfulfilled constraint on EventOtherCouldNotPlay.
	Requirement card.Requirement

	// Drawn is the card count on EventOtherDrew.
	Drawn int
}

func (t *Tracker) record(e Event) {
	e.Seq = len(t.log)
	t.log = append(t.log, e)
}

// Events returns a copy of the applied-event log in order.
func (t *Tracker) Events() []Event {
	out := make([]Event, len(t.log))
	copy(out, t.log)
	return out
}
