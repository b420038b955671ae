// Package track follows one UNO game from a single observer's point of view
// and estimates the odds that an opponent can answer a play, using only
// public information: cards seen so far and opponents' hand sizes.
package track

import "unotrack/internal/card"

// CountsIndex accumulates frequencies over every card the observer has seen,
// decomposed four ways: by exact card, by color, by number and by action.
// An attribute counter only moves when the counted card carries that
// attribute. There is no removal: a card once seen stays seen.
type CountsIndex struct {
	total   map[card.Card]int
	colors  map[card.Color]int
	numbers map[int]int
	actions map[card.Action]int
	seen    int
}

// NewCountsIndex returns an empty index.
func NewCountsIndex() *CountsIndex {
	return &CountsIndex{
		total:   make(map[card.Card]int),
		colors:  make(map[card.Color]int),
		numbers: make(map[int]int),
		actions: make(map[card.Action]int),
	}
}

// Count records one sighting of the card.
func (x *CountsIndex) Count(c card.Card) {
	x.total[c]++
	x.seen++
	if col, ok := c.Color(); ok {
		x.colors[col]++
	}
	if n, ok := c.Number(); ok {
		x.numbers[n]++
	}
	if a, ok := c.Action(); ok {
		x.actions[a]++
	}
}

// Total returns how many cards have been counted in all.
func (x *CountsIndex) Total() int {
	return x.seen
}

// CountOf returns how many times the exact card has been seen.
func (x *CountsIndex) CountOf(c card.Card) int {
	return x.total[c]
}

// ColorCount returns how many seen cards carried the color.
func (x *CountsIndex) ColorCount(c card.Color) int {
	return x.colors[c]
}

// NumberCount returns how many seen cards carried the number.
func (x *CountsIndex) NumberCount(n int) int {
	return x.numbers[n]
}

// ActionCount returns how many seen cards carried the action.
func (x *CountsIndex) ActionCount(a card.Action) int {
	return x.actions[a]
}
