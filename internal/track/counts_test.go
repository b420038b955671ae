package track

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unotrack/internal/card"
)

func TestCountsIndex_Count(t *testing.T) {
	t.Parallel()

	x := NewCountsIndex()

	x.Count(card.Numbered(card.Yellow, 0))
	assert.Equal(t, 1, x.ColorCount(card.Yellow))
	assert.Equal(t, 1, x.NumberCount(0))
	assert.Equal(t, 1, x.CountOf(card.Numbered(card.Yellow, 0)))
	assert.Equal(t, 1, x.Total())

	x.Count(card.Numbered(card.Red, 0))
	assert.Equal(t, 1, x.ColorCount(card.Red))
	assert.Equal(t, 2, x.NumberCount(0))
	assert.Equal(t, 1, x.CountOf(card.Numbered(card.Red, 0)))
	assert.Equal(t, 2, x.Total())

	x.Count(card.ActionCard(card.Red, card.Skip))
	assert.Equal(t, 2, x.ColorCount(card.Red))
	assert.Equal(t, 1, x.ActionCount(card.Skip))
	assert.Equal(t, 3, x.Total())
}

func TestCountsIndex_WildCountsNoAttributes(t *testing.T) {
	t.Parallel()

	x := NewCountsIndex()
	x.Count(card.Wild())
	x.Count(card.WildFour())

	assert.Equal(t, 2, x.Total())
	for c := card.Red; c <= card.Blue; c++ {
		assert.Zero(t, x.ColorCount(c))
	}
	for n := 0; n <= 9; n++ {
		assert.Zero(t, x.NumberCount(n))
	}
	// The wild draw-four still carries its action.
	assert.Equal(t, 1, x.ActionCount(card.DrawFour))
	assert.Equal(t, 1, x.CountOf(card.Wild()))
	assert.Equal(t, 1, x.CountOf(card.WildFour()))
}

func TestCountsIndex_RepeatedSightingsAccumulate(t *testing.T) {
	t.Parallel()

	x := NewCountsIndex()
	blue7 := card.Numbered(card.Blue, 7)
	x.Count(blue7)
	x.Count(blue7)

	assert.Equal(t, 2, x.CountOf(blue7))
	assert.Equal(t, 2, x.ColorCount(card.Blue))
	assert.Equal(t, 2, x.NumberCount(7))
	assert.Equal(t, 2, x.Total())
}
