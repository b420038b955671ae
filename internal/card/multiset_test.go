package card

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unotrack/internal/apperrors"
)

// firstRand always selects the first remaining instance, which makes Draw
// pick types in composition order.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func TestNewMultiset_Composition(t *testing.T) {
	t.Parallel()

	m := NewMultiset(nil)

	require.Equal(t, 108, m.Len(), "full deck is 108 cards")
	assert.Equal(t, 108, DeckSize)

	assert.Equal(t, 4, m.Count(Wild()))
	assert.Equal(t, 4, m.Count(WildFour()))

	for c := Red; c <= Blue; c++ {
		perColor := m.Count(Numbered(c, 0))
		assert.Equal(t, 1, m.Count(Numbered(c, 0)), "one zero per color")
		for n := 1; n <= 9; n++ {
			assert.Equal(t, 2, m.Count(Numbered(c, n)), "%v %d", c, n)
			perColor += m.Count(Numbered(c, n))
		}
		for _, a := range []Action{Skip, DrawTwo, Reverse} {
			assert.Equal(t, 2, m.Count(ActionCard(c, a)), "%v %v", c, a)
			perColor += m.Count(ActionCard(c, a))
		}
		assert.Equal(t, PerColorCount, perColor, "25 cards per color")
	}

	assert.Zero(t, m.Count(ActionCard(Red, DrawFour)), "no colored draw-four exists")
}

func TestMultiset_DrawReducesLen(t *testing.T) {
	t.Parallel()

	m := NewMultiset(rand.New(rand.NewPCG(1, 2)))
	for want := 107; want >= 0; want-- {
		_, ok := m.Draw()
		require.True(t, ok)
		require.Equal(t, want, m.Len())
	}
}

func TestMultiset_DrawToEnd(t *testing.T) {
	t.Parallel()

	m := NewMultiset(rand.New(rand.NewPCG(7, 7)))
	for range 108 {
		m.Draw()
	}

	assert.Equal(t, 0, m.Len())
	_, ok := m.Draw()
	assert.False(t, ok, "exhausted multiset keeps returning no card")
	_, ok = m.Draw()
	assert.False(t, ok)
}

func TestMultiset_DrawIsWeightedAndStubbed(t *testing.T) {
	t.Parallel()

	m := NewMultiset(firstRand{})

	// Composition order starts with the four plain wilds, then the four
	// wild draw-fours, then Red 0.
	for range 4 {
		c, ok := m.Draw()
		require.True(t, ok)
		assert.Equal(t, Wild(), c)
	}
	for range 4 {
		c, ok := m.Draw()
		require.True(t, ok)
		assert.Equal(t, WildFour(), c)
	}
	c, ok := m.Draw()
	require.True(t, ok)
	assert.Equal(t, Numbered(Red, 0), c)
}

func TestMultiset_SeededDrawsAreReproducible(t *testing.T) {
	t.Parallel()

	a := NewMultiset(rand.New(rand.NewPCG(42, 0)))
	b := NewMultiset(rand.New(rand.NewPCG(42, 0)))

	for range 108 {
		ca, oka := a.Draw()
		cb, okb := b.Draw()
		require.Equal(t, oka, okb)
		require.Equal(t, ca, cb)
	}
}

func TestMultiset_RemoveAndCount(t *testing.T) {
	t.Parallel()

	m := NewMultiset(nil)
	blue1 := Numbered(Blue, 1)

	assert.Equal(t, 2, m.Count(blue1))
	require.NoError(t, m.Remove(blue1))
	assert.Equal(t, 1, m.Count(blue1))
	require.NoError(t, m.Remove(blue1))
	assert.Equal(t, 0, m.Count(blue1))

	err := m.Remove(blue1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrState), "double removal is a StateError")
	assert.Equal(t, 106, m.Len(), "failed removal leaves the bag untouched")
}

func TestMultiset_RemoveUnknownType(t *testing.T) {
	t.Parallel()

	m := NewMultiset(nil)
	err := m.Remove(ActionCard(Red, DrawFour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrState))
}
