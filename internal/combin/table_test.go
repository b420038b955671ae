package combin

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unotrack/internal/apperrors"
)

func mustNCr(t *testing.T, tbl *Table, n, r int) *big.Int {
	t.Helper()
	v, err := tbl.NCr(n, r)
	require.NoError(t, err)
	return v
}

func TestTable_Edges(t *testing.T) {
	t.Parallel()

	tbl := New(108)
	assert.Equal(t, 108, tbl.Max())

	for _, n := range []int{0, 1, 7, 54, 108} {
		assert.Zero(t, mustNCr(t, tbl, n, 0).Cmp(big.NewInt(1)), "C(%d, 0)", n)
		assert.Zero(t, mustNCr(t, tbl, n, n).Cmp(big.NewInt(1)), "C(%d, %d)", n, n)
	}
}

func TestTable_SymmetryAndRecurrence(t *testing.T) {
	t.Parallel()

	tbl := New(60)
	for n := 2; n <= 60; n += 7 {
		for k := 1; k < n; k++ {
			assert.Zero(t, mustNCr(t, tbl, n, k).Cmp(mustNCr(t, tbl, n, n-k)),
				"C(%d,%d) == C(%d,%d)", n, k, n, n-k)

			sum := new(big.Int).Add(mustNCr(t, tbl, n-1, k-1), mustNCr(t, tbl, n-1, k))
			assert.Zero(t, mustNCr(t, tbl, n, k).Cmp(sum),
				"Pascal recurrence at C(%d,%d)", n, k)
		}
	}
}

func TestTable_KnownValues(t *testing.T) {
	t.Parallel()

	tbl := New(108)

	tests := []struct {
		n, r int
		want string
	}{
		{5, 2, "10"},
		{52, 5, "2598960"},
		{100, 7, "16007560800"},
		// C(108, 54) overflows uint64 by a wide margin; this is why the
		// table stores big.Int.
		{108, 54, "24857784491537440929618523018320"},
	}
	for _, tt := range tests {
		want, ok := new(big.Int).SetString(tt.want, 10)
		require.True(t, ok)
		assert.Zero(t, mustNCr(t, tbl, tt.n, tt.r).Cmp(want), "C(%d,%d)", tt.n, tt.r)
	}
}

func TestTable_DomainErrors(t *testing.T) {
	t.Parallel()

	tbl := New(10)

	tests := []struct {
		name string
		n, r int
	}{
		{name: "r exceeds n", n: 3, r: 4},
		{name: "negative r", n: 3, r: -1},
		{name: "negative n", n: -1, r: -2},
		{name: "n beyond table bound", n: 11, r: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tbl.NCr(tt.n, tt.r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrDomain))
		})
	}
}
