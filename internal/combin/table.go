// Package combin precomputes binomial coefficients for constant-time lookup.
package combin

import (
	"fmt"
	"math/big"

	"unotrack/internal/apperrors"
)

// Table holds C(n, r) for all 0 ≤ r ≤ n ≤ maxItems, built as Pascal's
// triangle. Values are big.Int because the populations here overflow uint64
// (C(108, 54) has 32 digits). A Table never changes after New.
type Table struct {
	rows [][]*big.Int
}

// New builds the table up to maxItems, the largest population that will ever
// be queried. Sizing is strict: lookups beyond maxItems are rejected rather
// than computed on demand.
func New(maxItems int) *Table {
	if maxItems < 0 {
		maxItems = 0
	}
	rows := make([][]*big.Int, maxItems+1)
	for n := range rows {
		rows[n] = make([]*big.Int, n+1)
		rows[n][0] = big.NewInt(1)
		rows[n][n] = big.NewInt(1)
		for r := 1; r < n; r++ {
			rows[n][r] = new(big.Int).Add(rows[n-1][r-1], rows[n-1][r])
		}
	}
	return &Table{rows: rows}
}

// Max returns the largest n the table answers for.
func (t *Table) Max() int {
	return len(t.rows) - 1
}

// NCr returns C(n, r). The returned value is shared with the table and must
// not be mutated. r > n, negative arguments, and n beyond the table's bound
// are DomainErrors.
func (t *Table) NCr(n, r int) (*big.Int, error) {
	switch {
	case r > n:
		return nil, fmt.Errorf("nCr(%d, %d): r exceeds n: %w", n, r, apperrors.ErrDomain)
	case r < 0 || n < 0:
		return nil, fmt.Errorf("nCr(%d, %d): negative argument: %w", n, r, apperrors.ErrDomain)
	case n > t.Max():
		return nil, fmt.Errorf("nCr(%d, %d): table sized for n ≤ %d: %w", n, r, t.Max(), apperrors.ErrDomain)
	}
	return t.rows[n][r], nil
}
