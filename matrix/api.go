// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for building matrices.
//   - Avoid logic duplication — each facade delegates to the canonical constructor.
//
// AI-Hints:
//   - Use NewIdentity as the right-hand side when inverting through a solver.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral right-hand side for inverses.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
