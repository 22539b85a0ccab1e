// SPDX-License-Identifier: MIT

package cholesky

import "github.com/katalvlaran/spdsolve/matrix"

// Inverse returns A⁻¹ as a newly allocated matrix by solving A·X = I.
// The identity is allocated here, so no caller-owned state is mutated.
//
// Errors: ErrNilFactor, ErrSingularFactor (injected factor with a zero pivot).
// Complexity: Time O(n³), Space O(n²).
//
// AI-Hints:
//   - To apply A⁻¹ to a few vectors, Solve/SolveVec is cheaper than forming the inverse.
func (c *Cholesky) Inverse() (*matrix.Dense, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	inv, err := matrix.NewIdentity(c.n)
	if err != nil {
		return nil, choleskyErrorf(opInverse, err)
	}
	if err = c.Solve(inv); err != nil {
		return nil, choleskyErrorf(opInverse, err)
	}

	return inv, nil
}
