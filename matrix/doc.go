// Package matrix is the dense-matrix collaborator of spdsolve.
//
// The matrix package provides:
//
//   - The Matrix interface (shape, checked At/Set, Clone) consumed by the
//     cholesky package.
//   - Dense, a row-major float64 matrix with identity, zero and
//     column-from-vector constructors.
//   - Central validators (nil, square, same-shape, symmetry) returning
//     package sentinels.
//   - A handful of kernels (Mul, Transpose, Add, Sub, MatVec, AllClose,
//     MaxAbsDiff) used to verify factorizations and residuals.
//
// Kernels never mutate their inputs and take a flat-slice fast path when all
// operands are *Dense.
package matrix
