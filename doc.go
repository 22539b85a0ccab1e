// Package spdsolve is a small, dependable toolkit for symmetric positive-definite
// linear systems: factor once with Cholesky, then solve as many right-hand
// sides as you need.
//
// 🚀 What is spdsolve?
//
//	A pure-Go factorization layer that brings together:
//		• Factorization: A = L·Lᵗ, row-oriented, with the failing row reported
//		• Solves: vector and matrix right-hand sides, overwritten in place
//		• Parallel solves: columns spread over an errgroup, bit-identical to serial
//		• Inverse, determinant and log-determinant from the same factor
//		• Honest backends: an unavailable routine fails, it is never emulated
//
// ✨ Why choose spdsolve?
//
//   - Clear errors – NotPositiveDefiniteError carries the row, sentinels work with errors.Is
//   - Checked by default – symmetry is validated unless you opt out
//   - Pure Go – no cgo in the native backend
//
// Packages:
//
//	matrix/           — the Dense collaborator: storage, validators, verification kernels
//	cholesky/         — Decompose, New, Solve, SolveVec, SolveParallel, Inverse
//	internal/config/  — SPDSOLVE_* environment settings
//	internal/spdio/   — YAML/JSON problem files and result encoding
//	cmd/spdsolve/     — the command-line front end
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	ch, err := cholesky.Decompose(a)
//	b := []float64{0, 6, 39}
//	err = ch.SolveVec(b) // b == [1 1 1]
//
//	go install github.com/katalvlaran/spdsolve/cmd/spdsolve@latest
package spdsolve
