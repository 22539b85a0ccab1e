// SPDX-License-Identifier: MIT
// Package cholesky: functional configuration for Decompose and New.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options are unexported; public entry points accept ...Option.

package cholesky

import (
	"log/slog"
	"math"
)

// DefaultSymmetryTol is the relative tolerance of the symmetry check that
// Decompose runs unless WithoutSymmetryCheck is given. It is scaled by
// max(1, max_i |A[i,i]|).
const DefaultSymmetryTol = 1e-9

const panicSymmetryTolInvalid = "cholesky: WithSymmetryCheck: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	checkSymmetry bool         // DefaultSymmetryTol check enabled
	symmetryTol   float64      // relative tolerance, >= 0
	backend       Backend      // BackendNative
	logger        *slog.Logger // discard unless WithLogger
}

func defaultOptions() options {
	return options{
		checkSymmetry: true,
		symmetryTol:   DefaultSymmetryTol,
		backend:       BackendNative,
		logger:        slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSymmetryCheck enables the symmetry check with relative tolerance tol:
// |A[i,j] − A[j,i]| ≤ tol·max(1, max_k |A[k,k]|) for all i<j.
// Panics when tol is NaN, ±Inf or negative.
func WithSymmetryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryTolInvalid)
	}

	return func(o *options) {
		o.checkSymmetry = true
		o.symmetryTol = tol
	}
}

// WithoutSymmetryCheck trusts the caller: only entries on or below the
// diagonal are read and the upper triangle is never compared.
func WithoutSymmetryCheck() Option {
	return func(o *options) { o.checkSymmetry = false }
}

// WithBackend selects the factor/solve routine. An unavailable backend is
// reported by Decompose/New as ErrUnsupportedOperation.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger routes diagnostics (failed decompositions, rejected inputs) to l.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
