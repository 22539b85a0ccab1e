// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

import "math"

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
