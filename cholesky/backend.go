// SPDX-License-Identifier: MIT

package cholesky

import (
	"fmt"
	"strings"
)

// Backend selects the routine that performs the triangular factor/solve.
// The choice is made once, at construction; an unavailable backend makes
// construction fail rather than silently falling back to another routine.
type Backend uint8

const (
	// BackendNative is the pure-Go row-oriented factorization with
	// forward/backward substitution. Always available.
	BackendNative Backend = iota

	// BackendLAPACK names the LAPACK dpotrf/dpotrs pair. No LAPACK binding
	// is linked into this module, so selecting it yields ErrUnsupportedOperation.
	BackendLAPACK
)

const (
	backendNativeName = "native"
	backendLAPACKName = "lapack"
)

// String returns the configuration name of b.
func (b Backend) String() string {
	switch b {
	case BackendNative:
		return backendNativeName
	case BackendLAPACK:
		return backendLAPACKName
	default:
		return fmt.Sprintf("backend(%d)", uint8(b))
	}
}

// ParseBackend maps a configuration string (case-insensitive) to a Backend.
// Unknown names are reported as ErrUnsupportedOperation.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", backendNativeName:
		return BackendNative, nil
	case backendLAPACKName:
		return BackendLAPACK, nil
	default:
		return 0, fmt.Errorf("%w: unknown backend %q", ErrUnsupportedOperation, name)
	}
}

// available reports whether b can run in this build.
func (b Backend) available() error {
	switch b {
	case BackendNative:
		return nil
	case BackendLAPACK:
		// TODO: bind dpotrf/dpotrs behind a cgo build tag and report nil here when linked.
		return fmt.Errorf("%w: backend %q (dpotrf/dpotrs) is not linked into this build", ErrUnsupportedOperation, b)
	default:
		return fmt.Errorf("%w: backend %s", ErrUnsupportedOperation, b)
	}
}
