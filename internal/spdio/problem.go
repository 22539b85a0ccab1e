// SPDX-License-Identifier: MIT

// Package spdio reads linear-system problems and writes factorization results.
//
// A problem file is YAML (JSON is accepted as the flow-style subset):
//
//	a:   [[4, 12, -16], [12, 37, -43], [-16, -43, 98]]
//	rhs: [1, 2, 3]          # vector right-hand side, or
//	b:   [[1, 0], [2, 1], [3, 0]]  # matrix right-hand side
package spdio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spdsolve/matrix"
)

var (
	// ErrEmptyProblem is returned when the input holds no document.
	ErrEmptyProblem = errors.New("spdio: empty problem")

	// ErrMissingMatrix is returned when the document has no "a" key.
	ErrMissingMatrix = errors.New("spdio: problem has no matrix a")

	// ErrMissingRHS is returned by RHS when neither "b" nor "rhs" is present.
	ErrMissingRHS = errors.New("spdio: problem has no right-hand side (b or rhs)")

	// ErrAmbiguousRHS is returned when both "b" and "rhs" are present.
	ErrAmbiguousRHS = errors.New("spdio: problem sets both b and rhs")
)

// Problem is the decoded content of a problem file.
type Problem struct {
	A   [][]float64 `yaml:"a"`
	B   [][]float64 `yaml:"b,omitempty"`
	RHS []float64   `yaml:"rhs,omitempty"`
}

// Decode reads one problem document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyProblem
		}
		return nil, fmt.Errorf("spdio: decode problem: %w", err)
	}
	if len(p.A) == 0 {
		return nil, ErrMissingMatrix
	}
	if p.B != nil && p.RHS != nil {
		return nil, ErrAmbiguousRHS
	}

	return &p, nil
}

// ReadFile opens path ("-" means stdin) and decodes it.
func ReadFile(path string, stdin io.Reader) (*Problem, error) {
	if path == "-" {
		return Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spdio: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Matrix returns A as a freshly allocated dense matrix.
func (p *Problem) Matrix() (*matrix.Dense, error) {
	a, err := matrix.NewFromRows(p.A)
	if err != nil {
		return nil, fmt.Errorf("spdio: a: %w", err)
	}

	return a, nil
}

// HasRHS reports whether the problem carries a right-hand side.
func (p *Problem) HasRHS() bool { return p.B != nil || p.RHS != nil }

// IsVector reports whether the right-hand side was given as a flat rhs list.
func (p *Problem) IsVector() bool { return p.RHS != nil }

// RHSMatrix returns the right-hand side as a dense matrix; a vector rhs
// becomes an n×1 column.
func (p *Problem) RHSMatrix() (*matrix.Dense, error) {
	switch {
	case p.RHS != nil:
		v := make([]float64, len(p.RHS))
		copy(v, p.RHS)
		col, err := matrix.NewColumn(v)
		if err != nil {
			return nil, fmt.Errorf("spdio: rhs: %w", err)
		}

		return col, nil
	case p.B != nil:
		b, err := matrix.NewFromRows(p.B)
		if err != nil {
			return nil, fmt.Errorf("spdio: b: %w", err)
		}

		return b, nil
	default:
		return nil, ErrMissingRHS
	}
}
