// SPDX-License-Identifier: MIT

package spdio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spdsolve/matrix"
)

// Factorization is the output of the decompose command.
type Factorization struct {
	N      int         `yaml:"n"`
	L      [][]float64 `yaml:"l,flow"`
	Det    float64     `yaml:"det"`
	LogDet float64     `yaml:"logdet"`
}

// Solution is the output of the solve command. Exactly one of X and XVec is set.
type Solution struct {
	X        [][]float64 `yaml:"x,omitempty,flow"`
	XVec     []float64   `yaml:"x_vec,omitempty,flow"`
	Residual *float64    `yaml:"residual,omitempty"`
}

// Inverse is the output of the inverse command.
type Inverse struct {
	N   int         `yaml:"n"`
	Inv [][]float64 `yaml:"inverse,flow"`
}

// NewSolution packs x, flattening it when the right-hand side was a vector.
func NewSolution(x *matrix.Dense, vector bool) Solution {
	if vector {
		v := make([]float64, x.Rows())
		copy(v, x.Data())

		return Solution{XVec: v}
	}

	return Solution{X: x.ToRows()}
}

// Encode writes v as a YAML document with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("spdio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("spdio: encode: %w", err)
	}

	return nil
}
