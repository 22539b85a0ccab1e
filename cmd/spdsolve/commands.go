// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/internal/config"
	"github.com/katalvlaran/spdsolve/internal/spdio"
	"github.com/katalvlaran/spdsolve/matrix"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	file         string
	backend      string
	symmetryTol  float64
	skipSymmetry bool
	logLevel     string
	workers      int
	check        bool
}

// run executes the CLI and maps the outcome to a process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "spdsolve:", err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spdsolve",
		Short: "Cholesky factorization of symmetric positive-definite systems",
		Long: `spdsolve factors A = L·Lᵗ for a symmetric positive-definite matrix A and
uses the factor to solve A·X = B or to form A⁻¹.

Defaults come from SPDSOLVE_* environment variables; flags override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "-", "problem file (YAML or JSON), - for stdin")
	pf.StringVar(&a.backend, "backend", "", "factorization backend: native or lapack")
	pf.Float64Var(&a.symmetryTol, "symmetry-tol", cholesky.DefaultSymmetryTol, "relative tolerance of the symmetry check")
	pf.BoolVar(&a.skipSymmetry, "skip-symmetry", false, "read only the lower triangle of A without checking symmetry")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(a.decomposeCmd(), a.solveCmd(), a.inverseCmd())

	return root
}

// setup loads the environment, applies explicit flags on top and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("symmetry-tol") {
		cfg.SymmetryTol = a.symmetryTol
	}
	if flags.Changed("skip-symmetry") {
		cfg.SkipSymmetry = a.skipSymmetry
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// load reads the problem file and factors its matrix. With needRHS a problem
// without b or rhs is rejected before any factorization work.
func (a *app) load(cmd *cobra.Command, needRHS bool) (*spdio.Problem, *matrix.Dense, *cholesky.Cholesky, error) {
	p, err := spdio.ReadFile(a.file, cmd.InOrStdin())
	if err != nil {
		return nil, nil, nil, err
	}
	if needRHS && !p.HasRHS() {
		return nil, nil, nil, spdio.ErrMissingRHS
	}
	m, err := p.Matrix()
	if err != nil {
		return nil, nil, nil, err
	}

	start := time.Now()
	opts := append(a.cfg.Options(), cholesky.WithLogger(a.logger))
	ch, err := cholesky.Decompose(m, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	a.logger.Info("factored",
		slog.Int("n", ch.N()),
		slog.String("backend", ch.Backend().String()),
		slog.Duration("elapsed", time.Since(start)))

	return p, m, ch, nil
}

func (a *app) decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Print the lower-triangular factor L, det(A) and log det(A)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, ch, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			l, err := ch.L()
			if err != nil {
				return err
			}
			det, err := ch.Det()
			if err != nil {
				return err
			}
			logDet, err := ch.LogDet()
			if err != nil {
				return err
			}

			return spdio.Encode(cmd.OutOrStdout(), spdio.Factorization{
				N:      ch.N(),
				L:      l.ToRows(),
				Det:    det,
				LogDet: logDet,
			})
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·X = B for the right-hand side b (matrix) or rhs (vector)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, m, ch, err := a.load(cmd, true)
			if err != nil {
				return err
			}
			x, err := p.RHSMatrix()
			if err != nil {
				return err
			}
			var b matrix.Matrix
			if a.check {
				b = x.Clone()
			}

			if a.cfg.Workers == 1 || x.Cols() == 1 {
				err = ch.Solve(x)
			} else {
				err = ch.SolveParallel(cmd.Context(), x, a.cfg.Workers)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("solved", slog.Int("columns", x.Cols()), slog.Int("workers", a.cfg.Workers))

			out := spdio.NewSolution(x, p.IsVector())
			if a.check {
				ax, err := matrix.Mul(m, x)
				if err != nil {
					return err
				}
				res, err := matrix.MaxAbsDiff(ax, b)
				if err != nil {
					return err
				}
				out.Residual = &res
			}

			return spdio.Encode(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&a.workers, "workers", 0, "goroutines for multi-column right-hand sides (0 = GOMAXPROCS, 1 = serial)")
	cmd.Flags().BoolVar(&a.check, "check", false, "also print the residual max|A·X − B|")

	return cmd
}

func (a *app) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Print A⁻¹",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, ch, err := a.load(cmd, false)
			if err != nil {
				return err
			}
			inv, err := ch.Inverse()
			if err != nil {
				return err
			}

			return spdio.Encode(cmd.OutOrStdout(), spdio.Inverse{N: ch.N(), Inv: inv.ToRows()})
		},
	}
}
