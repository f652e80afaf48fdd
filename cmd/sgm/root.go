// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/geomlib/registry"
	"github.com/katalvlaran/geomlib/shape"
)

// app holds the flag values and the per-invocation dependencies shared by
// every subcommand.
type app struct {
	// Global flags
	verbose   bool
	jsonOut   bool
	metrics   bool
	tolerance float64

	root   *cobra.Command
	logger *zap.Logger
	prom   *prometheus.Registry
	reg    *registry.Registry
}

func newApp() *app {
	a := &app{}

	root := &cobra.Command{
		Use:   "sgm",
		Short: "Build, inspect, sort and edit geometric shapes",
		Long: `sgm works with rectangles, circles and triangles.

Shapes are created by kind name and parameters:
  rectangle  width height
  circle     radius
  triangle   sideA sideB sideC

Where several shapes are given at once they are written as literals,
e.g. rectangle:10,5 circle:7 triangle:3,4,5.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.jsonOut, "json", false, "write JSON instead of text")
	pf.BoolVar(&a.metrics, "metrics", false, "print registry counters after the command")
	pf.Float64Var(&a.tolerance, "tolerance", shape.DefaultRightAngleTolerance,
		"tolerance of the right-angle check for triangle subtypes")

	root.AddCommand(
		a.kindsCmd(),
		a.infoCmd(),
		a.sortCmd(),
		a.editCmd(),
		a.batchCmd(),
	)
	a.root = root

	return a
}

// Execute runs the command tree, then prints counters and flushes the
// logger. Teardown also runs when the command failed: cobra skips
// PersistentPostRun hooks on error.
func (a *app) Execute() error {
	err := a.root.Execute()
	if terr := a.teardown(a.root.OutOrStdout()); terr != nil {
		a.root.PrintErrln("Error:", terr)
		err = errors.Join(err, terr)
	}

	return err
}

// setup builds the logger, metrics and registry for one invocation.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.tolerance < 0 || math.IsNaN(a.tolerance) || math.IsInf(a.tolerance, 0) {
		return fmt.Errorf("--tolerance must be a finite value >= 0, got %v", a.tolerance)
	}

	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	a.prom = prometheus.NewRegistry()
	a.reg = registry.NewWithBuiltins(
		registry.WithLogger(a.logger),
		registry.WithMetrics(registry.NewMetrics(a.prom)),
		registry.WithShapeOptions(shape.WithRightAngleTolerance(a.tolerance)),
	)

	return nil
}

// teardown prints counters when asked and flushes the logger. It is a
// no-op for the parts setup never reached.
func (a *app) teardown(out io.Writer) error {
	var err error
	if a.metrics && a.prom != nil {
		err = a.writeMetrics(out)
	}
	if a.logger != nil {
		// Sync on stderr reports EINVAL on some platforms; nothing to act on.
		_ = a.logger.Sync()
	}

	return err
}

func (a *app) writeMetrics(out io.Writer) error {
	families, err := a.prom.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
