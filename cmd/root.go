// Package cmd is the thin CLI front end (spec.md §6): a single verb,
// `eppic <config_path>`, that loads and validates a configuration file,
// sizes the Yee lattice, runs the simulation to its configured end time,
// and exits non-zero with one diagnostic line on failure. Grounded on the
// teacher's cmd/1D.go / cmd/2D.go cobra.Command registration idiom
// (flags bound in init(), a Run closure building and invoking a model
// object), collapsed to the one verb this spec calls for.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/eppic/internal/applog"
	"github.com/notargets/eppic/internal/config"
	"github.com/notargets/eppic/internal/dump"
	"github.com/notargets/eppic/internal/fdtd"
	"github.com/notargets/eppic/internal/grid"
	"github.com/notargets/eppic/internal/physical"
	"github.com/notargets/eppic/internal/runid"
	"github.com/notargets/eppic/internal/sim"
)

var (
	outDir     string
	profileRun bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "eppic <config-path>",
	Short: "Three-dimensional FDTD electromagnetic field solver",
	Long: `
eppic evolves the coupled Maxwell curl equations on a staggered Yee
lattice from time zero to a configured end time, periodically persisting
the electric and magnetic fields to an HDF5 archive.

eppic <config-path>`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return run(args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory; results are written to <out>/out/<id>")
	rootCmd.Flags().BoolVar(&profileRun, "profile", false, "capture a CPU profile of the simulation run")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo diagnostics to stderr in addition to log/log.log")
}

// Execute runs the root command; main.go's sole responsibility is to
// call this and translate a non-nil error into a non-zero exit code with
// a single diagnostic line (spec.md §6, §7).
func Execute() error {
	return rootCmd.Execute()
}

func run(configPath string) error {
	id := runid.New(time.Now())
	layout, err := runid.Prepare(outDir, id)
	if err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}

	logFile, err := os.Create(layout.LogLog)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	minLevel := applog.LevelInfo
	var logOut io.Writer = logFile
	if verbose {
		minLevel = applog.LevelDebug
		logOut = io.MultiWriter(logFile, os.Stderr)
	}
	log := applog.New(logOut, minLevel)

	if profileRun {
		stop := profile.Start(profile.CPUProfile, profile.ProfilePath(layout.Root))
		defer stop.Stop()
	}

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		log.Error("config error: %v", err)
		return err
	}
	log.Info("run id %s\n%s", id, cfg.Dump())

	lattice, err := grid.Size(cfg.GridInputs())
	if err != nil {
		log.Error("grid error: %v", err)
		return err
	}
	log.Info("lattice: nv_h=%v nv_e=%v d=%v", lattice.NvH, lattice.NvE, lattice.D)

	ep := cfg.EpR * physical.Eps0
	mu := cfg.MuR * physical.Mu0
	engine, err := fdtd.New(lattice, ep, mu, cfg.Sigma)
	if err != nil {
		log.Error("alloc error: %v", err)
		return err
	}

	sink, err := dump.NewHDF5Sink(layout.DataH5)
	if err != nil {
		log.Error("io error: %v", err)
		return err
	}

	controller := sim.New(engine, sink, cfg.EpR, cfg.MuR, cfg.DSRatio, cfg.LogPeriod, cfg.NumSnapshots, log)

	if err := controller.AdvanceTo(cfg.EndTime); err != nil {
		log.Error("io error: %v", err)
		return err
	}

	log.Info("run complete: id=%s output=%s", id, layout.Root)
	return nil
}
