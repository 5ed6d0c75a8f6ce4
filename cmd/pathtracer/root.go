package main

import (
	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	configPath string
	logger     core.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pathtracer",
	Short: "Interactive progressive Monte Carlo path tracer",
	Long: `pathtracer renders a small scene of analytic primitives lit by an
environment map and emissive objects, presenting the progressively
refined image in a window at interactive rates. Camera motion restarts
sampling.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (optional)")
}
