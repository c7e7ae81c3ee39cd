// Command cosmos renders an interactive solar system in the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cosmos/config"
)

// options holds CLI flags; only flags the user set override the config file
type options struct {
	configPath  string
	fps         int
	seed        uint64
	color       string
	debug       bool
	mute        bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "cosmos",
		Short:         "Terminal solar system visualization",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default cosmos.toml when present)")
	pf.Uint64Var(&opts.seed, "seed", 1, "seed for textures, starfield and belt")
	pf.BoolVar(&opts.debug, "debug", false, "write debug logs to the log file")

	f := root.Flags()
	f.IntVar(&opts.fps, "fps", 30, "frames per second")
	f.StringVar(&opts.color, "color", config.ColorAuto, "color mode: auto, truecolor, 256")
	f.BoolVar(&opts.mute, "mute", false, "disable sound cues")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics, /healthz and /ws on this address")

	run := &cobra.Command{
		Use:   "run",
		Short: "Start the visualization (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts)
		},
	}
	run.Flags().AddFlagSet(f)

	root.AddCommand(run, newTexturesCmd(opts), newCatalogCmd())
	return root
}

// loadConfig reads the config file and applies flags the user changed
func loadConfig(opts *options, changed func(string) bool) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if changed("fps") {
		cfg.Display.FPS = opts.fps
	}
	if changed("seed") {
		cfg.Simulation.Seed = opts.seed
	}
	if changed("color") {
		cfg.Display.Color = opts.color
	}
	if changed("mute") && opts.mute {
		cfg.Audio.Enabled = false
	}
	if changed("metrics-addr") {
		cfg.Telemetry.MetricsAddr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cosmos: %v\n", err)
		code := 1
		if errors.Is(err, config.ErrInvalid) {
			code = 2
		}
		os.Exit(code)
	}
}
