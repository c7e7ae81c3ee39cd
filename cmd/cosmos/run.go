package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/cosmos/config"
	"github.com/lixenwraith/cosmos/core"
	"github.com/lixenwraith/cosmos/render"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// applyColorMode steers tcell's capability detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func runCommand(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts, cmd.Flags().Changed)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, closer, err := setupLogging(cfg.Log.Enabled, opts.debug, cfg.Log.Path)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	applyColorMode(cfg.Display.Color)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetRestoreHook(screen.Fini)
	defer core.SetRestoreHook(nil)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(render.RgbSpace)))
	logger.Info("terminal ready", "colors", screen.Colors(), "color_mode", cfg.Display.Color)

	a, err := newApp(cfg, screen, logger, nil)
	if err != nil {
		return err
	}
	a.startServices()
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() { pollEvents(screen, events, ctx.Done()) })
	return a.run(ctx, events)
}
