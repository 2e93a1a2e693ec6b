package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ebiten-korin/config"
	"ebiten-korin/engine"
	"ebiten-korin/systems"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Msg(eris.ToString(err, true))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		headless    bool
		duration    time.Duration
		profileMode string
	)

	cmd := &cobra.Command{
		Use:          "korin",
		Short:        "Run the korin entity-component-system sandbox",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("headless") {
				cfg.Headless = headless
			}

			stop, err := startProfile(profileMode)
			if err != nil {
				return err
			}
			defer stop()

			if cfg.Headless {
				return runHeadless(cmd.Context(), cfg, duration)
			}
			return runWindow(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "key=value config file, read before KORIN_* variables")
	cmd.Flags().BoolVar(&headless, "headless", false, "run the loop without a window")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop a headless run after this long (0 runs until interrupted)")
	cmd.Flags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the working directory")
	return cmd
}

func startProfile(mode string) (func(), error) {
	var p interface{ Stop() }
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil, eris.Errorf("unknown profile mode %q, want cpu or mem", mode)
	}
	return p.Stop, nil
}

func runHeadless(parent context.Context, cfg config.Config, duration time.Duration) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, duration)
		defer cancelTimeout()
	}

	e, err := engine.New(cfg, engine.WithInputSource(systems.KeySet{}))
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.Populate(); err != nil {
		return err
	}
	return e.Run(ctx)
}

func runWindow(cfg config.Config) error {
	game, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Korin")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil && !eris.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
