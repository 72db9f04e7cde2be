// Command go-life runs Conway's Game of Life on a bounded grid.
//
// Three front ends share one engine:
//  1. "terminal" (default): text frames redrawn in place, quit with q + Enter or Ctrl+C
//  2. "window": pixel window (requires building with -tags ebiten)
//  3. "serve": HTTP API and WebSocket frame stream
//
// Configuration is layered: defaults, config.json, GOL_* environment variables
// (optionally from .env) and finally command line flags.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	Version = "1.0.0"
	AppName = "go-life"

	defaultConfigFile = "config.json"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "Conway's Game of Life on a bounded grid",
		Version: Version,
		Flags:   globalFlags(),
		Action:  terminalAction,
		Commands: []*cli.Command{
			{
				Name:   "terminal",
				Usage:  "render text frames in the terminal",
				Action: terminalAction,
			},
			{
				Name:  "window",
				Usage: "render pixels in a window (build with -tags ebiten)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := loadConfig(cmd, utils.WindowConfig())
					if err != nil {
						return err
					}
					return runWindow(ctx, config)
				},
			},
			{
				Name:  "serve",
				Usage: "serve frames over HTTP and WebSocket",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := loadConfig(cmd, utils.DefaultConfig())
					if err != nil {
						return err
					}
					return runServe(ctx, config)
				},
			},
		},
	}
}

// globalFlags are shared by every subcommand
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: defaultConfigFile, Usage: "JSON configuration file"},
		&cli.IntFlag{Name: "width", Usage: "grid columns"},
		&cli.IntFlag{Name: "height", Usage: "grid rows"},
		&cli.FloatFlag{Name: "alive-probability", Usage: "probability a cell starts alive, in [0, 1)"},
		&cli.DurationFlag{Name: "frame-rate", Usage: "time between generations"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for time based"},
		&cli.IntFlag{Name: "max-generations", Usage: "stop after this many generations, 0 for no limit"},
		&cli.BoolFlag{Name: "auto-restart", Usage: "refresh the world on extinction or stagnation"},
		&cli.BoolFlag{Name: "patterns", Usage: "seed gliders and blinkers on top of random cells"},
		&cli.IntFlag{Name: "scale", Usage: "pixels per cell for window and png output"},
		&cli.BoolFlag{Name: "debug", Usage: "log file and line numbers"},
	}
}

func terminalAction(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd, utils.DefaultConfig())
	if err != nil {
		return err
	}
	return runTerminal(ctx, config, os.Stdin, os.Stdout)
}

// loadConfig layers the config file, environment and explicitly set flags over base
func loadConfig(cmd *cli.Command, base utils.Config) (utils.Config, error) {
	config := base

	path := cmd.String("config")
	loaded, err := utils.LoadConfig(path, config)
	switch {
	case err == nil:
		config = loaded
	case cmd.IsSet("config") || !os.IsNotExist(errors.Cause(err)):
		return config, err
	default:
		log.Printf("Using default configuration (%s not found)", path)
	}

	if err := config.ApplyEnv(); err != nil {
		return config, err
	}

	if cmd.IsSet("width") {
		config.Width = cmd.Int("width")
	}
	if cmd.IsSet("height") {
		config.Height = cmd.Int("height")
	}
	if cmd.IsSet("alive-probability") {
		config.AliveProbability = cmd.Float("alive-probability")
	}
	if cmd.IsSet("frame-rate") {
		config.FrameRate = cmd.Duration("frame-rate")
	}
	if cmd.IsSet("seed") {
		config.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("max-generations") {
		config.MaxGenerations = cmd.Int("max-generations")
	}
	if cmd.IsSet("auto-restart") {
		config.AutoRestart = cmd.Bool("auto-restart")
	}
	if cmd.IsSet("patterns") {
		config.Patterns = cmd.Bool("patterns")
	}
	if cmd.IsSet("scale") {
		config.Scale = cmd.Int("scale")
	}
	if cmd.IsSet("addr") {
		config.Addr = cmd.String("addr")
	}
	if cmd.IsSet("debug") {
		config.Debug = cmd.Bool("debug")
	}

	if config.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	return config, config.Validate()
}
