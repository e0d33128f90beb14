package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/calafrios/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug   bool `help:"Enable debug logging."`
	Scene   int  `help:"Scene index to start in." default:"0"`
	Watch   bool `help:"Reload prefabs from disk when they change."`
	Monitor bool `help:"Use the base monitor instead of the primary one (multi-monitor setups)." short:"m"`
	TPS     int  `help:"Simulation ticks per second." default:"60"`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("calafrios"),
		kong.Description("a first-person walk through a dark house"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
	)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Monitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		} else {
			log.Warn().Msg("no monitors reported, using the default")
		}
	}
	if CLI.TPS > 0 {
		ebiten.SetTPS(CLI.TPS)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("calafrios")

	if err := run(); err != nil {
		log.Error().Err(err).Msg("calafrios exited")
		os.Exit(1)
	}
}

// run owns the game so its deferred Close runs before main exits.
func run() error {
	game, err := NewGame(GameOptions{
		Scene: CLI.Scene,
		Watch: CLI.Watch,
		Debug: CLI.Debug,
	})
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
