package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/light-tricks/internal/config"
	"github.com/iburimskiy/light-tricks/internal/game"
	"github.com/iburimskiy/light-tricks/internal/sound"
)

func main() {
	configPath := flag.String("config", "", "path to a .yaml, .json or .toml screen config (default: built-in)")
	pick := flag.Bool("pick-config", false, "choose the config file in a dialog")
	mute := flag.Bool("mute", false, "disable sound cues")
	verbose := flag.Bool("verbose", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, *configPath, *pick, *mute); err != nil {
		logger.Error("light-tricks stopped", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, pick, mute bool) error {
	if pick {
		chosen, err := pickConfig()
		if err != nil {
			return err
		}
		if chosen != "" {
			path = chosen
		}
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", sourceName(path), "buttons", len(cfg.Buttons))

	audio := cfg.Audio
	if mute {
		audio.Enabled = false
	}
	player := sound.NewPlayer(audio, logger)
	defer player.Close()

	g, err := game.New(cfg, game.Options{Audio: player, Logger: logger})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// pickConfig returns "" when the dialog is dismissed.
func pickConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Screen Config"),
		zenity.FileFilters{{
			Name:     "Config",
			Patterns: []string{"*.yaml", "*.yml", "*.json", "*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open file dialog: %w", err)
	}
	return filename, nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
