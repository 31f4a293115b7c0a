package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagWatch  bool
	flagSelect bool
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the campaign",
	Long: `Play the campaign from the first level, or from the given level.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  R           - Restart (after game over or victory)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, hazards speed up slowly through the campaign
  normal - 3 lives, hazards start at 30% of the speed-up
  hard   - 2 lives, hazards start at 70% of the speed-up
  fixed  - No speed-up

Examples:
  platformer play
  platformer play lvl02
  platformer play --select
  platformer play --levels ./levels --watch
  platformer play --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the starting level from a menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagWatch && flagLevels == "" {
		return fmt.Errorf("--watch needs --levels")
	}

	// Log to a file: the terminal belongs to the game
	logPath := logFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "play")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	campaign, err := loadCampaign(cmd.Context())
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	startID := ""
	if len(args) == 1 {
		startID = args[0]
	}
	if flagSelect && startID == "" {
		id, ok, menuErr := tui.RunMenu(campaign, width, height)
		if menuErr != nil {
			return menuErr
		}
		if !ok {
			return nil
		}
		startID = id
	}

	game, err := platformer.New(campaign, cfg, platformer.Options{
		Logger:     logger,
		StartLevel: startID,
	})
	if err != nil {
		return err
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{Logger: logger}

	if flagWatch {
		watcher, err := levels.NewWatcher(flagLevels, logger.WithPrefix("watch"))
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", flagLevels, err)
		}
		defer watcher.Close()

		loader := levels.NewLoader(flagLevels)
		opts.Watch = &tui.Watch{
			Events: watcher.Events,
			Reload: func(string) error {
				return reloadCampaign(game, loader, cfg)
			},
		}
	}

	logger.Info("starting", "levels", len(campaign), "start", startID, "fps", flagFPS)
	return tui.Run(game, runtime, opts)
}

// reloadCampaign loads the directory again and swaps the campaign in. The
// old campaign stays if any level fails validation.
func reloadCampaign(game *platformer.Game, loader *levels.Loader, cfg config.PlatformerConfig) error {
	campaign, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if len(campaign) == 0 {
		return fmt.Errorf("no levels left in %s", loader.Root)
	}

	dict, err := registry.Dictionary(cfg.Symbols)
	if err != nil {
		return err
	}
	parser := world.NewParser(dict, nil)
	for _, lvl := range campaign {
		if err := levels.Validate(lvl, parser); err != nil {
			return err
		}
	}
	return game.Reload(campaign)
}
