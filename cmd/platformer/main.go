// platformer is a terminal platformer: collect every coin, avoid lava and
// fireballs.
//
// Usage:
//
//	platformer list              - List levels and actor kinds
//	platformer play [level-id]   - Play the campaign
//	platformer check             - Validate and simulate every level headlessly
//	platformer import <dir>      - Import a level directory into the library
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--levels <dir>      - Load levels from a directory instead of the built-in pack
//	--db <path>         - Level library path (default: ~/.platformer/levels.db)
//	--pack <name>       - Load levels from a library pack
//	--config <path>     - Custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLevels     string
	flagDBPath     string
	flagPack       string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - collect coins in your terminal",
	Long: `Platformer is a terminal game: walk through each level, collect every
coin and stay away from lava and fireballs.

Available commands:
  list     - Show levels and actor kinds
  play     - Play the campaign
  check    - Validate and simulate levels without a terminal UI
  import   - Import a level directory into the level library

Examples:
  platformer play
  platformer play lvl03 --difficulty hard
  platformer play --levels ./my-levels --watch
  platformer import ./my-levels --name mine
  platformer play --pack mine`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/levels.db", "Path to the level library")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Play a pack from the level library")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// loadConfig loads the platformer config and applies --difficulty.
func loadConfig() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	config.ApplyPlatformerPreset(&cfg, preset)
	return cfg, nil
}

// openSource picks the campaign source from the flags: a library pack, a
// directory, or the built-in levels. The returned close function releases
// the library when one was opened.
func openSource() (levels.Source, func(), error) {
	switch {
	case flagPack != "":
		store, closeStore, err := openStore()
		if err != nil {
			return nil, nil, err
		}
		return store.Source(flagPack), closeStore, nil
	case flagLevels != "":
		return levels.NewLoader(flagLevels), func() {}, nil
	default:
		return levels.Builtin(), func() {}, nil
	}
}

// loadCampaign loads the levels selected by the flags.
func loadCampaign(ctx context.Context) ([]levels.Level, error) {
	src, closeSrc, err := openSource()
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	campaign, err := src.LoadLevels(ctx)
	if err != nil {
		return nil, err
	}
	if len(campaign) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return campaign, nil
}

// logFilePath is where play writes its log while the terminal is in use.
func logFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "platformer.log")
	}
	return filepath.Join(home, config.AppDir, "platformer.log")
}
