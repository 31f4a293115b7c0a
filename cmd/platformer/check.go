package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	flagCheckSeconds float64
	flagCheckJobs    int
	flagCheckStrict  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate and simulate every level headlessly",
	Long: `Validates every level of the selected campaign and simulates it with an
idle player. Levels that fail validation make the command fail. With
--strict, so do levels where a hazard reaches the player's spawn point.

Examples:
  platformer check
  platformer check --levels ./my-levels --seconds 30 --strict`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&flagCheckSeconds, "seconds", 10, "Simulated seconds per level")
	checkCmd.Flags().IntVar(&flagCheckJobs, "jobs", runtime.NumCPU(), "Levels checked in parallel")
	checkCmd.Flags().BoolVar(&flagCheckStrict, "strict", false, "Fail when an idle player dies")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, "check")
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

	reports := make([]platformer.Report, len(campaign))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(flagCheckJobs, 1))

	for i, lvl := range campaign {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := flagSeed + int64(i)
			reports[i] = platformer.Check(lvl, cfg, flagCheckSeconds, seed)
			logger.Debug("checked", "level", lvl.ID, "seed", seed, "survived", reports[i].Survived)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, rep := range reports {
		fmt.Println(rep)
		switch {
		case rep.Err != nil:
			failed++
			logger.Error("invalid level", "level", rep.LevelID, "err", rep.Err)
		case !rep.Survived:
			logger.Warn("hazard reaches spawn", "level", rep.LevelID, "after", rep.Elapsed)
			if flagCheckStrict {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(reports))
	}
	return nil
}
