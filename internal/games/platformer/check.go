package platformer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Report is the result of checking one level headlessly.
type Report struct {
	LevelID  string
	Err      error   // Validation failure, nil if the level is playable
	Survived bool    // The idle player outlived the simulation
	Elapsed  float64 // Simulated seconds until the player died, or the full duration
	Actors   int
}

// String summarizes the report in one line.
func (r Report) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: invalid: %v", r.LevelID, r.Err)
	case !r.Survived:
		return fmt.Sprintf("%s: idle player dies after %.2fs", r.LevelID, r.Elapsed)
	default:
		return fmt.Sprintf("%s: ok (%d actors, %.0fs simulated)", r.LevelID, r.Actors, r.Elapsed)
	}
}

// Check validates lvl and then simulates it for the given number of seconds
// with an idle player. A player that dies without moving means a hazard
// reaches the spawn point.
func Check(lvl levels.Level, cfg config.PlatformerConfig, seconds float64, seed int64) Report {
	rep := Report{LevelID: lvl.ID}

	dict, err := registry.Dictionary(cfg.Symbols)
	if err != nil {
		rep.Err = err
		return rep
	}
	parser := world.NewParser(dict, rand.New(rand.NewSource(seed)))
	if err := levels.Validate(lvl, parser); err != nil {
		rep.Err = err
		return rep
	}

	g := &Game{
		campaign: []levels.Level{lvl},
		cfg:      cfg,
		level:    parser.Parse(lvl.Plan),
	}
	rep.Actors = len(g.level.Actors())

	step := cfg.Timing.MaxStep
	for rep.Elapsed < seconds {
		g.animate(step)
		rep.Elapsed += step
		if g.level.Status() == world.StatusLost {
			return rep
		}
	}
	rep.Survived = true
	return rep
}
