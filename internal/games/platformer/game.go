// Package platformer runs a campaign of levels: it sequences levels, moves
// the player from input, advances the actors and renders the world.
package platformer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ErrEmptyCampaign is returned when a game is created without levels.
var ErrEmptyCampaign = errors.New("platformer: campaign has no levels")

// directions lists the movement actions in hold-timer order.
var directions = [4]core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}

// Options configures a Game beyond its campaign and config.
type Options struct {
	Logger     *log.Logger // Defaults to log.Default()
	StartLevel string      // Level ID to start from; empty starts at the first level
}

// Game implements the platformer run-loop.
type Game struct {
	campaign   []levels.Level
	cfg        config.PlatformerConfig
	parser     *world.Parser
	dict       world.Dictionary
	difficulty *config.DifficultyManager
	logger     *log.Logger

	// Per-run state
	runtime    core.RuntimeConfig
	runID      string
	rng        *rand.Rand
	level      *world.Level
	startIndex int
	levelIndex int
	lives      int
	held       [4]float64 // Remaining hold time per direction
	tickCount  int
	paused     bool
	gameOver   bool
	won        bool
	message    string
}

// New creates a game for the given campaign. Reset must be called before
// the first Step.
func New(campaign []levels.Level, cfg config.PlatformerConfig, opts Options) (*Game, error) {
	if len(campaign) == 0 {
		return nil, ErrEmptyCampaign
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dict, err := registry.Dictionary(cfg.Symbols)
	if err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}

	g := &Game{
		campaign:   campaign,
		cfg:        cfg,
		dict:       dict,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     opts.Logger,
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	if opts.StartLevel != "" {
		_, idx, ok := levels.Find(campaign, opts.StartLevel)
		if !ok {
			return nil, fmt.Errorf("platformer: level not found: %s", opts.StartLevel)
		}
		g.startIndex = idx
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// RunID identifies the current run in logs. It changes on every Reset.
func (g *Game) RunID() string {
	return g.runID
}

// Level returns the level being simulated, or nil after a failed load.
func (g *Game) Level() *world.Level {
	return g.level
}

// Reset initializes or restarts the campaign.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.parser = world.NewParser(g.dict, g.rng)
	g.runID = uuid.NewString()

	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startIndex
	g.held = [4]float64{}
	g.tickCount = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.message = ""

	g.logger.Info("run started", "run", g.runID, "seed", seed, "levels", len(g.campaign))
	g.loadLevel()
}

// Reload swaps in a new campaign, keeping lives and restarting the current
// level. The current level is found by ID; if it is gone the index is kept
// within range.
func (g *Game) Reload(campaign []levels.Level) error {
	if len(campaign) == 0 {
		return ErrEmptyCampaign
	}

	currentID := ""
	if g.levelIndex < len(g.campaign) {
		currentID = g.campaign[g.levelIndex].ID
	}
	g.campaign = campaign
	if _, idx, ok := levels.Find(campaign, currentID); ok {
		g.levelIndex = idx
	} else {
		g.levelIndex = core.Clamp(g.levelIndex, 0, len(campaign)-1)
	}
	g.startIndex = core.Clamp(g.startIndex, 0, len(campaign)-1)

	g.logger.Info("campaign reloaded", "run", g.runID, "levels", len(campaign), "level", g.campaign[g.levelIndex].ID)
	if g.won {
		// A finished campaign stays finished.
		return nil
	}
	g.gameOver = false
	g.message = ""
	g.loadLevel()
	return nil
}

// loadLevel parses the current level. A level without a player ends the
// game instead of running an unplayable map.
func (g *Game) loadLevel() {
	def := g.campaign[g.levelIndex]
	lvl := g.parser.Parse(def.Plan)
	if lvl.Player() == nil {
		g.level = nil
		g.gameOver = true
		g.message = fmt.Sprintf("level %s has no player", def.ID)
		g.logger.Error("cannot load level", "run", g.runID, "level", def.ID, "err", g.message)
		return
	}
	lvl.FinishDelay = g.cfg.Timing.FinishDelay
	g.level = lvl
	g.held = [4]float64{}

	g.logger.Debug("level loaded",
		"run", g.runID,
		"level", def.ID,
		"size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
		"coins", lvl.Count(world.KindCoin),
		"time_scale", g.timeScale(),
	)
}

// timeScale is the difficulty multiplier for the current level.
func (g *Game) timeScale() float64 {
	return g.difficulty.TimeScale(g.levelIndex, len(g.campaign))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.TickSeconds()
	g.updateHeld(input, dt)
	g.Advance(dt * g.timeScale())

	return core.StepResult{State: g.State()}
}

// updateHeld refreshes the hold timers: terminals report key presses but
// not releases, so a press keeps its direction active for HoldTime.
func (g *Game) updateHeld(input core.InputFrame, dt float64) {
	hold := max(g.cfg.Player.HoldTime, dt)
	for i, a := range directions {
		if input.Has(a) {
			g.held[i] = hold
		} else {
			g.held[i] -= dt
		}
	}
}

// direction returns the movement requested by the active hold timers.
func (g *Game) direction() core.Vector {
	var frame core.InputFrame
	for i, a := range directions {
		if g.held[i] > 0 {
			frame.Set(a)
		}
	}
	return frame.Direction()
}

// Advance runs the simulation for dt seconds of game time in sub-steps no
// longer than the configured MaxStep, then resolves a finished level.
func (g *Game) Advance(dt float64) {
	if g.level == nil {
		return
	}
	for dt > 0 {
		step := min(dt, g.cfg.Timing.MaxStep)
		g.animate(step)
		dt -= step
	}
	if g.level.IsFinished() {
		g.finishLevel()
	}
}

// animate runs one sub-step. The player only moves and touches things while
// the level is undecided; the other actors keep going through the finish
// delay.
func (g *Game) animate(step float64) {
	lvl := g.level
	player := lvl.Player()
	playing := lvl.Status() == world.StatusPlaying

	if playing && player != nil {
		g.movePlayer(player.Bounds(), step)
	}

	for _, a := range lvl.Actors() {
		if a.Kind() != world.KindPlayer {
			a.Act(step, lvl)
		}
	}

	if lvl.Status() == world.StatusPlaying && player != nil {
		body := player.Bounds()
		if lvl.ObstacleAt(body.Pos, body.Size) == world.ObstacleLava {
			lvl.PlayerTouched(world.ObstacleLava.String(), nil)
		}
		if other, err := lvl.ActorAt(player); err == nil && other != nil {
			lvl.PlayerTouched(other.Kind().String(), other)
		}
	}

	if lvl.Status() != world.StatusPlaying {
		lvl.FinishDelay -= step
	}
}

// movePlayer moves the player one axis at a time. Walls stop the move on
// that axis; lava ends the level.
func (g *Game) movePlayer(body *world.Body, step float64) {
	body.Speed = g.direction().Times(g.cfg.Player.Speed)

	for _, delta := range []core.Vector{
		core.V(body.Speed.X*step, 0),
		core.V(0, body.Speed.Y*step),
	} {
		if delta == core.Zero {
			continue
		}
		next := body.Pos.Plus(delta)
		switch g.level.ObstacleAt(next, body.Size) {
		case world.ObstacleNone:
			body.Pos = next
		case world.ObstacleLava:
			body.Pos = next
			g.level.PlayerTouched(world.ObstacleLava.String(), nil)
			return
		}
	}
}

// finishLevel advances the campaign after a won level or spends a life
// after a lost one.
func (g *Game) finishLevel() {
	def := g.campaign[g.levelIndex]
	switch g.level.Status() {
	case world.StatusWon:
		g.logger.Info("level won", "run", g.runID, "level", def.ID, "lives", g.lives)
		g.levelIndex++
		if g.levelIndex >= len(g.campaign) {
			g.levelIndex = len(g.campaign) - 1
			g.won = true
			g.message = "You win!"
			g.logger.Info("campaign complete", "run", g.runID, "ticks", g.tickCount)
			return
		}
	case world.StatusLost:
		g.lives--
		g.logger.Info("level lost", "run", g.runID, "level", def.ID, "lives", g.lives)
		if g.lives <= 0 {
			g.gameOver = true
			g.message = "Out of lives"
			g.logger.Info("game over", "run", g.runID, "level", def.ID, "ticks", g.tickCount)
			return
		}
	}
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		LevelIndex: g.levelIndex,
		LevelCount: len(g.campaign),
		LevelName:  g.campaign[g.levelIndex].Title(),
		Lives:      g.lives,
		GameOver:   g.gameOver,
		Won:        g.won,
		Paused:     g.paused,
		Message:    g.message,
	}
	if g.level != nil {
		st.CoinsLeft = g.level.Count(world.KindCoin)
	}
	return st
}
