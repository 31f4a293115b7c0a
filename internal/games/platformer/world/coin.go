package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Coin oscillation constants.
const (
	coinSpringSpeed = 8
	coinSpringDist  = 0.07
)

// Coin is the collectible. It bobs vertically around an anchor and ignores
// the obstacle grid.
type Coin struct {
	Body
	anchor      core.Vector
	spring      float64
	springSpeed float64
	springDist  float64
}

// NewCoin creates a coin for the spawn cell at pos. The initial phase is drawn
// from rng, or from the global source when rng is nil.
func NewCoin(pos core.Vector, rng *rand.Rand) *Coin {
	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}
	// The phase range is [0, π): 2π - π is kept as is.
	return NewCoinWithPhase(pos, random()*(2*math.Pi-math.Pi))
}

// NewCoinWithPhase creates a coin with a fixed initial oscillation phase.
func NewCoinWithPhase(pos core.Vector, phase float64) *Coin {
	moved := pos.Plus(core.V(0.2, 0.1))
	return &Coin{
		Body: Body{
			Pos:  moved,
			Size: core.V(0.6, 0.6),
		},
		anchor:      moved,
		spring:      phase,
		springSpeed: coinSpringSpeed,
		springDist:  coinSpringDist,
	}
}

func (c *Coin) Kind() Kind  { return KindCoin }
func (c *Coin) isNil() bool { return c == nil }

// Anchor returns the rest position the coin oscillates around.
func (c *Coin) Anchor() core.Vector {
	return c.anchor
}

// Phase returns the current oscillation phase.
func (c *Coin) Phase() float64 {
	return c.spring
}

// UpdateSpring advances the oscillation phase by dt seconds.
func (c *Coin) UpdateSpring(dt float64) {
	c.spring += c.springSpeed * dt
}

// SpringVector returns the current vertical offset from the anchor.
func (c *Coin) SpringVector() core.Vector {
	return core.V(0, math.Sin(c.spring)*c.springDist)
}

// NextPosition advances the phase and returns the new position.
func (c *Coin) NextPosition(dt float64) core.Vector {
	c.UpdateSpring(dt)
	return c.anchor.Plus(c.SpringVector())
}

// Act moves the coin along its oscillation.
func (c *Coin) Act(dt float64, _ *Level) {
	c.Pos = c.NextPosition(dt)
}
