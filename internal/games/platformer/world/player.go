package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the controllable actor. Its spawn symbol marks the feet, so the
// body is lifted half a tile above the spawn cell.
type Player struct {
	Body
}

// NewPlayer creates a player spawned at pos.
func NewPlayer(pos core.Vector) *Player {
	return &Player{Body: Body{
		Pos:  pos.Plus(core.V(0, -0.5)),
		Size: core.V(0.8, 1.5),
	}}
}

func (p *Player) Kind() Kind  { return KindPlayer }
func (p *Player) isNil() bool { return p == nil }

// Act does nothing: the run-loop moves the player from input.
func (p *Player) Act(float64, *Level) {}
