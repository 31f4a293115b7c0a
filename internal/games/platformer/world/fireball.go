package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Fireball is a hazard moving at constant speed that bounces off obstacles.
type Fireball struct {
	Body
}

// NewFireball creates a unit-sized fireball.
func NewFireball(pos, speed core.Vector) *Fireball {
	return &Fireball{Body: Body{
		Pos:   pos,
		Size:  core.V(1, 1),
		Speed: speed,
	}}
}

// NewHorizontalFireball creates a fireball patrolling left and right.
func NewHorizontalFireball(pos core.Vector) *Fireball {
	return NewFireball(pos, core.V(2, 0))
}

// NewVerticalFireball creates a fireball patrolling up and down.
func NewVerticalFireball(pos core.Vector) *Fireball {
	return NewFireball(pos, core.V(0, 2))
}

func (f *Fireball) Kind() Kind  { return KindFireball }
func (f *Fireball) isNil() bool { return f == nil }

// NextPosition returns where the fireball would be after dt seconds.
func (f *Fireball) NextPosition(dt float64) core.Vector {
	return f.Pos.Plus(f.Speed.Times(dt))
}

// HandleObstacle reverses the velocity.
func (f *Fireball) HandleObstacle() {
	f.Speed = f.Speed.Times(-1)
}

// Act moves the fireball unless the next position is blocked.
func (f *Fireball) Act(dt float64, lvl *Level) {
	f.advance(dt, lvl, f.HandleObstacle)
}

func (f *Fireball) advance(dt float64, lvl *Level, onObstacle func()) {
	next := f.NextPosition(dt)
	if lvl.ObstacleAt(next, f.Size) == ObstacleNone {
		f.Pos = next
		return
	}
	onObstacle()
}

// FireRain is a falling fireball that restarts from its spawn point when it
// hits something.
type FireRain struct {
	Fireball
	origin core.Vector
}

// NewFireRain creates fire rain dropping from pos.
func NewFireRain(pos core.Vector) *FireRain {
	return &FireRain{
		Fireball: *NewFireball(pos, core.V(0, 3)),
		origin:   pos,
	}
}

func (r *FireRain) isNil() bool { return r == nil }

// Origin returns the spawn position the rain returns to.
func (r *FireRain) Origin() core.Vector {
	return r.origin
}

// HandleObstacle teleports the rain back to its origin, keeping its speed.
func (r *FireRain) HandleObstacle() {
	r.Pos = r.origin
}

// Act moves the rain down until it hits something.
func (r *FireRain) Act(dt float64, lvl *Level) {
	r.advance(dt, lvl, r.HandleObstacle)
}
