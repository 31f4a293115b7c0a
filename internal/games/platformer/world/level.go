package world

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Status is the outcome of a level.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns "won", "lost", or an empty string while playing.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return ""
	}
}

// DefaultFinishDelay is the time in seconds the level keeps running after
// the outcome is decided.
const DefaultFinishDelay = 1.0

// ActorID is a stable handle to an actor stored in a Level.
// The zero value refers to no actor.
type ActorID int

type entry struct {
	id    ActorID
	actor Actor
}

// Level is the mutable simulation state of one map.
type Level struct {
	// Grid holds the static obstacles, row by row. Rows may be shorter than
	// Width; missing cells are empty.
	Grid   [][]Obstacle
	Height int
	Width  int

	// FinishDelay is decremented by the run-loop once the status is decided.
	FinishDelay float64

	actors []entry
	nextID ActorID
	player ActorID
	status Status
}

// NewLevel creates a level from a grid and the actors placed on it.
// The first player-kind actor becomes the level's player. The player handle
// is resolved once here and never reassigned.
func NewLevel(grid [][]Obstacle, actors []Actor) *Level {
	l := &Level{
		Grid:        grid,
		Height:      len(grid),
		FinishDelay: DefaultFinishDelay,
		actors:      make([]entry, 0, len(actors)),
	}
	for _, row := range grid {
		l.Width = max(l.Width, len(row))
	}
	for _, a := range actors {
		id := l.AddActor(a)
		if l.player == 0 && id != 0 && a.Kind() == KindPlayer {
			l.player = id
		}
	}
	return l
}

// AddActor appends an actor and returns its handle. Nil actors and values
// failing the actor capability check are ignored and get the zero handle.
func (l *Level) AddActor(a Actor) ActorID {
	if checkActor(a) != nil {
		return 0
	}
	l.nextID++
	l.actors = append(l.actors, entry{id: l.nextID, actor: a})
	return l.nextID
}

// Actors returns a snapshot of the actors in order. Removing actors while
// iterating the snapshot is safe.
func (l *Level) Actors() []Actor {
	out := make([]Actor, len(l.actors))
	for i, e := range l.actors {
		out[i] = e.actor
	}
	return out
}

// Lookup returns the actor behind a handle, or nil once it has been removed.
func (l *Level) Lookup(id ActorID) Actor {
	for _, e := range l.actors {
		if e.id == id {
			return e.actor
		}
	}
	return nil
}

// Player returns the level's player, or nil if the level has none or the
// player actor was removed.
func (l *Level) Player() Actor {
	if l.player == 0 {
		return nil
	}
	return l.Lookup(l.player)
}

// Status returns the current outcome.
func (l *Level) Status() Status {
	return l.status
}

// IsFinished reports whether the outcome is decided and the finish delay has
// run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusPlaying && l.FinishDelay < 0
}

// ActorAt returns the first actor, in list order, that intersects a.
func (l *Level) ActorAt(a Actor) (Actor, error) {
	if err := checkActor(a); err != nil {
		return nil, err
	}
	for _, e := range l.actors {
		hit, err := e.actor.Bounds().IsIntersect(a)
		if err != nil {
			return nil, err
		}
		if hit {
			return e.actor, nil
		}
	}
	return nil, nil
}

// ObstacleAt returns the obstacle touched by the rectangle at pos with the
// given size. Anything below the map is lava; anything past the other edges
// is wall.
func (l *Level) ObstacleAt(pos, size core.Vector) Obstacle {
	left := pos.X
	top := pos.Y
	right := pos.X + size.X
	bottom := pos.Y + size.Y

	if bottom > float64(l.Height) {
		return ObstacleLava
	}
	if left < 0 || right > float64(l.Width) || top < 0 {
		return ObstacleWall
	}

	// Upper bounds stay real so an edge on an integer boundary does not pull
	// in the next cell.
	for x := int(math.Floor(left)); float64(x) < right; x++ {
		for y := int(math.Floor(top)); float64(y) < bottom; y++ {
			if o := l.cell(x, y); o != ObstacleNone {
				return o
			}
		}
	}
	return ObstacleNone
}

func (l *Level) cell(x, y int) Obstacle {
	if y < 0 || y >= len(l.Grid) {
		return ObstacleNone
	}
	row := l.Grid[y]
	if x < 0 || x >= len(row) {
		return ObstacleNone
	}
	return row[x]
}

// RemoveActor removes the first entry holding a. Removing a nil actor or one
// that is not present does nothing.
func (l *Level) RemoveActor(a Actor) error {
	if absent(a) {
		return nil
	}
	if err := checkCapability(a); err != nil {
		return err
	}
	target := a.Bounds()
	idx := slices.IndexFunc(l.actors, func(e entry) bool {
		return e.actor.Bounds() == target
	})
	if idx < 0 {
		return nil
	}
	l.actors = slices.Delete(l.actors, idx, idx+1)
	return nil
}

// NoMoreActors reports whether no actor of the given kinds remains.
// Without kinds it reports whether the level has no actors at all.
func (l *Level) NoMoreActors(kinds ...Kind) bool {
	if len(kinds) == 0 {
		return len(l.actors) == 0
	}
	for _, e := range l.actors {
		if slices.Contains(kinds, e.actor.Kind()) {
			return false
		}
	}
	return true
}

// Count returns the number of actors of kind k.
func (l *Level) Count(k Kind) int {
	n := 0
	for _, e := range l.actors {
		if e.actor.Kind() == k {
			n++
		}
	}
	return n
}

// PlayerTouched resolves the player touching something named what: an
// obstacle ("lava") or an actor kind ("fireball", "coin"). For coins, a is
// the coin that was touched.
func (l *Level) PlayerTouched(what string, a Actor) {
	switch what {
	case ObstacleLava.String(), KindFireball.String():
		l.status = StatusLost
	case KindCoin.String():
		if l.status != StatusPlaying {
			return
		}
		if checkActor(a) == nil {
			// Validated above, removal cannot fail.
			_ = l.RemoveActor(a)
		}
		if l.NoMoreActors(KindCoin) {
			l.status = StatusWon
		}
	}
}
