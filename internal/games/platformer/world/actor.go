// Package world implements the platformer simulation: actors, the level
// state machine and the parser that turns a textual plan into a level.
// It has no dependencies beyond internal/core and never logs.
package world

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Kind tags the concrete variant of an actor.
type Kind int

const (
	KindActor Kind = iota
	KindPlayer
	KindFireball
	KindCoin
	kindCount
)

// String returns the name used in plans, config and touch resolution.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindPlayer:
		return "player"
	case KindFireball:
		return "fireball"
	case KindCoin:
		return "coin"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindActor && k < kindCount
}

// Actor is a simulated rectangle with a per-step update rule.
// Implementations embed Body, which supplies the Bounds method.
type Actor interface {
	Bounds() *Body
	Kind() Kind
	Act(dt float64, lvl *Level)
}

// Body holds the rectangle and velocity shared by every actor.
type Body struct {
	Pos   core.Vector
	Size  core.Vector
	Speed core.Vector
}

// Bounds returns b itself so that embedding types satisfy Actor.
func (b *Body) Bounds() *Body {
	return b
}

func (b *Body) Left() float64   { return b.Pos.X }
func (b *Body) Top() float64    { return b.Pos.Y }
func (b *Body) Right() float64  { return b.Pos.X + b.Size.X }
func (b *Body) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// IsIntersect reports whether other overlaps b. Rectangles that only share an
// edge do not intersect, and a body never intersects itself.
func (b *Body) IsIntersect(other Actor) (bool, error) {
	if err := checkActor(other); err != nil {
		return false, err
	}
	o := other.Bounds()
	if o == b {
		return false, nil
	}

	horizontal := o.Right() > b.Left() && o.Left() < b.Right()
	vertical := o.Bottom() > b.Top() && o.Top() < b.Bottom()
	return horizontal && vertical, nil
}

// checkActor validates an actor received across a trust boundary.
func checkActor(a Actor) error {
	if absent(a) {
		return ErrMissingArgument
	}
	return checkCapability(a)
}

// nilable is implemented by the actor variants so that a typed nil pointer
// can be told apart from a real actor without reflection.
type nilable interface {
	isNil() bool
}

// absent reports whether a is nil or a nil pointer to a known variant.
func absent(a Actor) bool {
	if a == nil {
		return true
	}
	n, ok := a.(nilable)
	return ok && n.isNil()
}

func checkCapability(a Actor) error {
	if a.Bounds() == nil {
		return &TypeMismatchError{Got: fmt.Sprintf("%T", a), Want: "actor"}
	}
	if !a.Kind().Valid() {
		return &TypeMismatchError{Got: a.Kind().String(), Want: "actor"}
	}
	return nil
}

// Base is the plain actor with no behavior of its own.
type Base struct {
	Body
}

// NewActor creates a plain actor. Nil arguments are absent and take the
// defaults: position and speed (0,0), size (1,1).
func NewActor(pos, size, speed *core.Vector) *Base {
	return &Base{Body: Body{
		Pos:   core.OrDefault(pos, core.Zero),
		Size:  core.OrDefault(size, core.V(1, 1)),
		Speed: core.OrDefault(speed, core.Zero),
	}}
}

func (a *Base) Kind() Kind  { return KindActor }
func (a *Base) isNil() bool { return a == nil }

// Act does nothing for a plain actor.
func (a *Base) Act(float64, *Level) {}
