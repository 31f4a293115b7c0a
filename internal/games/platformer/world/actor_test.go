package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// phantom claims to be an actor but has no body.
type phantom struct{}

func (phantom) Bounds() *Body       { return nil }
func (phantom) Kind() Kind          { return KindActor }
func (phantom) Act(float64, *Level) {}

// mislabeled has a body but an unknown kind.
type mislabeled struct{ Body }

func (m *mislabeled) Kind() Kind          { return Kind(42) }
func (m *mislabeled) Act(float64, *Level) {}

func vp(x, y float64) *core.Vector {
	v := core.V(x, y)
	return &v
}

func TestNewActorDefaults(t *testing.T) {
	a := NewActor(nil, nil, nil)

	if a.Pos != core.Zero {
		t.Errorf("Pos = %v, expected (0, 0)", a.Pos)
	}
	if a.Size != core.V(1, 1) {
		t.Errorf("Size = %v, expected (1, 1)", a.Size)
	}
	if a.Speed != core.Zero {
		t.Errorf("Speed = %v, expected (0, 0)", a.Speed)
	}
	if a.Kind() != KindActor || a.Kind().String() != "actor" {
		t.Errorf("Kind() = %v, expected actor", a.Kind())
	}
}

func TestNewActorExplicit(t *testing.T) {
	a := NewActor(vp(1, 2), vp(3, 4), vp(5, 6))

	if a.Left() != 1 || a.Top() != 2 || a.Right() != 4 || a.Bottom() != 6 {
		t.Errorf("edges = %v %v %v %v, expected 1 2 4 6", a.Left(), a.Top(), a.Right(), a.Bottom())
	}
	if a.Speed != core.V(5, 6) {
		t.Errorf("Speed = %v", a.Speed)
	}
}

func TestIsIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Base
		expected bool
	}{
		{
			name:     "edge touching horizontally",
			a:        NewActor(vp(0, 0), nil, nil),
			b:        NewActor(vp(1, 0), nil, nil),
			expected: false,
		},
		{
			name:     "edge touching vertically",
			a:        NewActor(vp(0, 0), nil, nil),
			b:        NewActor(vp(0, 1), nil, nil),
			expected: false,
		},
		{
			name:     "half overlap",
			a:        NewActor(vp(0, 0), nil, nil),
			b:        NewActor(vp(0.5, 0), nil, nil),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewActor(vp(0, 0), vp(5, 5), nil),
			b:        NewActor(vp(1, 1), nil, nil),
			expected: true,
		},
		{
			name:     "same position different instance",
			a:        NewActor(vp(2, 2), nil, nil),
			b:        NewActor(vp(2, 2), nil, nil),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewActor(vp(0, 0), nil, nil),
			b:        NewActor(vp(10, 10), nil, nil),
			expected: false,
		},
		{
			name:     "corner overlap",
			a:        NewActor(vp(0, 0), nil, nil),
			b:        NewActor(vp(0.9, 0.9), nil, nil),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.a.IsIntersect(tc.b)
			if err != nil {
				t.Fatalf("IsIntersect() error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("IsIntersect() = %v, expected %v", result, tc.expected)
			}
			reverse, _ := tc.b.IsIntersect(tc.a)
			if reverse != tc.expected {
				t.Errorf("IsIntersect() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestIsIntersectSelf(t *testing.T) {
	actors := []Actor{
		NewActor(nil, nil, nil),
		NewPlayer(core.V(3, 3)),
		NewHorizontalFireball(core.V(1, 1)),
		NewFireRain(core.V(1, 1)),
		NewCoinWithPhase(core.V(0, 0), 0),
	}

	for _, a := range actors {
		hit, err := a.Bounds().IsIntersect(a)
		if err != nil {
			t.Fatalf("%s: IsIntersect(self) error: %v", a.Kind(), err)
		}
		if hit {
			t.Errorf("%s intersects itself", a.Kind())
		}
	}
}

func TestIsIntersectMissingArgument(t *testing.T) {
	a := NewActor(nil, nil, nil)

	absentActors := []Actor{
		nil,
		(*Base)(nil),
		(*Player)(nil),
		(*Coin)(nil),
		(*Fireball)(nil),
		(*FireRain)(nil),
	}
	for _, other := range absentActors {
		hit, err := a.IsIntersect(other)
		if !errors.Is(err, ErrMissingArgument) {
			t.Errorf("IsIntersect(%T) error = %v, expected ErrMissingArgument", other, err)
		}
		if hit {
			t.Errorf("IsIntersect(%T) = true, expected false", other)
		}
	}
}

func TestIsIntersectTypeMismatch(t *testing.T) {
	a := NewActor(nil, nil, nil)

	for _, bad := range []Actor{phantom{}, &mislabeled{}} {
		_, err := a.IsIntersect(bad)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("IsIntersect(%T) error = %v, expected ErrTypeMismatch", bad, err)
		}
		var tm *TypeMismatchError
		if !errors.As(err, &tm) || tm.Want != "actor" {
			t.Errorf("IsIntersect(%T) error = %#v, expected *TypeMismatchError", bad, err)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindActor, "actor"},
		{KindPlayer, "player"},
		{KindFireball, "fireball"},
		{KindCoin, "coin"},
		{Kind(7), "kind(7)"},
	}

	for _, tc := range tests {
		if tc.kind.String() != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", int(tc.kind), tc.kind.String(), tc.expected)
		}
	}
	if Kind(7).Valid() || Kind(-1).Valid() {
		t.Error("out of range kinds reported valid")
	}
}

func TestPlayerSpawn(t *testing.T) {
	p := NewPlayer(core.V(3, 4))

	if p.Pos != core.V(3, 3.5) {
		t.Errorf("Pos = %v, expected (3, 3.5)", p.Pos)
	}
	if p.Size != core.V(0.8, 1.5) {
		t.Errorf("Size = %v, expected (0.8, 1.5)", p.Size)
	}
	if p.Kind() != KindPlayer {
		t.Errorf("Kind() = %v", p.Kind())
	}

	p.Act(1, nil)
	if p.Pos != core.V(3, 3.5) {
		t.Error("player Act should not move it")
	}
}
