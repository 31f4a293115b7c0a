package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxVec(a, b core.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestCoinSpawn(t *testing.T) {
	c := NewCoinWithPhase(core.V(1, 2), 0)

	if !approxVec(c.Pos, core.V(1.2, 2.1)) {
		t.Errorf("Pos = %v, expected (1.2, 2.1)", c.Pos)
	}
	if c.Anchor() != c.Pos {
		t.Errorf("Anchor() = %v, expected %v", c.Anchor(), c.Pos)
	}
	if c.Size != core.V(0.6, 0.6) {
		t.Errorf("Size = %v, expected (0.6, 0.6)", c.Size)
	}
	if c.Kind() != KindCoin {
		t.Errorf("Kind() = %v", c.Kind())
	}
}

func TestCoinPhaseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		c := NewCoin(core.V(0, 0), rng)
		if c.Phase() < 0 || c.Phase() >= math.Pi {
			t.Fatalf("phase %v outside [0, π)", c.Phase())
		}
	}

	if c := NewCoin(core.V(0, 0), nil); c.Phase() < 0 || c.Phase() >= math.Pi {
		t.Errorf("phase %v from global source outside [0, π)", c.Phase())
	}
}

func TestCoinPhaseDeterministic(t *testing.T) {
	a := NewCoin(core.V(0, 0), rand.New(rand.NewSource(42)))
	b := NewCoin(core.V(0, 0), rand.New(rand.NewSource(42)))

	if a.Phase() != b.Phase() {
		t.Errorf("same seed gave phases %v and %v", a.Phase(), b.Phase())
	}
}

func TestCoinSpring(t *testing.T) {
	c := NewCoinWithPhase(core.V(0, 0), 0)

	if c.SpringVector() != core.Zero {
		t.Errorf("SpringVector() at phase 0 = %v, expected zero", c.SpringVector())
	}

	c.UpdateSpring(0.5)
	if !approx(c.Phase(), 4) {
		t.Errorf("Phase() = %v, expected 4", c.Phase())
	}

	v := c.SpringVector()
	if v.X != 0 || !approx(v.Y, math.Sin(4)*0.07) {
		t.Errorf("SpringVector() = %v", v)
	}
}

func TestCoinAct(t *testing.T) {
	lvl := NewLevel(gridOf("x"), nil)
	c := NewCoinWithPhase(core.V(0, 0), 0)
	anchor := c.Anchor()

	c.Act(0.1, lvl)

	expected := anchor.Plus(core.V(0, math.Sin(0.8)*0.07))
	if !approxVec(c.Pos, expected) {
		t.Errorf("Pos = %v, expected %v", c.Pos, expected)
	}
	if c.Anchor() != anchor {
		t.Error("Act moved the anchor")
	}
}

func TestCoinStaysNearAnchor(t *testing.T) {
	c := NewCoin(core.V(3, 3), rand.New(rand.NewSource(1)))
	anchor := c.Anchor()

	for i := 0; i < 200; i++ {
		c.Act(0.05, nil)
		if c.Pos.X != anchor.X {
			t.Fatalf("coin moved horizontally to %v", c.Pos)
		}
		if math.Abs(c.Pos.Y-anchor.Y) > 0.07+epsilon {
			t.Fatalf("coin drifted to %v from anchor %v", c.Pos, anchor)
		}
	}
}
