package world

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestObstacleFromSymbol(t *testing.T) {
	p := NewParser(StandardDictionary(), nil)

	tests := []struct {
		sym      rune
		expected Obstacle
	}{
		{'x', ObstacleWall},
		{'!', ObstacleLava},
		{' ', ObstacleNone},
		{'.', ObstacleNone},
		{'@', ObstacleNone},
		{'X', ObstacleNone},
	}

	for _, tc := range tests {
		if got := p.ObstacleFromSymbol(tc.sym); got != tc.expected {
			t.Errorf("ObstacleFromSymbol(%q) = %q, expected %q", tc.sym, got, tc.expected)
		}
	}
}

func TestActorFromSymbol(t *testing.T) {
	p := NewParser(StandardDictionary(), nil)

	for _, sym := range "@o=|v" {
		if _, ok := p.ActorFromSymbol(sym); !ok {
			t.Errorf("ActorFromSymbol(%q) not found", sym)
		}
	}
	for _, sym := range "x! .#" {
		if _, ok := p.ActorFromSymbol(sym); ok {
			t.Errorf("ActorFromSymbol(%q) unexpectedly found", sym)
		}
	}
}

func TestCreateGrid(t *testing.T) {
	p := NewParser(nil, nil)
	grid := p.CreateGrid(Plan{"x!.", "", "  x"})

	if len(grid) != 3 {
		t.Fatalf("len(grid) = %d, expected 3", len(grid))
	}
	expected := [][]Obstacle{
		{ObstacleWall, ObstacleLava, ObstacleNone},
		{},
		{ObstacleNone, ObstacleNone, ObstacleWall},
	}
	for y := range expected {
		if len(grid[y]) != len(expected[y]) {
			t.Fatalf("row %d has %d cells, expected %d", y, len(grid[y]), len(expected[y]))
		}
		for x := range expected[y] {
			if grid[y][x] != expected[y][x] {
				t.Errorf("grid[%d][%d] = %q, expected %q", y, x, grid[y][x], expected[y][x])
			}
		}
	}
}

func TestCreateActors(t *testing.T) {
	p := NewParser(StandardDictionary(), rand.New(rand.NewSource(1)))
	actors := p.CreateActors(Plan{"@ =", " o|", "v"})

	kinds := []Kind{KindPlayer, KindFireball, KindCoin, KindFireball, KindFireball}
	if len(actors) != len(kinds) {
		t.Fatalf("len(actors) = %d, expected %d", len(actors), len(kinds))
	}
	for i, k := range kinds {
		if actors[i].Kind() != k {
			t.Errorf("actors[%d].Kind() = %v, expected %v", i, actors[i].Kind(), k)
		}
	}

	if _, ok := actors[4].(*FireRain); !ok {
		t.Errorf("actors[4] = %T, expected *FireRain", actors[4])
	}
	if actors[1].Bounds().Pos != core.V(2, 0) {
		t.Errorf("fireball at %v, expected (2, 0)", actors[1].Bounds().Pos)
	}
}

func TestCreateActorsSkipsInvalid(t *testing.T) {
	dict := Dictionary{
		'a': func(pos core.Vector, _ *rand.Rand) Actor { return NewActor(&pos, nil, nil) },
		'n': func(core.Vector, *rand.Rand) Actor { return nil },
		'p': func(core.Vector, *rand.Rand) Actor { return phantom{} },
		'm': func(core.Vector, *rand.Rand) Actor { return &mislabeled{} },
		'@': func(core.Vector, *rand.Rand) Actor { return (*Player)(nil) },
		'o': func(core.Vector, *rand.Rand) Actor { return (*Coin)(nil) },
	}
	actors := NewParser(dict, nil).CreateActors(Plan{"anpm@o?a"})

	if len(actors) != 2 {
		t.Fatalf("len(actors) = %d, expected 2", len(actors))
	}
	if actors[1].Bounds().Pos != core.V(7, 0) {
		t.Errorf("second actor at %v, expected (7, 0)", actors[1].Bounds().Pos)
	}
}

func TestObstacleSymbolsNotOverridable(t *testing.T) {
	dict := Dictionary{
		'x': func(pos core.Vector, _ *rand.Rand) Actor { return NewPlayer(pos) },
		'!': func(pos core.Vector, _ *rand.Rand) Actor { return NewPlayer(pos) },
	}
	p := NewParser(dict, nil)
	lvl := p.Parse(Plan{"x!"})

	if !lvl.NoMoreActors() {
		t.Error("obstacle symbols spawned actors")
	}
	if lvl.Grid[0][0] != ObstacleWall || lvl.Grid[0][1] != ObstacleLava {
		t.Errorf("grid = %v", lvl.Grid)
	}
}

func TestParse(t *testing.T) {
	p := NewParser(StandardDictionary(), rand.New(rand.NewSource(3)))
	lvl := p.Parse(Plan{"@o", "x."})

	if lvl.Grid[1][0] != ObstacleWall {
		t.Errorf("Grid[1][0] = %q, expected wall", lvl.Grid[1][0])
	}
	if lvl.Width != 2 || lvl.Height != 2 {
		t.Errorf("size = %dx%d, expected 2x2", lvl.Width, lvl.Height)
	}

	actors := lvl.Actors()
	if len(actors) != 2 {
		t.Fatalf("len(Actors()) = %d, expected 2", len(actors))
	}

	player, ok := actors[0].(*Player)
	if !ok {
		t.Fatalf("actors[0] = %T, expected *Player", actors[0])
	}
	if player.Pos != core.V(0, -0.5) {
		t.Errorf("player at %v, expected (0, -0.5)", player.Pos)
	}
	if lvl.Player() != Actor(player) {
		t.Error("Player() does not return the parsed player")
	}

	coin, ok := actors[1].(*Coin)
	if !ok {
		t.Fatalf("actors[1] = %T, expected *Coin", actors[1])
	}
	if !approxVec(coin.Pos, core.V(1.2, 0.1)) {
		t.Errorf("coin at %v, expected (1.2, 0.1)", coin.Pos)
	}
}

func TestParseMultibyteRows(t *testing.T) {
	// Symbols are runes: a multibyte filler still counts as one column.
	p := NewParser(StandardDictionary(), nil)
	lvl := p.Parse(Plan{"·@x"})

	if lvl.Width != 3 {
		t.Errorf("Width = %d, expected 3", lvl.Width)
	}
	if pl := lvl.Player(); pl == nil || pl.Bounds().Pos.X != 1 {
		t.Errorf("player = %v, expected column 1", pl)
	}
}

func TestStandardSymbols(t *testing.T) {
	dict := StandardDictionary()
	symbols := StandardSymbols()
	if len(dict) != len(symbols) {
		t.Fatalf("len(StandardDictionary()) = %d, expected %d", len(dict), len(symbols))
	}

	for sym, name := range symbols {
		if _, ok := Spawner(name); !ok {
			t.Errorf("Spawner(%q) missing for symbol %q", name, sym)
		}
		if dict[sym] == nil {
			t.Errorf("StandardDictionary()[%q] is nil", sym)
		}
	}
	if _, ok := Spawner("dragon"); ok {
		t.Error("Spawner(dragon) found, expected missing")
	}
}
