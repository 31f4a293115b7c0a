package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Plan is the textual layout of a level, one string per row.
type Plan []string

// Factory creates an actor for the spawn cell at pos. Factories that need
// randomness draw from rng, which may be nil.
type Factory func(pos core.Vector, rng *rand.Rand) Actor

// Dictionary maps plan symbols to actor factories.
type Dictionary map[rune]Factory

// Names of the standard actor kinds as they appear in symbol tables.
const (
	SpawnPlayer             = "player"
	SpawnCoin               = "coin"
	SpawnHorizontalFireball = "horizontal_fireball"
	SpawnVerticalFireball   = "vertical_fireball"
	SpawnFireRain           = "fire_rain"
)

var standardSpawners = map[string]Factory{
	SpawnPlayer:             func(pos core.Vector, _ *rand.Rand) Actor { return NewPlayer(pos) },
	SpawnCoin:               func(pos core.Vector, rng *rand.Rand) Actor { return NewCoin(pos, rng) },
	SpawnHorizontalFireball: func(pos core.Vector, _ *rand.Rand) Actor { return NewHorizontalFireball(pos) },
	SpawnVerticalFireball:   func(pos core.Vector, _ *rand.Rand) Actor { return NewVerticalFireball(pos) },
	SpawnFireRain:           func(pos core.Vector, _ *rand.Rand) Actor { return NewFireRain(pos) },
}

var standardSymbols = map[rune]string{
	'@': SpawnPlayer,
	'o': SpawnCoin,
	'=': SpawnHorizontalFireball,
	'|': SpawnVerticalFireball,
	'v': SpawnFireRain,
}

// Spawner returns the factory of a standard actor kind.
func Spawner(name string) (Factory, bool) {
	f, ok := standardSpawners[name]
	return f, ok
}

// StandardSymbols returns the default plan symbols and the kind each spawns.
func StandardSymbols() map[rune]string {
	out := make(map[rune]string, len(standardSymbols))
	for sym, name := range standardSymbols {
		out[sym] = name
	}
	return out
}

// StandardDictionary returns the default symbol table:
//
//	'@' = player
//	'o' = coin
//	'=' = horizontal fireball
//	'|' = vertical fireball
//	'v' = fire rain
func StandardDictionary() Dictionary {
	dict := make(Dictionary, len(standardSymbols))
	for sym, name := range standardSymbols {
		dict[sym] = standardSpawners[name]
	}
	return dict
}

// obstacleSymbols is fixed; dictionaries cannot override it.
var obstacleSymbols = map[rune]Obstacle{
	'x': ObstacleWall,
	'!': ObstacleLava,
}

// Parser turns plans into levels.
type Parser struct {
	dict Dictionary
	rng  *rand.Rand
}

// NewParser creates a parser for the given symbol table. Entries for the
// obstacle symbols 'x' and '!' are dropped. rng seeds actors that need
// randomness and may be nil.
func NewParser(dict Dictionary, rng *rand.Rand) *Parser {
	own := make(Dictionary, len(dict))
	for sym, f := range dict {
		if _, isObstacle := obstacleSymbols[sym]; isObstacle || f == nil {
			continue
		}
		own[sym] = f
	}
	return &Parser{dict: own, rng: rng}
}

// ObstacleFromSymbol returns the obstacle for a plan symbol, or ObstacleNone.
func (p *Parser) ObstacleFromSymbol(sym rune) Obstacle {
	return obstacleSymbols[sym]
}

// ActorFromSymbol returns the factory registered for a plan symbol.
func (p *Parser) ActorFromSymbol(sym rune) (Factory, bool) {
	f, ok := p.dict[sym]
	return f, ok
}

// CreateGrid maps every symbol of the plan to its obstacle. Rows keep their
// own length.
func (p *Parser) CreateGrid(plan Plan) [][]Obstacle {
	grid := make([][]Obstacle, len(plan))
	for y, line := range plan {
		row := make([]Obstacle, 0, len(line))
		for _, sym := range line {
			row = append(row, p.ObstacleFromSymbol(sym))
		}
		grid[y] = row
	}
	return grid
}

// CreateActors spawns an actor for every mapped symbol in row-major order.
// Unmapped symbols and factories that produce no valid actor are skipped.
func (p *Parser) CreateActors(plan Plan) []Actor {
	var actors []Actor
	for y, line := range plan {
		x := 0
		for _, sym := range line {
			if f, ok := p.ActorFromSymbol(sym); ok {
				if a := f(core.V(float64(x), float64(y)), p.rng); checkActor(a) == nil {
					actors = append(actors, a)
				}
			}
			x++
		}
	}
	return actors
}

// Parse builds the grid and the actors from the same plan.
func (p *Parser) Parse(plan Plan) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
