package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Names of the built-in actor kinds.
const (
	KindPlayer             = world.SpawnPlayer
	KindCoin               = world.SpawnCoin
	KindHorizontalFireball = world.SpawnHorizontalFireball
	KindVerticalFireball   = world.SpawnVerticalFireball
	KindFireRain           = world.SpawnFireRain
)

var builtinKinds = []KindInfo{
	{
		Name:        KindPlayer,
		Kind:        world.KindPlayer,
		Description: "the controllable hero, spawned standing on its cell",
	},
	{
		Name:        KindCoin,
		Kind:        world.KindCoin,
		Description: "collectible; the level is won once all are taken",
	},
	{
		Name:        KindHorizontalFireball,
		Kind:        world.KindFireball,
		Description: "hazard bouncing left and right",
	},
	{
		Name:        KindVerticalFireball,
		Kind:        world.KindFireball,
		Description: "hazard bouncing up and down",
	},
	{
		Name:        KindFireRain,
		Kind:        world.KindFireball,
		Description: "hazard falling and restarting from its spawn point",
	},
}

func init() {
	for _, info := range builtinKinds {
		f, ok := world.Spawner(info.Name)
		if !ok {
			panic(fmt.Sprintf("registry: no spawner for built-in kind %q", info.Name))
		}
		Register(info, f)
	}
}

// StandardSymbols is the default symbol table in config form.
func StandardSymbols() map[string]string {
	symbols := world.StandardSymbols()
	out := make(map[string]string, len(symbols))
	for sym, name := range symbols {
		out[string(sym)] = name
	}
	return out
}
