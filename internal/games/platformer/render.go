package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Visual characters for rendering
const (
	WallChar     = '#'
	LavaChar     = '~'
	PlayerChar   = '@'
	CoinChar     = 'o'
	FireballChar = '*'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.level != nil {
		g.renderWorld(dst)
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport returns the top-left tile of the camera and its size in tiles.
// The camera follows the player and stays inside the level where possible.
func (g *Game) viewport(dst *core.Screen) (left, top float64, w, h int) {
	cw := g.cfg.Render.CellWidth
	w = dst.Width() / cw
	h = dst.Height() - hudRows

	lvl := g.level
	center := core.V(float64(lvl.Width)/2, float64(lvl.Height)/2)
	if p := lvl.Player(); p != nil {
		b := p.Bounds()
		center = b.Pos.Plus(b.Size.Times(0.5))
	}

	left = follow(center.X, w, lvl.Width)
	top = follow(center.Y, h, lvl.Height)
	return left, top, w, h
}

// follow centers a view of size view on pos and clamps it to [0, size].
// A view larger than the level is centered on the level instead.
func follow(pos float64, view, size int) float64 {
	if view >= size {
		return -math.Floor(float64(view-size) / 2)
	}
	start := math.Floor(pos - float64(view)/2)
	return math.Max(0, math.Min(start, float64(size-view)))
}

func (g *Game) renderWorld(dst *core.Screen) {
	cw := g.cfg.Render.CellWidth
	left, top, w, h := g.viewport(dst)
	lvl := g.level

	// Static obstacles
	for vy := 0; vy < h; vy++ {
		ty := int(top) + vy
		if ty < 0 || ty >= len(lvl.Grid) {
			continue
		}
		row := lvl.Grid[ty]
		for vx := 0; vx < w; vx++ {
			tx := int(left) + vx
			if tx < 0 || tx >= len(row) {
				continue
			}
			var ch rune
			var color core.Color
			switch row[tx] {
			case world.ObstacleWall:
				ch, color = WallChar, core.ColorGray
			case world.ObstacleLava:
				ch, color = LavaChar, core.ColorRed
			default:
				continue
			}
			for i := 0; i < cw; i++ {
				dst.SetColored(vx*cw+i, hudRows+vy, ch, color)
			}
		}
	}

	// Actors, player last so it is drawn on top
	var player world.Actor
	for _, a := range lvl.Actors() {
		if a.Kind() == world.KindPlayer {
			player = a
			continue
		}
		g.drawActor(dst, a, left, top)
	}
	if player != nil {
		g.drawActor(dst, player, left, top)
	}
}

// drawActor fills the terminal cells covered by the actor's rectangle.
func (g *Game) drawActor(dst *core.Screen, a world.Actor, left, top float64) {
	cw := float64(g.cfg.Render.CellWidth)
	b := a.Bounds()

	x0 := int(math.Floor((b.Left() - left) * cw))
	x1 := int(math.Ceil((b.Right() - left) * cw))
	y0 := int(math.Floor(b.Top() - top))
	y1 := int(math.Ceil(b.Bottom() - top))

	ch, color := actorGlyph(a.Kind())
	for y := y0; y < y1; y++ {
		if y < 0 {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, hudRows+y, ch, color)
		}
	}
}

func actorGlyph(k world.Kind) (rune, core.Color) {
	switch k {
	case world.KindPlayer:
		return PlayerChar, core.ColorCyan
	case world.KindCoin:
		return CoinChar, core.ColorBrightYellow
	case world.KindFireball:
		return FireballChar, core.ColorOrange
	default:
		return '?', core.ColorWhite
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s (%d/%d)  Coins: %d  Lives: %d",
		st.LevelName, st.LevelIndex+1, st.LevelCount, st.CoinsLeft, st.Lives)
	dst.DrawText(0, 0, hud, core.ColorWhite)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	midY := dst.Height() / 2
	switch {
	case g.won:
		dst.DrawTextCentered(midY, " YOU WIN! ", core.ColorGreen)
		dst.DrawTextCentered(midY+1, " Press R to play again ", core.ColorWhite)
	case g.gameOver:
		dst.DrawTextCentered(midY, " GAME OVER ", core.ColorBrightRed)
		if g.message != "" {
			dst.DrawTextCentered(midY+1, " "+g.message+" ", core.ColorWhite)
		}
		dst.DrawTextCentered(midY+2, " Press R to restart ", core.ColorWhite)
	case g.paused:
		dst.DrawTextCentered(midY, " PAUSED ", core.ColorYellow)
	case g.level != nil && g.level.Status() == world.StatusWon:
		dst.DrawTextCentered(midY, " LEVEL COMPLETE ", core.ColorGreen)
	case g.level != nil && g.level.Status() == world.StatusLost:
		dst.DrawTextCentered(midY, " OUCH! ", core.ColorRed)
	}
}
