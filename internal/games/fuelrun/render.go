package fuelrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
)

// Glyphs indexed by facing octant, starting at +x and turning counter-clockwise.
var (
	playerGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	arrowGlyphs  = [8]rune{'▸', '◥', '▴', '◤', '◂', '◣', '▾', '◢'}
	pickupGlyphs = [...]rune{'F', 'F', 'F', 'f', 'f', 'f', 'F', 'f', 'F'}
)

const (
	ringSegments = 32
	statusRows   = 1
)

// projector maps world coordinates onto the playfield part of the screen.
// World y grows upward, screen rows grow downward.
type projector struct {
	cam    core.Vec2
	width  float64
	height float64
	sx, sy float64
}

func newProjector(cam core.Vec2, t sim.Tuning, cols, rows int) projector {
	return projector{
		cam:    cam,
		width:  t.Width,
		height: t.Height,
		sx:     float64(cols) / t.Width,
		sy:     float64(rows) / t.Height,
	}
}

func (p projector) cell(pos core.Vec2) (int, int) {
	x := (pos.X - p.cam.X + p.width/2) * p.sx
	y := (p.cam.Y - pos.Y + p.height/2) * p.sy
	return int(math.Floor(x)), int(math.Floor(y))
}

// octant returns the index of the 45° sector facing points into.
func octant(facing float64) int {
	i := int(math.Round(facing/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return i
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	rows := dst.Height() - statusRows
	if rows <= 0 {
		return
	}
	t := g.world.Tuning()
	proj := newProjector(g.world.Camera().Position, t, dst.Width(), rows)

	for _, s := range g.world.View() {
		x, y := proj.cell(s.Position)
		if y >= rows {
			continue
		}
		switch s.Kind {
		case sim.SpriteDot:
			dst.SetColored(x, y, '.', core.ColorDust)
		case sim.SpriteTarget:
			g.drawRing(dst, proj, s.Position, s.Radius, rows)
			dst.SetColored(x, y, 'O', core.ColorTarget)
		case sim.SpritePickup:
			dst.SetColored(x, y, pickupGlyphs[s.Frame%len(pickupGlyphs)], core.ColorFuel)
		case sim.SpriteEnemy:
			dst.SetColored(x, y, 'X', core.ColorHostile)
		case sim.SpriteBullet:
			dst.SetColored(x, y, '•', core.ColorBullet)
		case sim.SpriteFragment:
			r, c := fragmentGlyph(s.Color)
			dst.SetColored(x, y, r, c)
		case sim.SpritePlayer:
			dst.SetColored(x, y, playerGlyphs[octant(s.Facing)], core.ColorShip)
		case sim.SpriteArrow:
			dst.SetColored(x, y, arrowGlyphs[octant(s.Facing)], core.ColorTarget)
		case sim.SpriteFuelIcon:
			dst.SetColored(x, y, '▮', core.ColorFuelGauge)
		case sim.SpriteStar:
			star := '★'
			if s.Frame%4 >= 2 {
				star = '☆'
			}
			dst.SetColored(x, y, star, core.ColorStar)
		}
	}

	g.drawStatus(dst, rows)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "OUT OF THE RUN", fmt.Sprintf("Score: %d  |  Press R to restart", g.score()))
	}
}

func (g *Game) drawRing(dst *core.Screen, proj projector, center core.Vec2, radius float64, rows int) {
	for i := 0; i < ringSegments; i++ {
		a := float64(i) * 2 * math.Pi / ringSegments
		x, y := proj.cell(core.V(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
		if y < rows {
			dst.SetColored(x, y, '·', core.ColorTarget)
		}
	}
}

func fragmentGlyph(c sim.ColorClass) (rune, core.Color) {
	switch c {
	case sim.ColorEmber:
		return '*', core.ColorEmber
	case sim.ColorFlame:
		return '+', core.ColorFlame
	case sim.ColorSpark:
		return '·', core.ColorSpark
	case sim.ColorSmoke:
		return '░', core.ColorSmoke
	default:
		return '•', core.ColorSpark
	}
}

// drawStatus writes the score line below the playfield.
func (g *Game) drawStatus(dst *core.Screen, y int) {
	var ammo, stars uint32
	if p, ok := g.world.Player(); ok {
		ammo, stars = p.Ammo, p.Score
	}
	st := g.world.Stats()
	text := fmt.Sprintf(" Score: %d  Ammo: %d  Stars: %d  Kills: %d ", g.score(), ammo, stars, st.Kills)
	dst.DrawTextColored(0, y, text, core.ColorText)

	if g.cueTicks > 0 && g.cue != "" {
		cue := "[" + g.cue + "]"
		dst.DrawTextColored(dst.Width()-len(cue)-1, y, cue, core.ColorCue)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, title, core.ColorTitle)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorText)
}
