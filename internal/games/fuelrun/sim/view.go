package sim

import "github.com/vovakirdan/fuelrun/internal/core"

// SpriteKind tells a renderer what a Sprite depicts.
type SpriteKind int

const (
	SpriteDot SpriteKind = iota
	SpriteTarget
	SpritePickup
	SpriteEnemy
	SpriteBullet
	SpriteFragment
	SpritePlayer
	SpriteArrow
	SpriteFuelIcon
	SpriteStar
)

// Sprite is one drawable item in world coordinates.
type Sprite struct {
	Kind     SpriteKind
	Position core.Vec2
	Facing   float64
	Frame    int
	Color    ColorClass
	Radius   float64
}

// View lists everything a renderer needs for the current frame, back to
// front. The camera position is the center of the view.
func (w *World) View() []Sprite {
	out := make([]Sprite, 0, len(w.dots)+w.projectiles.Len()+w.enemies.Len()+16)

	for _, d := range w.dots {
		out = append(out, Sprite{Kind: SpriteDot, Position: d})
	}
	if tg, ok := w.Target(); ok {
		out = append(out, Sprite{Kind: SpriteTarget, Position: tg.Position, Radius: w.tuning.TargetRadius})
	}
	w.pickups.Each(func(_ Handle, c *Pickup) {
		out = append(out, Sprite{Kind: SpritePickup, Position: c.Position, Frame: c.Frame})
	})
	w.enemies.Each(func(_ Handle, e *Enemy) {
		out = append(out, Sprite{Kind: SpriteEnemy, Position: e.Position, Facing: e.Facing})
	})
	w.projectiles.Each(func(_ Handle, pr *Projectile) {
		kind := SpriteBullet
		if pr.Kind == KindFragment {
			kind = SpriteFragment
		}
		out = append(out, Sprite{Kind: kind, Position: pr.Position, Facing: pr.Facing, Color: pr.Color, Radius: pr.Radius})
	})
	if p, ok := w.Player(); ok {
		out = append(out, Sprite{Kind: SpritePlayer, Position: p.Position, Facing: p.Facing})
	}
	if pos, facing, ok := w.Arrow(); ok {
		out = append(out, Sprite{Kind: SpriteArrow, Position: pos, Facing: facing})
	}
	w.fuelIcons.Each(func(_ Handle, ic *Icon) {
		out = append(out, Sprite{Kind: SpriteFuelIcon, Position: ic.Position})
	})
	w.stars.Each(func(_ Handle, ic *Icon) {
		out = append(out, Sprite{Kind: SpriteStar, Position: ic.Position, Frame: ic.Frame})
	})

	return out
}
