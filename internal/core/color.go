package core

// Color is the role a cell plays on screen. The platform owns the mapping
// from role to terminal color, so games never name raw palette codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorText
	ColorTitle
	ColorCue
	ColorDust
	ColorShip
	ColorHostile
	ColorBullet
	ColorFuel
	ColorFuelGauge
	ColorTarget
	ColorStar
	ColorEmber
	ColorFlame
	ColorSpark
	ColorSmoke

	colorCount
)

// Valid reports whether c is a known role.
func (c Color) Valid() bool {
	return c < colorCount
}
