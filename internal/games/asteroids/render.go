package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	BulletChar = '•'
	FlameChar  = '*'
	HUDLine    = '─'
)

// shipArrows holds one glyph per 45° of heading. Heading 0 points up and
// headings grow counter-clockwise.
var shipArrows = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

var rockGlyphs = map[RockSize]rune{
	RockBig:    '▓',
	RockMedium: '▒',
	RockSmall:  '░',
	RockTiny:   '·',
}

// hudRows is the number of screen rows reserved below the playfield.
const hudRows = 2

// viewport maps playfield units to screen cells.
type viewport struct {
	cols, rows int
	sx, sy     float64 // Playfield units per cell
}

func newViewport(field Playfield, cols, rows int) viewport {
	return viewport{
		cols: cols,
		rows: rows,
		sx:   field.Width / float64(cols),
		sy:   field.Height / float64(rows),
	}
}

// cell returns the screen cell containing the playfield point p.
func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / v.sx)), int(math.Floor(p.Y / v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := dst.Height()
	showHUD := rows > hudRows+2
	if showHUD {
		rows -= hudRows
	}
	if dst.Width() <= 0 || rows <= 0 {
		return
	}

	snap := g.Snapshot()
	vp := newViewport(snap.Playfield, dst.Width(), rows)

	for _, r := range g.rocks.Rocks() {
		drawRock(dst, vp, r)
	}
	for _, b := range snap.Bullets {
		x, y := vp.cell(b.Box.Center())
		dst.SetColored(x, y, BulletChar, core.ColorYellow)
	}
	drawShip(dst, vp, snap.Ship)

	if showHUD {
		drawHUD(dst, rows, snap)
	}
}

// drawRock fills the ellipse inscribed in the rock's box.
func drawRock(dst *core.Screen, vp viewport, r *Rock) {
	box := r.Box()
	glyph, ok := rockGlyphs[r.Size]
	if !ok {
		glyph = '#'
	}

	x0 := int(math.Floor(box.Left() / vp.sx))
	x1 := int(math.Ceil(box.Right() / vp.sx))
	y0 := int(math.Floor(box.Top() / vp.sy))
	y1 := int(math.Ceil(box.Bottom() / vp.sy))
	c := box.Center()
	rx, ry := box.W/2, box.H/2

	drawn := false
	for y := y0; y < y1 && y < vp.rows; y++ {
		for x := x0; x < x1; x++ {
			// Sample the cell center in playfield units.
			px := (float64(x) + 0.5) * vp.sx
			py := (float64(y) + 0.5) * vp.sy
			dx, dy := (px-c.X)/rx, (py-c.Y)/ry
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(x, y, glyph, core.ColorGray)
				drawn = true
			}
		}
	}

	// Rocks smaller than a cell still need to be visible.
	if !drawn {
		x, y := vp.cell(c)
		if y < vp.rows {
			dst.SetColored(x, y, glyph, core.ColorGray)
		}
	}
}

// drawShip draws the heading arrow at the ship center and a flame just behind
// the ship while thrusting.
func drawShip(dst *core.Screen, vp viewport, ship EntityView) {
	center := ship.Box.Center()

	if ship.Visual == ShipAccelerating.String() {
		// Rear of the ship is +(sin h, cos h); push the flame half a cell past it.
		back := core.Heading(ship.Heading).Scale(ship.Box.H/2 + vp.sy/2)
		fx, fy := vp.cell(center.Add(back))
		if fy < vp.rows {
			dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
		}
	}

	dir := int(math.Round(ship.Heading/45)) % len(shipArrows)
	x, y := vp.cell(center)
	dst.SetColored(x, y, shipArrows[dir], core.ColorBrightWhite)
}

// drawHUD draws the status strip below the playfield.
func drawHUD(dst *core.Screen, top int, snap Snapshot) {
	dst.DrawHLine(0, top, dst.Width(), HUDLine, core.ColorGray)

	status := fmt.Sprintf(" Rocks %d/%d  Bullets %d/%d  Heading %5.1f°  Velocity (%+5.1f, %+5.1f)",
		len(snap.Rocks), snap.RockCap,
		len(snap.Bullets), snap.BulletCapacity,
		snap.Ship.Heading,
		snap.Ship.Velocity.X, snap.Ship.Velocity.Y,
	)
	if snap.Ship.Visual == ShipAccelerating.String() {
		status += "  THRUST"
	}
	dst.DrawText(0, top+1, status, core.ColorCyan)
}
