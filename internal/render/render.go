package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/asteroids/internal/component"
	"github.com/l1jgo/asteroids/internal/config"
	"github.com/l1jgo/asteroids/internal/core/ecs"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

var (
	shipGlyphs   = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	thrustGlyphs = [8]rune{'⇒', '⇘', '⇓', '⇙', '⇐', '⇖', '⇑', '⇗'}
	lineGlyphs   = [4]rune{'-', '\\', '|', '/'}
)

// Status is the HUD input that does not live in the world.
type Status struct {
	State   component.GameState
	HasGame bool
	Paused  bool
}

// Renderer draws the world onto a tcell screen. It never mutates
// components. The list of drawable entities is rebuilt only when the
// world's structural version changes; positions and the rest are re-read
// every frame.
type Renderer struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64

	ids       []ecs.EntityID
	version   uint64
	primed    bool
	requeries int
}

func New(screen tcell.Screen, cfg config.TerminalConfig) *Renderer {
	return &Renderer{screen: screen, cellW: cfg.CellWidth, cellH: cfg.CellHeight}
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(w *ecs.World, st Status) {
	r.screen.Clear()

	if !r.primed || w.Version() != r.version {
		r.ids = w.Query(component.TagPosition, component.TagRender)
		r.version = w.Version()
		r.primed = true
		r.requeries++
	}

	for _, id := range r.ids {
		p, ok := w.Positions.Get(id)
		if !ok {
			continue
		}
		rc, ok := w.Renders.Get(id)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.GetColor(rc.Color))
		switch rc.Shape {
		case component.ShapeTriangle:
			thrust := false
			if in, ok := w.Inputs.Get(id); ok {
				thrust = in.Thrust
			}
			r.drawShip(p, rc, thrust, style)
		case component.ShapeCircle:
			r.drawCircle(p, rc, style)
		case component.ShapeLine:
			r.plot(p.X, p.Y, lineGlyphs[octant(rc.Rotation)%4], style)
		}
	}

	r.drawHUD(st)
	r.screen.Show()
}

// Invalidate forces the next Draw to rebuild its entity list.
func (r *Renderer) Invalidate() {
	r.primed = false
}

func (r *Renderer) drawShip(p *component.Position, rc *component.Render, thrust bool, style tcell.Style) {
	glyphs := shipGlyphs
	if thrust {
		glyphs = thrustGlyphs
		style = style.Bold(true)
	}
	r.plot(p.X, p.Y, glyphs[octant(rc.Rotation)], style)
}

// drawCircle plots a single glyph for circles smaller than a cell and an
// outline for bigger ones.
func (r *Renderer) drawCircle(p *component.Position, rc *component.Render, style tcell.Style) {
	radius := rc.Size
	if radius < r.cellW {
		g := '.'
		if radius >= r.cellW/2 {
			g = 'o'
		}
		r.plot(p.X, p.Y, g, style)
		return
	}

	band := math.Max(r.cellW, r.cellH) / 2
	x0, y0 := r.cell(p.X-radius, p.Y-radius)
	x1, y1 := r.cell(p.X+radius, p.Y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) * r.cellW
			wy := (float64(cy-hudRows) + 0.5) * r.cellH
			d := math.Hypot(wx-p.X, wy-p.Y)
			if math.Abs(d-radius) <= band {
				r.set(cx, cy, 'O', style)
			}
		}
	}
	r.plot(p.X, p.Y, '·', style)
}

func (r *Renderer) drawHUD(st Status) {
	cols, _ := r.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	if !st.HasGame {
		return
	}
	gs := st.State
	text := fmt.Sprintf(" SCORE %d  LIVES %d  LEVEL %d  ASTEROIDS %d", gs.Score, gs.Lives, gs.Level, gs.AsteroidsRemaining)
	switch {
	case gs.IsGameOver:
		text += "  GAME OVER (r restart, q quit)"
	case st.Paused:
		text += "  PAUSED (p resume)"
	}
	r.text(0, 0, text, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// cell converts world coordinates to a screen cell.
func (r *Renderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x / r.cellW)), int(math.Floor(y/r.cellH)) + hudRows
}

func (r *Renderer) plot(x, y float64, g rune, style tcell.Style) {
	cx, cy := r.cell(x, y)
	r.set(cx, cy, g, style)
}

func (r *Renderer) set(cx, cy int, g rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if cx < 0 || cy < hudRows || cx >= cols || cy >= rows {
		return
	}
	r.screen.SetContent(cx, cy, g, nil, style)
}

// octant maps an angle to one of eight compass directions, 0 = +x,
// increasing clockwise on screen.
func octant(rad float64) int {
	i := int(math.Round(rad / (math.Pi / 4)))
	return ((i % 8) + 8) % 8
}
