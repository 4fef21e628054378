package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/renderer"
	"mazeworld/pkg/game/state"
)

// Draw renders the current snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := &e.snap
	if s.Cols == 0 || s.Rows == 0 {
		return
	}

	tile := float32(e.tileSize)
	mapHeight := max(e.windowHeight-hudHeight, e.tileSize)
	vc := min(max(e.windowWidth/e.tileSize, 1), s.Cols)
	vr := min(max(mapHeight/e.tileSize, 1), s.Rows)
	ox := renderer.ViewportOrigin(s.Player.Cell.X, vc, s.Cols)
	oy := renderer.ViewportOrigin(s.Player.Cell.Y, vr, s.Rows)
	known := s.DiscoveredSet()

	for row := 0; row < vr; row++ {
		for col := 0; col < vc; col++ {
			c, ok := s.Cell(ox+col, oy+row)
			if !ok {
				continue
			}
			e.drawCell(screen, c, known[c.Coord], float32(col)*tile, float32(row)*tile, tile)
		}
	}

	// World pixels to screen pixels
	scale := tile / float32(s.CellSize)
	offX := float32(ox) * float32(s.CellSize)
	offY := float32(oy) * float32(s.CellSize)

	for _, a := range s.Adversaries {
		if !a.Visible {
			continue
		}
		cx := (float32(a.Pos.X-ox) + 0.5) * tile
		cy := (float32(a.Pos.Y-oy) + 0.5) * tile
		vector.DrawFilledCircle(screen, cx, cy, tile/3, colorAdversary, true)
	}

	p := s.Player
	px := (float32(p.Rect.X) - offX) * scale
	py := (float32(p.Rect.Y) - offY) * scale
	pw := float32(p.Rect.W) * scale
	ph := float32(p.Rect.H) * scale
	body := colorPlayer
	if p.Invulnerable {
		body = colorPlayerHurt
	}
	vector.DrawFilledRect(screen, px, py, pw, ph, body, false)

	// Facing marker on the edge of the player box
	fx := px + pw/2 + float32(p.Facing.X)*pw/2
	fy := py + ph/2 + float32(p.Facing.Y)*ph/2
	vector.DrawFilledRect(screen, fx-2, fy-2, 4, 4, colorFacing, false)

	e.drawHUD(screen, s)
}

// drawCell fills one maze cell and draws its standing walls
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, c state.CellView, seen bool, x, y, tile float32) {
	if !seen {
		vector.DrawFilledRect(screen, x, y, tile, tile, colorMapBackground, false)
		return
	}
	vector.DrawFilledRect(screen, x, y, tile, tile, colorFloor, false)

	style := renderer.CellStyle(c.Kind, c.Triggered)
	if c.Kind != world.Normal {
		inset := tile / 4
		vector.DrawFilledRect(screen, x+inset, y+inset, tile-2*inset, tile-2*inset, styleColor(style), false)
	}

	const w = wallThickness
	if c.Walls[world.Top] {
		vector.DrawFilledRect(screen, x, y, tile, w, colorWall, false)
	}
	if c.Walls[world.Bottom] {
		vector.DrawFilledRect(screen, x, y+tile-w, tile, w, colorWall, false)
	}
	if c.Walls[world.Left] {
		vector.DrawFilledRect(screen, x, y, w, tile, colorWall, false)
	}
	if c.Walls[world.Right] {
		vector.DrawFilledRect(screen, x+tile-w, y, w, tile, colorWall, false)
	}
}

// drawHUD prints the status line, the message log and the end-of-run banner
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s *state.Snapshot) {
	top := e.windowHeight - hudHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(e.windowWidth), hudHeight, colorPanel, false)

	ebitenutil.DebugPrintAt(screen, renderer.StatusLine(s), 8, top+4)
	for i, m := range s.Messages {
		ebitenutil.DebugPrintAt(screen, renderer.Translate(m), 8, top+4+(i+1)*debugLineHeight)
	}

	if s.State.IsTerminal() {
		banner := renderer.StateBanner(s.State)
		ebitenutil.DebugPrintAt(screen, banner, e.windowWidth/2-len(banner)*3, top/2)
	}
}

func styleColor(style renderer.TextStyle) color.Color {
	if c, ok := kindColors[style]; ok {
		return c
	}
	return colorFloor
}
