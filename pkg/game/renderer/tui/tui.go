package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazeworld/pkg/engine/terminal"
	"mazeworld/pkg/engine/world"
	"mazeworld/pkg/game/renderer"
	"mazeworld/pkg/game/state"
)

// Each maze cell takes cellChars columns and cellLines lines on screen
const (
	cellChars = 3
	cellLines = 2
	// status line, blank, messages header, 5 messages, help line, spare
	hudLines = 10
)

// newline works both in cooked and raw terminal mode
const newline = "\r\n"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall         color.Style
	colorFloor        color.Style
	colorUndiscovered color.Style
	colorTrap         color.Style
	colorTeleporter   color.Style
	colorButton       color.Style
	colorExit         color.Style
	colorTriggered    color.Style
	colorPlayer       color.Style
	colorAdversary    color.Style
	colorSubtle       color.Style
	colorDenied       color.Style
	colorAction       color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgWhite}
	t.colorUndiscovered = color.Style{color.FgDarkGray}
	t.colorTrap = color.Style{color.FgRed, color.OpBold}
	t.colorTeleporter = color.Style{color.FgCyan, color.OpBold}
	t.colorButton = color.Style{color.FgYellow, color.OpBold}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorTriggered = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorAdversary = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	if err := c.Run(); err != nil {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleUndiscovered:
		return t.colorUndiscovered.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	case renderer.StyleTeleporter:
		return t.colorTeleporter.Sprint(text)
	case renderer.StyleButton:
		return t.colorButton.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleTriggered:
		return t.colorTriggered.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAdversary:
		return t.colorAdversary.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// RenderFrame renders the map around the player, the status line and the message log
func (t *TUIRenderer) RenderFrame(s *state.Snapshot) {
	var b strings.Builder

	vc, vr := terminal.Viewport(cellChars, cellLines, hudLines)
	t.renderMap(&b, s, vc, vr)

	b.WriteString(newline)
	status := renderer.StatusLine(s)
	if s.State == state.GameOver {
		status = t.StyleText(status, renderer.StyleDenied)
	}
	b.WriteString(status)
	b.WriteString(newline)

	b.WriteString(t.StyleText(gotext.Get("MESSAGES"), renderer.StyleSubtle))
	b.WriteString(newline)
	for _, m := range s.Messages {
		b.WriteString("  ")
		b.WriteString(renderer.Translate(m))
		b.WriteString(newline)
	}
	b.WriteString(t.StyleText(gotext.Get("TUI_HELP"), renderer.StyleAction))
	b.WriteString(newline)

	t.Clear()
	fmt.Fprint(t.out, b.String())
}

// renderMap draws at most vc×vr cells centred on the player
func (t *TUIRenderer) renderMap(b *strings.Builder, s *state.Snapshot, vc, vr int) {
	vc = min(vc, s.Cols)
	vr = min(vr, s.Rows)
	ox := renderer.ViewportOrigin(s.Player.Cell.X, vc, s.Cols)
	oy := renderer.ViewportOrigin(s.Player.Cell.Y, vr, s.Rows)
	known := s.DiscoveredSet()

	wall := func(seen, standing bool, on, off string) string {
		if seen && standing {
			return t.StyleText(on, renderer.StyleWall)
		}
		return off
	}

	for row := 0; row < vr; row++ {
		y := oy + row

		// Top edge of the row
		for col := 0; col < vc; col++ {
			c, _ := s.Cell(ox+col, y)
			b.WriteString(t.StyleText("+", renderer.StyleWall))
			b.WriteString(wall(known[c.Coord], c.Walls[world.Top], "--", "  "))
		}
		b.WriteString(t.StyleText("+", renderer.StyleWall))
		b.WriteString(newline)

		// Cell contents with left walls
		for col := 0; col < vc; col++ {
			c, _ := s.Cell(ox+col, y)
			seen := known[c.Coord]
			b.WriteString(wall(seen, c.Walls[world.Left], "|", " "))
			b.WriteString(t.cellContent(s, c, seen))
		}
		last, _ := s.Cell(ox+vc-1, y)
		b.WriteString(wall(known[last.Coord], last.Walls[world.Right], "|", " "))
		b.WriteString(newline)
	}

	// Bottom edge of the last row
	for col := 0; col < vc; col++ {
		c, _ := s.Cell(ox+col, oy+vr-1)
		b.WriteString(t.StyleText("+", renderer.StyleWall))
		b.WriteString(wall(known[c.Coord], c.Walls[world.Bottom], "--", "  "))
	}
	b.WriteString(t.StyleText("+", renderer.StyleWall))
	b.WriteString(newline)
}

// cellContent returns the two characters drawn inside a cell
func (t *TUIRenderer) cellContent(s *state.Snapshot, c state.CellView, seen bool) string {
	if c.Coord == s.Player.Cell {
		if s.Player.Invulnerable {
			return t.StyleText(renderer.PlayerIcon+" ", renderer.StyleDenied)
		}
		return t.StyleText(renderer.PlayerIcon+" ", renderer.StylePlayer)
	}
	if a, ok := s.AdversaryAt(c.Coord); ok && a.Visible {
		return t.StyleText(renderer.AdversaryIcon+" ", renderer.StyleAdversary)
	}
	if !seen {
		return t.StyleText(renderer.IconUndiscovered+renderer.IconUndiscovered, renderer.StyleUndiscovered)
	}
	icon := renderer.CellIcon(c.Kind, c.Triggered)
	return t.StyleText(icon+" ", renderer.CellStyle(c.Kind, c.Triggered))
}
