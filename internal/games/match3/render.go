package match3

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

const (
	cellWidth = 3 // Block glyph plus a bracket on each side
	hudHeight = 3 // Title, stats, message
)

// boardFootprint returns the boxed board size in screen cells.
func (g *Game) boardFootprint() (w, h int) {
	return g.settings.Width*cellWidth + 2, g.settings.Height + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	bw, bh := g.boardFootprint()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	box := area.Centered(bw, bh)
	dst.DrawBox(box, core.ColorGray)

	grid := g.engine.Grid()
	if grid == nil {
		return
	}
	flashing := make(map[board.Coord]bool, len(g.flash))
	for _, c := range g.flash {
		flashing[c] = true
	}

	for y := range grid.H {
		sy := box.Y + 1 + (grid.H - 1 - y) // Row 0 is drawn at the bottom
		for x := range grid.W {
			sx := box.X + 1 + x*cellWidth
			g.renderCell(dst, grid, board.C(x, y), sx, sy, flashing)
		}
	}

	st := g.State()
	switch {
	case st.Cleared:
		dst.DrawTextCentered(box.Bottom(), "Board cleared! S: save  N: new", core.ColorBrightGreen)
	case st.Stuck:
		dst.DrawTextCentered(box.Bottom(), "No moves left. S: save  R: restart", core.ColorBrightRed)
	}
}

func (g *Game) renderCell(dst *core.Screen, grid *board.Grid, c board.Coord, sx, sy int, flashing map[board.Coord]bool) {
	cell, err := grid.Cell(c)
	if err != nil {
		return
	}
	blk := cell.Occupant()
	switch {
	case flashing[c] && blk == nil:
		dst.SetCell(sx+1, sy, core.Cell{Rune: '*', Color: core.ColorBrightWhite})
	case blk != nil:
		dst.SetCell(sx+1, sy, core.Cell{Rune: blockRune(blk), Color: g.palette[blk.Type().ID]})
	default:
		dst.SetCell(sx+1, sy, core.Cell{Rune: '·', Color: core.ColorGray})
	}

	sel, active := g.Selected()
	selected := active && sel == c
	left, right := ' ', ' '
	color := core.ColorBrightWhite
	switch {
	case selected && c == g.cursor:
		left, right = '{', '}'
		color = core.ColorBrightYellow
	case selected:
		left, right = '<', '>'
		color = core.ColorBrightYellow
	case c == g.cursor:
		left, right = '[', ']'
	}
	dst.SetCell(sx, sy, core.Cell{Rune: left, Color: color})
	dst.SetCell(sx+2, sy, core.Cell{Rune: right, Color: color})
}

// blockRune is the first letter of the type name, upper case for bombs.
func blockRune(b *board.Block) rune {
	r, _ := utf8.DecodeRuneInString(b.Type().String())
	r = unicode.ToLower(r)
	if b.IsBomb() {
		r = unicode.ToUpper(r)
	}
	return r
}

// renderHUD draws the title, session stats and the last message.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "MATCH 3", core.ColorBrightMagenta)

	st := g.State()
	stats := fmt.Sprintf("Seed %d   Moves %d   Score %d   Left %d", st.Seed, st.Moves, st.Score, st.Remaining)
	dst.DrawTextCentered(1, stats, core.ColorDefault)

	if g.message != "" {
		dst.DrawTextCentered(2, g.message, core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.boardFootprint()
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h+hudHeight+1), core.ColorDefault)
}
