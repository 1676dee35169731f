package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/goal"
	"github.com/vovakirdan/blocky/internal/player"
	"github.com/vovakirdan/blocky/internal/registry"
)

const (
	cellWidth = 2 // Screen columns per unit cell
	boardX    = 1 // First board column, inside the frame
	boardY    = 2 // First board row, below the title and frame
	hudGap    = 3
	hudWidth  = 34
	hudMinH   = 16

	textColour   = "#ffffff"
	dimColour    = "#8a8a8a"
	accentColour = "#ffd35c"
	errorColour  = "#ff6b6b"
)

// Render draws the board, the current human's selection and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	side := g.side()
	frameW := side*cellWidth + 2
	if g.screenW < frameW+hudGap+hudWidth || g.screenH < max(side+3, hudMinH) {
		g.renderTooSmall(dst)
		return
	}

	title := "B L O C K Y"
	dst.DrawStyledText((frameW-len(title))/2, 0, title, core.Style{FG: accentColour})
	dst.DrawBox(core.NewRect(0, boardY-1, frameW, side+2), dimColour)

	g.renderBoard(dst)
	g.renderSelection(dst)
	g.renderHUD(dst, frameW+hudGap)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	side := g.side()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", side*cellWidth+2+hudGap+hudWidth, max(side+3, hudMinH)))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderBoard(dst *core.Screen) {
	for x, column := range goal.Flatten(g.board) {
		for y, c := range column {
			cell := core.Cell{Rune: ' ', Style: core.Style{BG: c.Hex()}}
			for dx := 0; dx < cellWidth; dx++ {
				dst.SetCell(boardX+x*cellWidth+dx, boardY+y, cell)
			}
		}
	}
}

// renderSelection outlines the block the current human has selected and
// marks the cursor cell.
func (g *Game) renderSelection(dst *core.Screen) {
	cur := g.Current()
	if cur.Kind() != player.KindHuman || g.gameOver {
		return
	}

	cx := boardX + g.cursor.col*cellWidth
	cy := boardY + g.cursor.row
	bg := dst.GetCell(cx, cy).Style.BG
	dst.SetCell(cx, cy, core.Cell{Rune: '◆', Style: core.Style{FG: textColour, BG: bg}})

	sel := cur.SelectedBlock(g.board)
	if sel == nil {
		return
	}
	r := g.blockRect(sel)
	if r.H >= 2 {
		dst.DrawBox(r, textColour)
		return
	}
	for _, p := range []struct {
		x  int
		ch rune
	}{{r.X, '['}, {r.Right() - 1, ']'}} {
		bg := dst.GetCell(p.x, r.Y).Style.BG
		dst.SetCell(p.x, r.Y, core.Cell{Rune: p.ch, Style: core.Style{FG: textColour, BG: bg}})
	}
}

func (g *Game) renderHUD(dst *core.Screen, x int) {
	y := boardY - 1
	line := func(text string, st core.Style) {
		dst.DrawStyledText(x, y, text, st)
		y++
	}

	line(fmt.Sprintf("Round %d/%d   Moves %d", min(g.round+1, g.opts.MaxTurns), g.opts.MaxTurns, g.moves), core.Style{})
	kindTitle := g.goalKind
	for _, info := range registry.List() {
		if info.Kind == g.goalKind {
			kindTitle = info.Title
		}
	}
	line("Goal: "+kindTitle, core.Style{FG: dimColour})
	y++

	scores := g.Scores()
	for i, p := range g.players {
		marker := "  "
		st := core.Style{}
		if i == g.current && !g.gameOver {
			marker = "▸ "
			st.FG = accentColour
		}
		label := fmt.Sprintf("%sP%d %-9s", marker, p.ID()+1, playerLabel(p))
		dst.DrawStyledText(x, y, label, st)
		swatchX := x + len([]rune(label))
		for dx := 0; dx < cellWidth; dx++ {
			dst.SetCell(swatchX+dx, y, core.Cell{Rune: ' ', Style: core.Style{BG: p.Goal().Colour().Hex()}})
		}
		dst.DrawStyledText(swatchX+cellWidth+1, y, fmt.Sprintf("%4d", scores[i]), st)
		y++
	}
	y++

	switch {
	case g.gameOver:
		line("GAME OVER", core.Style{FG: accentColour})
		line("Winner: "+g.winnerNames(), core.Style{})
		line("R: new game", core.Style{FG: dimColour})
		return
	case g.paused:
		line("PAUSED", core.Style{FG: accentColour})
		y++
	}

	cur := g.Current()
	if h, ok := cur.(*player.HumanPlayer); ok {
		line(fmt.Sprintf("Your move, level %d/%d", h.Level(), g.opts.MaxDepth), core.Style{})
		for _, l := range wrap(cur.Goal().Description(), hudWidth) {
			line(l, core.Style{FG: dimColour})
		}
	} else {
		line(fmt.Sprintf("P%d is thinking...", cur.ID()+1), core.Style{FG: dimColour})
	}

	if g.lastMove != "" {
		for _, l := range wrap("Last: "+g.lastMove, hudWidth) {
			line(l, core.Style{FG: dimColour})
		}
	}
	if g.status != "" {
		line(g.status, core.Style{FG: errorColour})
	}
}

func playerLabel(p player.Player) string {
	if s, ok := p.(*player.SmartPlayer); ok {
		return fmt.Sprintf("smart(%d)", s.Difficulty())
	}
	return string(p.Kind())
}

func (g *Game) winnerNames() string {
	var names []string
	for _, id := range g.Winners() {
		names = append(names, fmt.Sprintf("P%d", id+1))
	}
	return strings.Join(names, ", ")
}

// blockRect returns the screen cells covered by a block.
func (g *Game) blockRect(b *board.Block) core.Rect {
	side := g.side()
	root := g.board.Position()
	unit := float64(g.board.Size()) / float64(side)
	pos := b.Position()

	col := core.Clamp(int(math.Round(float64(pos.X-root.X)/unit)), 0, side-1)
	row := core.Clamp(int(math.Round(float64(pos.Y-root.Y)/unit)), 0, side-1)
	span := max(1, int(math.Round(float64(b.Size())/unit)))
	span = min(span, side-max(col, row))

	return core.NewRect(boardX+col*cellWidth, boardY+row, span*cellWidth, span)
}

// screenToCell converts a screen position to a board unit cell.
func (g *Game) screenToCell(x, y int) (cursor, bool) {
	side := g.side()
	area := core.NewRect(boardX, boardY, side*cellWidth, side)
	if !area.Contains(x, y) {
		return cursor{}, false
	}
	return cursor{col: (x - boardX) / cellWidth, row: y - boardY}, true
}

// wrap splits text into lines of at most width runes, breaking on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
