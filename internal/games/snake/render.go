package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudRows = 2 // Status line plus separator

// Board glyphs.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// MinScreenSize returns the smallest screen that fits the HUD and the board.
func (g *Game) MinScreenSize() (w, h int) {
	return g.grid.Width + 2, g.grid.Height + 2 + hudRows
}

// Render draws the HUD and the board into dst. The board is drawn top-down,
// so the row with the highest Y appears first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - minW) / 2
	oy := hudRows
	dst.DrawBox(ox, oy, minW, g.grid.Height+2, core.ColorGray)

	for _, rc := range g.Cells() {
		sx, sy := g.screenPos(ox, oy, rc.Cell)
		switch rc.Role {
		case RoleHead:
			dst.SetColored(sx, sy, glyphHead, core.ColorBrightGreen)
		case RoleBody:
			dst.SetColored(sx, sy, glyphBody, core.ColorGreen)
		case RoleFood:
			dst.SetColored(sx, sy, glyphFood, core.ColorRed)
		}
	}

	if g.state == StateGameOver {
		mid := oy + (g.grid.Height+2)/2
		dst.DrawTextCentered(mid-1, fmt.Sprintf(" Game over: %s ", g.cause))
		dst.DrawTextCentered(mid, " Press R to restart ")
	}
}

// screenPos maps a grid cell to screen coordinates inside the board box.
func (g *Game) screenPos(ox, oy int, c core.Cell) (int, int) {
	return ox + 1 + c.X, oy + 1 + (g.grid.Height - 1 - c.Y)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Length: %d  Eaten: %d  Resets: %d", g.snake.Len(), g.eaten, g.resets)
	if _, ok := g.food.Food(); !ok && g.cfg.Rules.FoodSpawn == config.FoodSpawnTimer {
		hud += fmt.Sprintf("  Food in: %.1fs", g.foodTimer.Remaining().Seconds())
	}
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}
