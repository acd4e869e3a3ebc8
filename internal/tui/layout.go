// Package tui draws the eight board layers side by side in a terminal and
// turns mouse clicks into board positions and moves.
package tui

import "github.com/nkornelsen/chess3d/internal/model"

// Screen geometry. Layer z occupies a boxed panel starting at column
// panelWidth*z+1; each cell is cellWidth columns wide and y grows upward.
const (
	panelWidth = 19
	cellWidth  = 2
	originX    = 2
	originY    = 2

	statusRow = originY + model.BoardSize + 2
)

// CellOrigin returns the screen column and row of the left edge of pos.
func CellOrigin(pos model.Position) (int, int) {
	col := originX + panelWidth*pos.Z + cellWidth*pos.X
	row := originY + (model.BoardSize - 1 - pos.Y)
	return col, row
}

// Locate maps a screen cell to a board position. Borders, gaps and
// anything outside the panels yield false.
func Locate(col, row int) (model.Position, bool) {
	if col < originX || row < originY {
		return model.Position{}, false
	}
	z := (col - originX) / panelWidth
	x := (col - originX - panelWidth*z) / cellWidth
	y := model.BoardSize - 1 - (row - originY)
	pos := model.Position{X: x, Y: y, Z: z}
	if !pos.Valid() {
		return model.Position{}, false
	}
	return pos, true
}
