package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/nkornelsen/chess3d/internal/model"
)

var (
	lightSquare = tcell.StyleDefault.Background(tcell.ColorSilver)
	darkSquare  = tcell.StyleDefault.Background(tcell.ColorGray)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorYellow)
	targetStyle = tcell.StyleDefault.Background(tcell.ColorGreen)
	borderStyle = tcell.StyleDefault
)

// Draw paints board, the selection and a status line, then shows the
// screen.
func Draw(screen tcell.Screen, board *model.Board, sel *Selection, status string) {
	screen.Clear()
	for z := 0; z < model.BoardSize; z++ {
		drawPanel(screen, panelWidth*z+1, originY-1, z)
	}

	for x := 0; x < model.BoardSize; x++ {
		for y := 0; y < model.BoardSize; y++ {
			for z := 0; z < model.BoardSize; z++ {
				pos := model.Position{X: x, Y: y, Z: z}
				drawCell(screen, pos, board.At(pos), cellStyle(pos, sel))
			}
		}
	}

	drawText(screen, 1, statusRow, tcell.StyleDefault, status)
	screen.Show()
}

func cellStyle(pos model.Position, sel *Selection) tcell.Style {
	switch {
	case sel != nil && sel.Cursor != nil && *sel.Cursor == pos:
		return cursorStyle
	case sel != nil && sel.IsTarget(pos):
		return targetStyle
	case (pos.X+pos.Y+pos.Z)%2 == 0:
		return darkSquare
	default:
		return lightSquare
	}
}

func drawCell(screen tcell.Screen, pos model.Position, piece model.Piece, style tcell.Style) {
	col, row := CellOrigin(pos)
	ch := ' '
	if !piece.IsEmpty() {
		ch = []rune(piece.Character())[0]
		switch piece.Color {
		case model.White:
			style = style.Foreground(tcell.ColorWhite).Bold(true)
		case model.Black:
			style = style.Foreground(tcell.ColorBlack)
		}
	}
	screen.SetContent(col, row, ' ', nil, style)
	screen.SetContent(col+1, row, ch, nil, style)
}

// drawPanel boxes one layer: 16 cell columns plus borders, 8 rows plus
// borders.
func drawPanel(screen tcell.Screen, left, top, z int) {
	right := left + panelWidth - 2
	bottom := top + model.BoardSize + 1
	for col := left + 1; col < right; col++ {
		screen.SetContent(col, top, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for row := top + 1; row < bottom; row++ {
		screen.SetContent(left, row, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(right, row, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
	drawText(screen, left+2, top, borderStyle, fmt.Sprintf(" z=%d ", z))
}

func drawText(screen tcell.Screen, col, row int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}
