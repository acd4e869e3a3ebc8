package tui

import "github.com/nkornelsen/chess3d/internal/model"

// Selection is the cursor and the destinations highlighted for it.
type Selection struct {
	Cursor *model.Position
	Moves  []model.Move
}

// Click handles a click on pos. Clicking a highlighted destination returns
// that move and clears the selection; any other click selects pos.
func (s *Selection) Click(board *model.Board, pos model.Position) (model.Move, bool) {
	for _, m := range s.Moves {
		if m.To == pos {
			s.Clear()
			return m, true
		}
	}
	s.Cursor = &pos
	s.Moves = board.PieceMoves(pos)
	return model.Move{}, false
}

// Refresh recomputes the highlighted moves against a new board.
func (s *Selection) Refresh(board *model.Board) {
	if s.Cursor != nil {
		s.Moves = board.PieceMoves(*s.Cursor)
	}
}

func (s *Selection) Clear() {
	s.Cursor = nil
	s.Moves = nil
}

func (s *Selection) IsTarget(pos model.Position) bool {
	for _, m := range s.Moves {
		if m.To == pos {
			return true
		}
	}
	return false
}
