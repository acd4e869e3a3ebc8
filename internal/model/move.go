package model

import "fmt"

// Move records a source, a destination and the piece standing on the
// source when the move was generated.
type Move struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Piece Piece    `json:"piece"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s->%s", m.Piece.Character(), m.From, m.To)
}
