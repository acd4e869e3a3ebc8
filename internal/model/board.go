package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "."
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is the content of one cell. The zero Piece is an empty cell.
// HasMoved is only meaningful for pawns.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved,omitempty"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// Character is the one letter board notation: uppercase for White,
// lowercase for Black and '.' for an empty cell.
func (p Piece) Character() string {
	n := p.Type.getPieceNotation()
	if p.Color == Black {
		return strings.ToLower(n)
	}
	return n
}

func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	type piece Piece
	return json.Marshal(piece(p))
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Piece{}
		return nil
	}
	type piece Piece
	var v piece
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.Type {
	case King, Queen, Rook, Bishop, Knight, Pawn:
	default:
		return fmt.Errorf("unknown piece type %q", v.Type)
	}
	if v.Color != White && v.Color != Black {
		return fmt.Errorf("unknown piece color %q", v.Color)
	}
	*p = Piece(v)
	return nil
}

// Board is the full 8x8x8 lattice indexed [x][y][z]. It is a plain value:
// assigning a Board copies every cell.
type Board struct {
	Cells   [BoardSize][BoardSize][BoardSize]Piece `json:"cells"`
	Running bool                                   `json:"running"`
}

var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the initial position: White on the z=0 layer, Black on
// the z=7 layer.
func NewBoard() *Board {
	board := &Board{Running: true}
	for x := 0; x < BoardSize; x++ {
		board.Cells[x][1][0] = Piece{Type: Pawn, Color: White}
		board.Cells[x][6][7] = Piece{Type: Pawn, Color: Black}
		board.Cells[x][0][0] = Piece{Type: backRank[x], Color: White}
		board.Cells[x][7][7] = Piece{Type: backRank[x], Color: Black}
	}
	return board
}

// At returns the occupant of pos. pos must be valid.
func (b *Board) At(pos Position) Piece {
	return b.Cells[pos.X][pos.Y][pos.Z]
}

// Set overwrites the cell at pos. pos must be valid.
func (b *Board) Set(pos Position, p Piece) {
	b.Cells[pos.X][pos.Y][pos.Z] = p
}

func (b *Board) IsRunning() bool {
	return b.Running
}

// ExecuteMove applies m without re-checking legality. The pawn flag is
// driven by the piece recorded in m, not by the board.
func (b *Board) ExecuteMove(m Move) {
	b.Set(m.To, b.At(m.From))
	b.Set(m.From, Piece{})
	if m.Piece.Type == Pawn && !m.Piece.HasMoved {
		b.Set(m.To, Piece{Type: Pawn, Color: m.Piece.Color, HasMoved: true})
	}
}

// Replace overwrites every cell and the running flag with other's.
func (b *Board) Replace(other *Board) {
	b.Cells = other.Cells
	b.Running = other.Running
}

func (b *Board) String() string {
	var sb strings.Builder
	for z := 0; z < BoardSize; z++ {
		fmt.Fprintf(&sb, "Board %d:\n", z)
		for y := BoardSize - 1; y >= 0; y-- {
			for x := 0; x < BoardSize; x++ {
				sb.WriteString(b.Cells[x][y][z].Character())
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
