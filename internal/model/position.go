package model

import "fmt"

// BoardSize is the extent of every axis of the lattice.
const BoardSize = 8

// Position is a cell of the 8x8x8 lattice, or an offset between two cells.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Position) Mul(f int) Position {
	return Position{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// Valid reports whether every component lies in [0, BoardSize).
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < BoardSize &&
		p.Y >= 0 && p.Y < BoardSize &&
		p.Z >= 0 && p.Z < BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
