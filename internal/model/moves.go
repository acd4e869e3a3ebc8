package model

// Direction seeds. Each table holds one vector per direction pair; the
// generators add the mirrored (negated) vector themselves.
var (
	rookDirs = []Position{
		{X: 1, Y: 0, Z: 0}, // xy plane
		{X: 0, Y: 0, Z: 1}, // xz plane
		{X: 0, Y: 1, Z: 0}, // yz plane
	}
	bishopDirs = []Position{
		{X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, // xy plane
		{X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, // xz plane
		{X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: 1}, // yz plane
	}
	queenDirs = append(append([]Position{}, rookDirs...), bishopDirs...)

	knightDirs = []Position{
		{X: -1, Y: 2, Z: 0}, {X: 1, Y: 2, Z: 0}, {X: 2, Y: -1, Z: 0}, {X: 2, Y: 1, Z: 0}, // xy plane
		{X: 1, Y: 0, Z: 2}, {X: -1, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 1}, {X: 2, Y: 0, Z: -1}, // xz plane
		{X: 0, Y: 1, Z: 2}, {X: 0, Y: -1, Z: 2}, {X: 0, Y: 2, Z: 1}, {X: 0, Y: 2, Z: -1}, // yz plane
	}
	// Pawn vectors are written for White; Black uses them negated.
	pawnSteps    = []Position{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	pawnCaptures = []Position{
		{X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1},
		{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
)

// mirrored returns dirs followed by each of them negated.
func mirrored(dirs []Position) []Position {
	out := make([]Position, 0, len(dirs)*2)
	out = append(out, dirs...)
	for _, d := range dirs {
		out = append(out, d.Mul(-1))
	}
	return out
}

// PieceMoves returns every destination the piece at pos may move to. An
// empty source yields no moves. pos must be valid.
func (b *Board) PieceMoves(pos Position) []Move {
	piece := b.At(pos)
	switch piece.Type {
	case Pawn:
		return b.getPawnMoves(pos, piece)
	case Knight:
		return b.getStepMoves(pos, piece, mirrored(knightDirs))
	case Bishop:
		return b.getSlidingMoves(pos, piece, mirrored(bishopDirs))
	case Rook:
		return b.getSlidingMoves(pos, piece, mirrored(rookDirs))
	case Queen:
		return b.getSlidingMoves(pos, piece, mirrored(queenDirs))
	case King:
		return b.getStepMoves(pos, piece, mirrored(queenDirs))
	default:
		return nil
	}
}

func (b *Board) getSlidingMoves(pos Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target := pos.Add(dir)
		for target.Valid() {
			occupant := b.At(target)
			if occupant.IsEmpty() {
				moves = append(moves, Move{From: pos, To: target, Piece: piece})
			} else if occupant.Color != piece.Color {
				moves = append(moves, Move{From: pos, To: target, Piece: piece})
				break
			} else {
				break
			}
			target = target.Add(dir)
		}
	}
	return moves
}

// getStepMoves handles the single-step pieces: knight and king.
func (b *Board) getStepMoves(pos Position, piece Piece, offsets []Position) []Move {
	moves := []Move{}
	for _, offset := range offsets {
		target := pos.Add(offset)
		if !target.Valid() {
			continue
		}
		if occupant := b.At(target); occupant.IsEmpty() || occupant.Color != piece.Color {
			moves = append(moves, Move{From: pos, To: target, Piece: piece})
		}
	}
	return moves
}

func (b *Board) getPawnMoves(pos Position, piece Piece) []Move {
	sign := 1
	if piece.Color == Black {
		sign = -1
	}
	maxDistance := 1
	if !piece.HasMoved {
		maxDistance = 2
	}

	moves := []Move{}
	for _, step := range pawnSteps {
		dir := step.Mul(sign)
		target := pos.Add(dir)
		for distance := 1; distance <= maxDistance && target.Valid(); distance++ {
			if !b.At(target).IsEmpty() {
				break
			}
			moves = append(moves, Move{From: pos, To: target, Piece: piece})
			target = target.Add(dir)
		}
	}
	for _, capture := range pawnCaptures {
		target := pos.Add(capture.Mul(sign))
		if !target.Valid() {
			continue
		}
		if occupant := b.At(target); !occupant.IsEmpty() && occupant.Color != piece.Color {
			moves = append(moves, Move{From: pos, To: target, Piece: piece})
		}
	}
	return moves
}
