package tui

import (
	"sync"

	"github.com/nkornelsen/chess3d/internal/model"
)

// Game is what the terminal front-end plays against: a networked mirror or
// a local board.
type Game interface {
	Board() model.Board
	Submit(m model.Move) error
	Updates() <-chan struct{}
	Status() string
}

// LocalGame applies moves directly to its own board.
type LocalGame struct {
	mu      sync.Mutex
	board   *model.Board
	updates chan struct{}
}

func NewLocalGame() *LocalGame {
	return &LocalGame{
		board:   model.NewBoard(),
		updates: make(chan struct{}, 1),
	}
}

func (g *LocalGame) Board() model.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.board
}

func (g *LocalGame) Submit(m model.Move) error {
	g.mu.Lock()
	m.Piece = g.board.At(m.From)
	g.board.ExecuteMove(m)
	g.mu.Unlock()

	select {
	case g.updates <- struct{}{}:
	default:
	}
	return nil
}

func (g *LocalGame) Updates() <-chan struct{} {
	return g.updates
}

func (g *LocalGame) Status() string {
	return "offline | click a piece, then a green cell | q quits"
}
