package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/nkornelsen/chess3d/internal/model"
	"github.com/nkornelsen/chess3d/internal/wire"
)

var (
	ErrSessionClosed   = errors.New("session is not running")
	ErrInvalidPosition = errors.New("position out of range")
)

// Session owns the authoritative board and the roster. Every read or
// write of the board, and every broadcast, happens under mu.
type Session struct {
	ID     string
	mu     sync.Mutex
	board  *model.Board
	roster *Roster
}

func NewSession() *Session {
	return &Session{
		ID:     uuid.New().String(),
		board:  model.NewBoard(),
		roster: NewRoster(),
	}
}

// Join registers conn and sends it the current board before any later
// broadcast can reach it.
func (s *Session) Join(conn Conn) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.IsRunning() {
		return model.Player{}, ErrSessionClosed
	}
	snapshot, err := wire.NewBoardUpdate(s.board)
	if err != nil {
		return model.Player{}, err
	}

	player := s.roster.Add(conn)
	if err := conn.Send(snapshot); err != nil {
		s.roster.Remove(player.ConnID)
		return model.Player{}, fmt.Errorf("send initial board: %w", err)
	}
	log.Printf("player %d joined session %s (conn %s)", player.ID, s.ID, player.ConnID)
	return player, nil
}

func (s *Session) Leave(player model.Player) {
	if s.roster.Remove(player.ConnID) {
		log.Printf("player %d left session %s (conn %s)", player.ID, s.ID, player.ConnID)
	}
}

// SubmitMove applies move on behalf of seat playerID if that seat owns
// the piece currently standing on move.From. On success the post-move
// board has been sent to every connected player and is returned; any
// rejection leaves the board untouched and sends nothing.
func (s *Session) SubmitMove(playerID int, move model.Move) (wire.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.IsRunning() {
		return wire.Message{}, false
	}
	if !move.From.Valid() || !move.To.Valid() {
		log.Printf("dropping move %s from player %d: out of range", move, playerID)
		return wire.Message{}, false
	}
	occupant := s.board.At(move.From)
	color, ok := model.SeatColor(playerID)
	if !ok || occupant.IsEmpty() || occupant.Color != color {
		log.Printf("dropping move %s from player %d: not theirs to move", move, playerID)
		return wire.Message{}, false
	}

	move.Piece = occupant
	s.board.ExecuteMove(move)
	log.Printf("player %d executed %s", playerID, move)

	update, err := wire.NewBoardUpdate(s.board)
	if err != nil {
		log.Printf("failed to encode board update: %v", err)
		return wire.Message{}, false
	}
	s.broadcast(update)
	return update, true
}

// broadcast sends msg to every roster entry, pruning the ones whose send
// fails. The caller holds s.mu.
func (s *Session) broadcast(msg wire.Message) {
	for _, e := range s.roster.snapshot() {
		if err := e.conn.Send(msg); err != nil {
			log.Printf("failed to send board to player %d, dropping: %v", e.player.ID, err)
			s.roster.Remove(e.player.ConnID)
			e.conn.Close()
		}
	}
}

// Board returns a copy of the authoritative board.
func (s *Session) Board() model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.board
}

func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.IsRunning()
}

func (s *Session) PieceMoves(pos model.Position) ([]model.Move, error) {
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.PieceMoves(pos), nil
}

func (s *Session) Players() []model.Player {
	return s.roster.Players()
}
