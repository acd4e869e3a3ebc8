package service

import (
	"fmt"

	"github.com/nkornelsen/chess3d/internal/model"
	"github.com/nkornelsen/chess3d/internal/wire"
)

type GameService struct {
	session *Session
}

type GameSnapshot struct {
	GameID  string         `json:"gameId"`
	Board   model.Board    `json:"board"`
	Players []model.Player `json:"players"`
}

func NewGameService(session *Session) *GameService {
	return &GameService{
		session: session,
	}
}

func (gs *GameService) RegisterConnection(conn Conn) (model.Player, error) {
	return gs.session.Join(conn)
}

func (gs *GameService) UnregisterConnection(player model.Player) {
	gs.session.Leave(player)
}

// HandleMessage routes one inbound message from player. Moves that fail
// gating are dropped silently; unknown message types are ignored. Only a
// payload that cannot be decoded is reported.
func (gs *GameService) HandleMessage(player model.Player, msg wire.Message) error {
	switch msg.Type {
	case wire.MessageTypePlayerMove:
		move, err := msg.PlayerMove()
		if err != nil {
			return fmt.Errorf("player %d: %w", player.ID, err)
		}
		gs.session.SubmitMove(player.ID, move)
	}
	return nil
}

func (gs *GameService) IsRunning() bool {
	return gs.session.IsRunning()
}

func (gs *GameService) GetGame() GameSnapshot {
	return GameSnapshot{
		GameID:  gs.session.ID,
		Board:   gs.session.Board(),
		Players: gs.session.Players(),
	}
}

func (gs *GameService) GetBoard() model.Board {
	return gs.session.Board()
}

func (gs *GameService) GetPieceMoves(pos model.Position) ([]model.Move, error) {
	return gs.session.PieceMoves(pos)
}
