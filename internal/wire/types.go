package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nkornelsen/chess3d/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeBoardUpdate MessageType = "boardUpdate"
	MessageTypePlayerMove  MessageType = "playerMove"
)

var ErrUnexpectedType = errors.New("unexpected message type")

// Message is one tagged value on the wire. Receivers ignore types they do
// not know.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type BoardUpdate struct {
	Board model.Board `json:"board"`
}

type PlayerMove struct {
	Move model.Move `json:"move"`
}

func NewBoardUpdate(board *model.Board) (Message, error) {
	return newMessage(MessageTypeBoardUpdate, BoardUpdate{Board: *board})
}

func NewPlayerMove(move model.Move) (Message, error) {
	return newMessage(MessageTypePlayerMove, PlayerMove{Move: move})
}

func newMessage(t MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: data}, nil
}

// BoardUpdate decodes the payload of a boardUpdate message.
func (m Message) BoardUpdate() (*model.Board, error) {
	if m.Type != MessageTypeBoardUpdate {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedType, m.Type)
	}
	var update BoardUpdate
	if err := json.Unmarshal(m.Payload, &update); err != nil {
		return nil, fmt.Errorf("decode board update: %w", err)
	}
	return &update.Board, nil
}

// PlayerMove decodes the payload of a playerMove message.
func (m Message) PlayerMove() (model.Move, error) {
	if m.Type != MessageTypePlayerMove {
		return model.Move{}, fmt.Errorf("%w: %s", ErrUnexpectedType, m.Type)
	}
	var pm PlayerMove
	if err := json.Unmarshal(m.Payload, &pm); err != nil {
		return model.Move{}, fmt.Errorf("decode player move: %w", err)
	}
	return pm.Move, nil
}

// Encode returns the UTF-8 JSON text carried inside a frame.
func Encode(m Message) ([]byte, error) {
	return json.Marshal(m)
}

func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	return m, nil
}
