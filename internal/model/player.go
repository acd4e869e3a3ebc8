package model

import "time"

// Seats that may move pieces. Any other seat is an observer.
const (
	WhiteSeat = 0
	BlackSeat = 1
)

type Player struct {
	ID       int       `json:"id"`
	ConnID   string    `json:"connId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Color returns the side the player's seat moves, or false for observers.
func (p Player) Color() (Color, bool) {
	return SeatColor(p.ID)
}

func SeatColor(seat int) (Color, bool) {
	switch seat {
	case WhiteSeat:
		return White, true
	case BlackSeat:
		return Black, true
	}
	return "", false
}
