package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nkornelsen/chess3d/internal/model"
	"github.com/nkornelsen/chess3d/internal/wire"
)

// Conn is the outbound half of a player's connection.
type Conn interface {
	Send(msg wire.Message) error
	Close() error
}

type rosterEntry struct {
	player model.Player
	conn   Conn
}

// Roster is the ordered list of connected players.
type Roster struct {
	entries []rosterEntry
	mu      sync.Mutex
}

func NewRoster() *Roster {
	return &Roster{
		entries: []rosterEntry{},
	}
}

// Add registers conn under the lowest seat not held by a connected player.
func (r *Roster) Add(conn Conn) model.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken := make(map[int]bool, len(r.entries))
	for _, e := range r.entries {
		taken[e.player.ID] = true
	}
	seat := 0
	for taken[seat] {
		seat++
	}

	player := model.Player{
		ID:       seat,
		ConnID:   uuid.New().String(),
		JoinedAt: time.Now(),
	}
	r.entries = append(r.entries, rosterEntry{player: player, conn: conn})
	return player
}

// Remove drops the entry for connID and reports whether it was present.
func (r *Roster) Remove(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.player.ConnID == connID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Players returns the connected players ordered by seat.
func (r *Roster) Players() []model.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]model.Player, 0, len(r.entries))
	for _, e := range r.entries {
		players = append(players, e.player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}

func (r *Roster) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Roster) snapshot() []rosterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]rosterEntry(nil), r.entries...)
}
