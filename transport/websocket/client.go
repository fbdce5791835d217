package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

const writeWait = 10 * time.Second

// client is one browser connection. It is bound to at most one session at a time.
type client struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	mu        sync.Mutex
	sessionID string
	ticking   bool
}

func (that *client) send(msg Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) bind(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessionID = id
	that.ticking = false
}

func (that *client) session() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sessionID
}

// track remembers whether the bound session needs Sudden Death polling.
func (that *client) track(view session.View) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.ticking = view.Twists.SuddenDeath && view.Phase == session.PhaseInProgress
}

func (that *client) tickTarget() (string, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sessionID, that.ticking && that.sessionID != ""
}
