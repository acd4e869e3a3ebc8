package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/nkornelsen/chess3d/internal/service"
	"github.com/nkornelsen/chess3d/internal/wire"
)

type WebSocketController struct {
	gameService *service.GameService
	opts        Options
}

func NewWebSocketController(gameService *service.GameService, opts Options) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		opts:        opts,
	}
}

// wsConn carries one JSON-encoded wire.Message per text frame.
type wsConn struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	writeTimeout time.Duration
}

func (w *wsConn) Send(msg wire.Message) error {
	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.writeTimeout > 0 {
		if err := w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout)); err != nil {
			return err
		}
	}
	return w.conn.WriteMessage(websocket.TextMessage, data)
}

func (w *wsConn) Close() error {
	return w.conn.Close()
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals("clientID").(string)
	conn := &wsConn{conn: c, writeTimeout: wsc.opts.WriteTimeout}
	if wsc.opts.MaxFrameSize > 0 {
		c.SetReadLimit(int64(wsc.opts.MaxFrameSize))
	}

	player, err := wsc.gameService.RegisterConnection(conn)
	if err != nil {
		log.Printf("Failed to register connection for client %s: %v", clientID, err)
		c.Close()
		return
	}
	log.Printf("client %s seated as player %d", clientID, player.ID)

	limiter := wsc.opts.newLimiter()
	for wsc.gameService.IsRunning() {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		msg, err := wire.Decode(data)
		if err != nil {
			log.Printf("parse error: %v", err)
			break
		}
		if err := limiter.Wait(context.Background()); err != nil {
			break
		}
		if err := wsc.gameService.HandleMessage(player, msg); err != nil {
			log.Printf("handle error: %v", err)
			break
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(player)
	c.Close()
}
