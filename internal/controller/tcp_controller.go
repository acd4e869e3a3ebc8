package controller

import (
	"context"
	"errors"
	"io"
	"log"
	"net"

	"github.com/nkornelsen/chess3d/internal/service"
	"github.com/nkornelsen/chess3d/internal/wire"
)

// TCPController serves the length-prefixed frame protocol.
type TCPController struct {
	gameService *service.GameService
	opts        Options
}

func NewTCPController(gameService *service.GameService, opts Options) *TCPController {
	return &TCPController{
		gameService: gameService,
		opts:        opts,
	}
}

// Serve accepts connections until ctx is done or the listener fails. Each
// connection is handled on its own goroutine.
func (tc *TCPController) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go tc.HandleConnection(ctx, conn)
	}
}

// HandleConnection registers the peer, then applies its messages until the
// game stops, the read fails or ctx is done.
func (tc *TCPController) HandleConnection(ctx context.Context, c net.Conn) {
	log.Printf("connection received from %s", c.RemoteAddr())
	conn := wire.NewConn(c,
		wire.WithWriteTimeout(tc.opts.WriteTimeout),
		wire.WithMaxFrameSize(tc.opts.MaxFrameSize),
	)
	defer conn.Close()

	player, err := tc.gameService.RegisterConnection(conn)
	if err != nil {
		log.Printf("failed to register connection from %s: %v", conn.RemoteAddr(), err)
		return
	}
	defer tc.gameService.UnregisterConnection(player)

	limiter := tc.opts.newLimiter()
	for tc.gameService.IsRunning() {
		msg, err := conn.Receive()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("read error from player %d: %v", player.ID, err)
			}
			return
		}
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if err := tc.gameService.HandleMessage(player, msg); err != nil {
			log.Printf("handle error: %v", err)
			return
		}
	}
}
