package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/nkornelsen/chess3d/internal/client"
	"github.com/nkornelsen/chess3d/internal/config"
	"github.com/nkornelsen/chess3d/internal/tui"
)

// networkGame adapts a client mirror to the terminal front-end.
type networkGame struct {
	*client.Client
	addr string
}

func (g networkGame) Status() string {
	select {
	case <-g.Done():
		if err := g.Err(); err != nil {
			return fmt.Sprintf("disconnected from %s: %v | q quits", g.addr, err)
		}
		return fmt.Sprintf("game over on %s | q quits", g.addr)
	default:
		return fmt.Sprintf("connected to %s | click a piece, then a green cell | q quits", g.addr)
	}
}

func main() {
	cfg, err := config.LoadClient(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The terminal belongs to the board; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var game tui.Game
	if cfg.Offline {
		game = tui.NewLocalGame()
	} else {
		c, err := client.Dial(cfg.Addr, cfg.DialTimeout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer c.Close()
		go c.Run()
		game = networkGame{Client: c, addr: cfg.Addr}
		log.Printf("connected to %s", cfg.Addr)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err := tui.Run(screen, game); err != nil {
		log.Printf("ui stopped: %v", err)
	}
}
