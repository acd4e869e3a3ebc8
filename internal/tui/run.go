package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
)

// Run draws game on screen and handles input until the user quits or the
// screen is finalized. The screen must already be initialized.
func Run(screen tcell.Screen, game Game) error {
	screen.EnableMouse(tcell.MouseButtonEvents)
	defer screen.DisableMouse()

	quit := make(chan struct{})
	defer close(quit)
	go wake(screen, game, quit)

	var (
		sel     Selection
		pressed bool
		notice  string
	)
	for {
		board := game.Board()
		status := game.Status()
		if notice != "" {
			status = fmt.Sprintf("%s | %s", status, notice)
		}
		Draw(screen, &board, &sel, status)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			// Act on release so a single click fires once.
			if ev.Buttons()&tcell.Button1 != 0 {
				pressed = true
				continue
			}
			if !pressed {
				continue
			}
			pressed = false
			pos, ok := Locate(ev.Position())
			if !ok {
				sel.Clear()
				continue
			}
			if move, ok := sel.Click(&board, pos); ok {
				notice = ""
				if err := game.Submit(move); err != nil {
					notice = fmt.Sprintf("send failed: %v", err)
				}
			}
		case *tcell.EventInterrupt:
			board = game.Board()
			sel.Refresh(&board)
		}
	}
}

// wake turns game updates into interrupt events so PollEvent returns and
// the board is redrawn.
func wake(screen tcell.Screen, game Game, quit <-chan struct{}) {
	var done <-chan struct{}
	if d, ok := game.(interface{ Done() <-chan struct{} }); ok {
		done = d.Done()
	}
	for {
		select {
		case <-game.Updates():
		case <-done:
			done = nil
		case <-quit:
			return
		}
		// A full queue already holds an event that will trigger a redraw.
		if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil && !errors.Is(err, tcell.ErrEventQFull) {
			log.Printf("post redraw: %v", err)
		}
	}
}
