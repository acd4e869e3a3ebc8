package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/nkornelsen/chess3d/internal/model"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(panelWidth*model.BoardSize+2, statusRow+2)
	return s
}

func TestLocateInvertsCellOrigin(t *testing.T) {
	for x := 0; x < model.BoardSize; x++ {
		for y := 0; y < model.BoardSize; y++ {
			for z := 0; z < model.BoardSize; z++ {
				pos := model.Position{X: x, Y: y, Z: z}
				col, row := CellOrigin(pos)
				for _, c := range []int{col, col + 1} {
					got, ok := Locate(c, row)
					if !ok || got != pos {
						t.Fatalf("Locate(%d, %d) = %v, %v; want %v", c, row, got, ok, pos)
					}
				}
			}
		}
	}
}

func TestLocateRejectsBorders(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
	}{
		{"left border of first panel", 1, 5},
		{"right border of first panel", 18, 5},
		{"gap between panels", 19, 5},
		{"left border of second panel", 20, 5},
		{"top border", 5, 1},
		{"bottom border", 5, originY + model.BoardSize},
		{"status row", 5, statusRow},
		{"past last panel", panelWidth*model.BoardSize + 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pos, ok := Locate(tt.col, tt.row); ok {
				t.Fatalf("expected no cell at (%d, %d), got %v", tt.col, tt.row, pos)
			}
		})
	}
}

func TestSelectionClick(t *testing.T) {
	board := model.NewBoard()
	var sel Selection

	pawn := model.Position{X: 4, Y: 1, Z: 0}
	if _, ok := sel.Click(board, pawn); ok {
		t.Fatalf("selecting a piece must not produce a move")
	}
	if sel.Cursor == nil || *sel.Cursor != pawn {
		t.Fatalf("expected cursor on %v, got %v", pawn, sel.Cursor)
	}
	if len(sel.Moves) == 0 {
		t.Fatalf("expected highlighted moves for the pawn")
	}

	target := model.Position{X: 4, Y: 3, Z: 0}
	if !sel.IsTarget(target) {
		t.Fatalf("expected %v to be highlighted", target)
	}
	move, ok := sel.Click(board, target)
	if !ok {
		t.Fatalf("clicking a highlighted cell must produce a move")
	}
	if move.From != pawn || move.To != target {
		t.Fatalf("unexpected move %v", move)
	}
	if sel.Cursor != nil || sel.Moves != nil {
		t.Fatalf("selection must be cleared after a move")
	}

	// Clicking a non-target cell reselects.
	empty := model.Position{X: 4, Y: 4, Z: 4}
	sel.Click(board, pawn)
	if _, ok := sel.Click(board, empty); ok {
		t.Fatalf("clicking a non-target must not produce a move")
	}
	if *sel.Cursor != empty || len(sel.Moves) != 0 {
		t.Fatalf("expected empty cell selected with no moves, got %v %v", sel.Cursor, sel.Moves)
	}
}

func TestDraw(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	board := model.NewBoard()
	sel := Selection{}
	sel.Click(board, model.Position{X: 0, Y: 1, Z: 0})
	Draw(s, board, &sel, "hello")

	tests := []struct {
		pos  model.Position
		want rune
	}{
		{model.Position{X: 0, Y: 0, Z: 0}, 'R'},
		{model.Position{X: 4, Y: 0, Z: 0}, 'K'},
		{model.Position{X: 3, Y: 7, Z: 7}, 'q'},
		{model.Position{X: 5, Y: 6, Z: 7}, 'p'},
		{model.Position{X: 5, Y: 4, Z: 3}, ' '},
	}
	for _, tt := range tests {
		col, row := CellOrigin(tt.pos)
		got, _, _, _ := s.GetContent(col+1, row)
		if got != tt.want {
			t.Errorf("cell %v: expected %q, got %q", tt.pos, tt.want, got)
		}
	}

	col, row := CellOrigin(model.Position{X: 0, Y: 1, Z: 0})
	_, _, style, _ := s.GetContent(col, row)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorYellow {
		t.Errorf("expected cursor background, got %v", bg)
	}
	col, row = CellOrigin(model.Position{X: 0, Y: 3, Z: 0})
	_, _, style, _ = s.GetContent(col, row)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorGreen {
		t.Errorf("expected target background, got %v", bg)
	}

	status := make([]rune, 0, 5)
	for i := 0; i < 5; i++ {
		r, _, _, _ := s.GetContent(1+i, statusRow)
		status = append(status, r)
	}
	if string(status) != "hello" {
		t.Errorf("expected status line, got %q", string(status))
	}
}

func TestLocalGameSubmit(t *testing.T) {
	g := NewLocalGame()
	board := g.Board()
	move := board.PieceMoves(model.Position{X: 1, Y: 0, Z: 0})[0]
	if err := g.Submit(move); err != nil {
		t.Fatalf("submit: %v", err)
	}
	select {
	case <-g.Updates():
	default:
		t.Fatalf("expected an update signal")
	}
	after := g.Board()
	if !after.At(move.From).IsEmpty() || after.At(move.To) != board.At(move.From) {
		t.Fatalf("move not applied:\n%s", after.String())
	}
}

func TestRunPlaysClickedMove(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()
	g := NewLocalGame()

	click := func(pos model.Position) {
		col, row := CellOrigin(pos)
		s.InjectMouse(col, row, tcell.Button1, tcell.ModNone)
		s.InjectMouse(col, row, tcell.ButtonNone, tcell.ModNone)
	}
	from := model.Position{X: 0, Y: 1, Z: 0}
	to := model.Position{X: 0, Y: 2, Z: 0}
	click(from)
	click(to)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errc := make(chan error, 1)
	go func() { errc <- Run(s, g) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after q")
	}

	board := g.Board()
	if !board.At(from).IsEmpty() {
		t.Fatalf("expected %v to be empty", from)
	}
	if p := board.At(to); p.Type != model.Pawn || !p.HasMoved {
		t.Fatalf("expected moved pawn at %v, got %+v", to, p)
	}
}

func TestWakeSurvivesFullEventQueue(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()
	g := NewLocalGame()

	quit := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		wake(s, g, quit)
		close(stopped)
	}()

	if err := g.Submit(model.Move{From: model.Position{X: 1, Y: 0, Z: 0}, To: model.Position{X: 0, Y: 2, Z: 0}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	interrupted := make(chan struct{})
	go func() {
		for {
			switch s.PollEvent().(type) {
			case *tcell.EventInterrupt:
				close(interrupted)
				return
			case nil:
				return
			}
		}
	}()
	select {
	case <-interrupted:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an update to post an interrupt")
	}

	// Fill the queue, then keep signalling updates; wake must not stall.
	for s.PostEvent(tcell.NewEventInterrupt(nil)) == nil {
	}
	for i := 0; i < 5; i++ {
		g.Submit(model.Move{From: model.Position{X: 0, Y: 2, Z: 0}, To: model.Position{X: 1, Y: 0, Z: 0}})
		time.Sleep(10 * time.Millisecond)
	}
	close(quit)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("wake did not stop with a full event queue")
	}
}
