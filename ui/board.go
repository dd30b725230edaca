// Package ui specifies custom controls for tview to play Reversi in the terminal.
package ui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/reversi"
	"reversi-local/types"
)

// boardOffsetX is the width of the row coordinates left of the board.
const boardOffsetX = 4

type ReversiBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selX       int
	selY       int
	skipped    reversi.Cell // color whose turn was skipped by the last update, or Empty
	message    string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	originX    int
	originY    int

	// Engine callbacks run on the engine's goroutine; updates are queued here in order and
	// applied on the tview event loop.
	mu    sync.Mutex
	queue []boardUpdate
}

// boardUpdate is one engine notification waiting for the event loop.
type boardUpdate struct {
	eng    engine.GameEngine // engine that sent it; updates from a replaced engine are dropped
	state  *types.BoardState
	color  reversi.Cell
	placed bool // color placed a stone
	skip   bool // color had no move and its turn was skipped
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ReversiBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ReversiBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *ReversiBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *ReversiBoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

// MoveSelection moves the cursor. The first call places it on the last move, or on the
// first valid move when there is none.
func (g *ReversiBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Stalled() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		switch {
		case g.BoardState.LastMove.Valid():
			g.selX, g.selY = g.BoardState.LastMove.X, g.BoardState.LastMove.Y
		case len(g.BoardState.ValidMoves) > 0:
			g.selX, g.selY = g.BoardState.ValidMoves[0].X, g.BoardState.ValidMoves[0].Y
		default:
			g.selX, g.selY = g.BoardState.Width()/2, g.BoardState.Height()/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *ReversiBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewReversiBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *ReversiBoardUI {
	board := &ReversiBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{LastMove: types.NoMove},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		mx, my := event.Position()
		x, y, ok := board.CellAt(mx, my)
		if !ok {
			return action, event
		}
		board.selX, board.selY = x, y
		board.PlayMove(x, y)
		return tview.MouseConsumed, nil
	})
	return board
}

func (g *ReversiBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	g.originX, g.originY = x, y
	if g.BoardState == nil || g.BoardState.Width() == 0 {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	// 2 characters per cell for square appearance
	boardW, boardH := g.BoardState.Width()*2, g.BoardState.Height()

	for boardY := 0; boardY < g.BoardState.Height(); boardY++ {
		for boardX := 0; boardX < g.BoardState.Width(); boardX++ {
			bg := g.styles[0]
			if theme.CheckeredBoard && (boardX+boardY)%2 == 1 {
				bg = g.styles[3]
			}

			var fg tcell.Color
			drawRune := theme.Symbols.BoardSquare
			switch g.BoardState.Board[boardY][boardX] {
			case reversi.Black:
				drawRune, fg = theme.Symbols.BlackStone, g.styles[1]
			case reversi.White:
				drawRune, fg = theme.Symbols.WhiteStone, g.styles[2]
			default:
				if theme.ShowValidMoves && g.BoardState.IsValidMove(boardX, boardY) {
					drawRune, fg = theme.Symbols.ValidMove, g.styles[4]
				}
			}

			if boardX == g.selX && boardY == g.selY {
				if theme.DrawCursorBackground {
					bg = g.styles[6]
				} else if g.BoardState.Board[boardY][boardX] == reversi.Empty {
					drawRune, fg = theme.Symbols.Cursor, g.styles[5]
				}
			} else if boardX == g.BoardState.LastMove.X && boardY == g.BoardState.LastMove.Y && theme.DrawLastPlayedBackground {
				bg = g.styles[7]
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, boardX, boardY, x+boardOffsetX, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	// Add offset for coordinate display
	return x, y, boardW + boardOffsetX, boardH + 2
}

// CellAt maps a screen position to a board square, using the position of the last draw.
func (g *ReversiBoardUI) CellAt(screenX, screenY int) (x, y int, ok bool) {
	if g.BoardState == nil || g.BoardState.Width() == 0 {
		return -1, -1, false
	}
	dx := screenX - (g.originX + boardOffsetX)
	dy := screenY - g.originY
	if dx < 0 || dy < 0 {
		return -1, -1, false
	}
	x, y = dx/2, dy
	if x >= g.BoardState.Width() || y >= g.BoardState.Height() {
		return -1, -1, false
	}
	return x, y, true
}

// ConnectEngine connects the board to a game engine.
func (g *ReversiBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.eng = e
	g.skipped = reversi.Empty
	g.message = ""
	g.ResetSelection()

	e.OnMove(func(x, y int, color reversi.Cell, boardState *types.BoardState) {
		skip := x == -1 && y == -1
		g.push(boardUpdate{eng: e, state: boardState, color: color, placed: !skip, skip: skip})
	})

	e.OnStall(func(reason string) {
		g.push(boardUpdate{eng: e, state: e.GetBoardState()})
	})

	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// push queues an update from the engine for the event loop.
func (g *ReversiBoardUI) push(u boardUpdate) {
	g.mu.Lock()
	g.queue = append(g.queue, u)
	g.mu.Unlock()

	if g.app == nil {
		g.drain()
		return
	}
	// Spawn goroutine to avoid deadlock when called from the event loop
	go func() {
		g.app.QueueUpdateDraw(g.drain)
	}()
}

// drain applies every queued update in arrival order. It runs on the event loop.
func (g *ReversiBoardUI) drain() {
	g.mu.Lock()
	updates := g.queue
	g.queue = nil
	g.mu.Unlock()

	applied := false
	for _, u := range updates {
		if u.eng == nil || u.eng != g.eng {
			continue
		}
		g.BoardState = u.state
		switch {
		case u.skip:
			g.skipped = u.color
		case u.placed && u.color == g.skipped:
			g.skipped = reversi.Empty
		}
		if u.state.Stalled() {
			g.ResetSelection()
		}
		applied = true
	}
	if applied {
		g.refreshHint()
	}
}

// PlayMove plays a move at the given coordinates.
func (g *ReversiBoardUI) PlayMove(x, y int) {
	if g.eng == nil || !g.eng.IsMyTurn() {
		return
	}
	g.message = ""
	if err := g.eng.PlayMove(x, y); err != nil {
		var illegal *reversi.IllegalMoveError
		if errors.As(err, &illegal) {
			g.message = fmt.Sprintf("%s is not a legal move", illegal.Move)
		} else {
			g.message = err.Error()
		}
		g.refreshHint()
	}
}

// Close disconnects the engine.
func (g *ReversiBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *ReversiBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.ValidMoveColor),    // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
	}
	g.cfg = c
}

// SetPlayers shows who plays each color on the info panel.
func (g *ReversiBoardUI) SetPlayers(black, white engine.PlayerKind) {
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(black, white)
	}
}

func (g *ReversiBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(g.hintText())
}

func (g *ReversiBoardUI) hintText() string {
	var statusLine, turnLine, controlsLine string

	if g.BoardState.Stalled() {
		statusLine = "───────── No legal moves ─────────\n"
		turnLine = fmt.Sprintf("  %s cannot move. Black %d · White %d\n",
			g.BoardState.PlayerToMove, g.BoardState.BlackScore, g.BoardState.WhiteScore)
		controlsLine = "  q · return to menu"
		return statusLine + turnLine + controlsLine
	}

	switch {
	case g.message != "":
		statusLine = fmt.Sprintf("  ✗ %s\n", g.message)
	case g.skipped != reversi.Empty:
		statusLine = fmt.Sprintf("  ○ %s had no move, turn skipped\n", g.skipped)
	}

	if g.eng != nil && g.eng.IsMyTurn() {
		stone := "●"
		if g.BoardState.PlayerToMove == reversi.White {
			stone = "○"
		}
		turnLine = fmt.Sprintf("  %s Your move (%s)\n", stone, g.BoardState.PlayerToMove)
	} else {
		turnLine = "  ◌ Thinking...\n"
	}

	controlsLine = "  hjkl/↑↓←→ move   ⏎/click play   f focus   q quit"
	return statusLine + turnLine + controlsLine
}

// IsStalled returns true if the game cannot continue.
func (g *ReversiBoardUI) IsStalled() bool {
	return g.BoardState.Stalled()
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *ReversiBoardUI) {
	w, h := ui.BoardState.Width(), ui.BoardState.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[6])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[7])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+boardOffsetX+(ix*2), y+h+1, rune('a'+ix), nil, _style)
		s.SetContent(x+boardOffsetX+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	// Rows are numbered from the top, 1 to 8.
	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		s.SetContent(x+1, y+iy, ' ', nil, _style)
		s.SetContent(x+2, y+iy, rune('1'+iy), nil, _style)
	}
}
