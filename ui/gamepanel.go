package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"reversi-local/engine"
	"reversi-local/reversi"
	"reversi-local/types"
)

// GameInfoPanel displays scores and players alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	black      engine.PlayerKind
	white      engine.PlayerKind
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		black: engine.Human,
		white: engine.Computer,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetPlayers sets who plays each color.
func (p *GameInfoPanel) SetPlayers(black, white engine.PlayerKind) {
	p.black = black
	p.white = white
	p.refresh()
}

// Text returns the panel contents including color tags.
func (p *GameInfoPanel) Text() string {
	if p.boardState == nil {
		return ""
	}
	s := p.boardState

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	text += fmt.Sprintf("%s[white]Black:[-:-:-] %-8s %2d\n", p.turnMarker(reversi.Black), p.black, s.BlackScore)
	text += fmt.Sprintf("%s[white]White:[-:-:-] %-8s %2d\n", p.turnMarker(reversi.White), p.white, s.WhiteScore)
	text += "\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", s.MoveNumber)
	text += fmt.Sprintf("[white]Last:[-:-:-] %s\n", s.LastMove)
	text += fmt.Sprintf("[white]Legal moves:[-:-:-] %d\n", len(s.ValidMoves))

	if s.Stalled() {
		text += "\n[yellow::b]STALLED[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		switch {
		case s.BlackScore > s.WhiteScore:
			text += fmt.Sprintf("Black leads by %d\n", s.BlackScore-s.WhiteScore)
		case s.WhiteScore > s.BlackScore:
			text += fmt.Sprintf("White leads by %d\n", s.WhiteScore-s.BlackScore)
		default:
			text += "Scores are level\n"
		}
	}
	return text
}

func (p *GameInfoPanel) turnMarker(color reversi.Cell) string {
	if p.boardState != nil && !p.boardState.Stalled() && p.boardState.PlayerToMove == color {
		return "[yellow]>[-]"
	}
	return " "
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.Text())
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ReversiBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm centers form horizontally with the given width.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *ReversiBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	if board.infoPanel != nil {
		infoPanel.SetPlayers(board.infoPanel.black, board.infoPanel.white)
	}
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *ReversiBoardUI) {
	gameFrame.Clear()

	boardWidth := reversi.Size*2 + boardOffsetX
	boardHeight := reversi.Size + 2

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
