// Package types contains shared data structures for reversi-local.
package types

import "reversi-local/reversi"

const (
	PhasePlaying = "playing"
	PhaseStalled = "stalled"
)

// BoardState is a rendering snapshot of a game. The engine owns the real state; the UI
// only ever sees copies of this struct.
// Board is indexed as Board[y][x] where y is the row and x the column.
type BoardState struct {
	MoveNumber   int              `json:"move_number"`
	PlayerToMove reversi.Cell     `json:"player_to_move"` // 1=black, 2=white
	Phase        string           `json:"phase"`          // "playing", "stalled"
	Board        [][]reversi.Cell `json:"board"`
	ValidMoves   []BoardPos       `json:"valid_moves"`
	BlackScore   int              `json:"black_score"`
	WhiteScore   int              `json:"white_score"`
	LastMove     BoardPos         `json:"last_move"`
}

// Stalled returns true if the side to move cannot play and nothing will happen next.
func (b *BoardState) Stalled() bool {
	return b.Phase == PhaseStalled
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsValidMove reports whether (x, y) is in ValidMoves.
func (b *BoardState) IsValidMove(x, y int) bool {
	for _, p := range b.ValidMoves {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// BoardPos represents a position on the board. X is the column, Y the row.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoMove is the LastMove of a snapshot taken before any stone was placed.
var NoMove = BoardPos{X: -1, Y: -1}

// Valid returns false for NoMove.
func (p BoardPos) Valid() bool {
	return p.X >= 0 && p.Y >= 0
}

// String returns the position in Othello notation.
func (p BoardPos) String() string {
	if !p.Valid() {
		return "-"
	}
	return reversi.Move{Row: p.Y, Col: p.X}.String()
}

// NewBoardState builds a snapshot of s.
func NewBoardState(s reversi.GameState, moveNumber int, lastMove BoardPos) *BoardState {
	board := make([][]reversi.Cell, reversi.Size)
	for y := range board {
		board[y] = make([]reversi.Cell, reversi.Size)
		copy(board[y], s.Board[y][:])
	}

	legal := s.LegalMoves()
	valid := make([]BoardPos, len(legal))
	for i, m := range legal {
		valid[i] = BoardPos{X: m.Col, Y: m.Row}
	}

	black, white := s.Score()
	return &BoardState{
		MoveNumber:   moveNumber,
		PlayerToMove: s.Turn,
		Phase:        PhasePlaying,
		Board:        board,
		ValidMoves:   valid,
		BlackScore:   black,
		WhiteScore:   white,
		LastMove:     lastMove,
	}
}

// GameState rebuilds the core state the snapshot was taken from.
func (b *BoardState) GameState() reversi.GameState {
	s := reversi.GameState{Turn: b.PlayerToMove}
	for y := 0; y < b.Height() && y < reversi.Size; y++ {
		copy(s.Board[y][:], b.Board[y])
	}
	return s
}
