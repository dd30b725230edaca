package reversi

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is wrapped by every IllegalMoveError.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError is returned by Apply when the target square is occupied, off the board,
// or closes no capture line for the player to move.
type IllegalMoveError struct {
	Move     Move
	Player   Cell
	Occupied bool
}

func (e *IllegalMoveError) Error() string {
	if e.Occupied {
		return fmt.Sprintf("illegal move %s for %s: square is occupied", e.Move, e.Player)
	}
	return fmt.Sprintf("illegal move %s for %s: no stones to capture", e.Move, e.Player)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// walk follows a ray from (row, col) in direction (dRow, dCol) and returns the number of
// opponent stones passed before the ray is closed by a stone of player. Zero means the ray
// hit an empty square or the edge first, or closed immediately.
func (s GameState) walk(row, col, dRow, dCol int, player Cell) int {
	opponent := player.Opponent()
	count := 0
	// At is Empty past the edge, which ends the ray.
	for r, c := row+dRow, col+dCol; ; r, c = r+dRow, c+dCol {
		switch s.At(r, c) {
		case player:
			return count
		case opponent:
			count++
		default:
			return 0
		}
	}
}

// IsValidMove reports whether the player to move may place a stone at (row, col).
func (s GameState) IsValidMove(row, col int) bool {
	if !onBoard(row, col) || s.Board[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if s.walk(row, col, d[0], d[1], s.Turn) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every valid move for the player to move in row-major order.
func (s GameState) LegalMoves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if s.IsValidMove(row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves reports whether the player to move has at least one valid move.
func (s GameState) HasMoves() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if s.IsValidMove(row, col) {
				return true
			}
		}
	}
	return false
}

// Apply plays (row, col) for the player to move and returns the resulting state with the
// turn passed to the opponent. On an illegal move s is returned unchanged together with an
// *IllegalMoveError.
func (s GameState) Apply(row, col int) (GameState, error) {
	if !s.IsValidMove(row, col) {
		return s, &IllegalMoveError{
			Move:     Move{Row: row, Col: col},
			Player:   s.Turn,
			Occupied: onBoard(row, col) && s.Board[row][col] != Empty,
		}
	}

	next := s
	player := s.Turn
	next.Board[row][col] = player
	for _, d := range directions {
		n := s.walk(row, col, d[0], d[1], player)
		for i := 1; i <= n; i++ {
			next.Board[row+i*d[0]][col+i*d[1]] = player
		}
	}
	next.Turn = player.Opponent()
	return next, nil
}

// Skip hands the turn to the opponent without touching the board.
func (s GameState) Skip() GameState {
	s.Turn = s.Turn.Opponent()
	return s
}
