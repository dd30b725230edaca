// Package reversi implements the rules of Othello on a fixed 8x8 board together with a
// greedy computer opponent.
package reversi

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Cell is the content of a single square. Black and White double as the two players.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the other player. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// MarshalJSON writes the cell as 0, 1 or 2. Without it a []Cell row would be base64.
func (c Cell) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// Board is indexed as Board[row][col].
type Board [Size][Size]Cell

// GameState is a board together with the player to move. It is a plain value: copying it
// copies the board, so every operation below leaves its receiver untouched.
type GameState struct {
	Board Board
	Turn  Cell
}

// NewGame returns the starting position with Black to move.
func NewGame() GameState {
	var s GameState
	mid := Size / 2
	s.Board[mid-1][mid-1] = White
	s.Board[mid-1][mid] = Black
	s.Board[mid][mid-1] = Black
	s.Board[mid][mid] = White
	s.Turn = Black
	return s
}

// Score counts the stones of each color.
func (s GameState) Score() (black, white int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch s.Board[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// At returns the cell at (row, col), or Empty when the square is off the board.
func (s GameState) At(row, col int) Cell {
	if !onBoard(row, col) {
		return Empty
	}
	return s.Board[row][col]
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// ASCIIArtLines draws the board with column letters on top and row numbers on the left.
// Legal moves for the player to move are shown as dots.
func (s GameState) ASCIIArtLines() []string {
	var legal [Size][Size]bool
	for _, m := range s.LegalMoves() {
		legal[m.Row][m.Col] = true
	}

	lines := make([]string, Size+2)
	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < Size; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < Size; col++ {
			switch {
			case s.Board[row][col] == Black:
				sb.WriteString("● ")
			case s.Board[row][col] == White:
				sb.WriteString("○ ")
			case legal[row][col]:
				sb.WriteString("· ")
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteString("|")
		lines[row+1] = sb.String()
	}
	lines[Size+1] = "+-----------------+"
	return lines
}

func (s GameState) String() string {
	black, white := s.Score()
	lines := s.ASCIIArtLines()
	lines = append(lines, fmt.Sprintf("%s to move, Black %d White %d", s.Turn, black, white))
	return strings.Join(lines, "\n")
}
