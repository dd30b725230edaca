package reversi

import (
	"fmt"
	"strings"
)

// Othello square notation:
// - Columns: a-h (left to right)
// - Rows: 1-8 (top to bottom)
// - Example: d3 is row 2, column 3
//
// Board coordinates:
// - Row: 0-7 (top to bottom)
// - Col: 0-7 (left to right)

// Move is a square on the board.
type Move struct {
	Row int
	Col int
}

// String returns the move in Othello notation, e.g. (2, 3) -> "d3".
func (m Move) String() string {
	if !onBoard(m.Row, m.Col) {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(m.Col), m.Row+1)
}

// ParseMove converts Othello notation to a Move. "D3" and "d3" both give (2, 3).
func ParseMove(field string) (Move, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if len(field) != 2 {
		return Move{}, fmt.Errorf("invalid square %q: want a column a-h and a row 1-8", field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')
	if field[0] < 'a' || field[1] < '1' || !onBoard(row, col) {
		return Move{}, fmt.Errorf("square out of bounds: %q", field)
	}
	return Move{Row: row, Col: col}, nil
}

// ParseMoves parses a whitespace or comma separated list of squares.
func ParseMoves(list string) ([]Move, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Replay plays moves in order starting from s.
func (s GameState) Replay(moves []Move) (GameState, error) {
	for i, m := range moves {
		next, err := s.Apply(m.Row, m.Col)
		if err != nil {
			return s, fmt.Errorf("move %d: %w", i+1, err)
		}
		s = next
	}
	return s, nil
}
