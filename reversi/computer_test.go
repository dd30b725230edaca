package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFlips(t *testing.T) {
	s := NewGame()
	for _, m := range s.LegalMoves() {
		require.Equal(t, 1, s.CountFlips(m.Row, m.Col), "move %s", m)
	}
	require.Equal(t, 0, s.CountFlips(0, 0))
}

func TestBestMovePrefersMoreFlips(t *testing.T) {
	var s GameState
	s.Turn = White
	// a1 side: c1 captures one stone.
	s.Board[0][0], s.Board[0][1] = White, Black
	// a8 side: d8 captures two stones.
	s.Board[7][0], s.Board[7][1], s.Board[7][2] = White, Black, Black

	require.Equal(t, []Move{{0, 2}, {7, 3}}, s.LegalMoves())
	require.Equal(t, 1, s.CountFlips(0, 2))
	require.Equal(t, 2, s.CountFlips(7, 3))

	move, ok := s.BestMove()
	require.True(t, ok)
	require.Equal(t, Move{Row: 7, Col: 3}, move)
}

func TestBestMoveTieBreak(t *testing.T) {
	s, err := NewGame().Apply(2, 3)
	require.NoError(t, err)

	// White has three replies capturing one stone each; the first one scanned wins.
	require.Equal(t, []Move{{2, 2}, {2, 4}, {4, 2}}, s.LegalMoves())
	for _, m := range s.LegalMoves() {
		require.Equal(t, 1, s.CountFlips(m.Row, m.Col))
	}

	move, ok := s.BestMove()
	require.True(t, ok)
	require.Equal(t, Move{Row: 2, Col: 2}, move)
}

func TestBestMoveNone(t *testing.T) {
	var s GameState
	s.Turn = White
	s.Board[0][0] = Black

	_, ok := s.BestMove()
	require.False(t, ok)
}

func TestComputerMove(t *testing.T) {
	s, err := NewGame().Apply(2, 3)
	require.NoError(t, err)

	next := s.ComputerMove()

	require.Equal(t, White, next.Board[2][2])
	require.Equal(t, White, next.Board[3][3])
	require.Equal(t, Black, next.Turn)
	black, white := next.Score()
	require.Equal(t, 3, black)
	require.Equal(t, 3, white)
}

func TestComputerMoveWithoutLegalMoves(t *testing.T) {
	var s GameState
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			s.Board[row][col] = Black
		}
	}
	s.Board[7][7] = Empty
	s.Turn = White

	next := s.ComputerMove()
	require.Equal(t, s, next)
}
