package reversi

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func countOccupied(s GameState) int {
	black, white := s.Score()
	return black + white
}

func TestLegalMovesStart(t *testing.T) {
	moves := NewGame().LegalMoves()

	require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, moves)
}

func TestIsValidMove(t *testing.T) {
	s := NewGame()

	tests := []struct {
		row, col int
		want     bool
	}{
		{2, 3, true},
		{3, 2, true},
		{4, 5, true},
		{5, 4, true},
		{0, 0, false},  // nothing to capture
		{3, 3, false},  // occupied
		{3, 4, false},  // occupied by own stone
		{2, 2, false},  // white diagonal with no black stone behind it
		{2, 4, false},  // adjacent to own stone
		{-1, 0, false}, // off the board
		{0, Size, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, s.IsValidMove(tt.row, tt.col), "IsValidMove(%d, %d)", tt.row, tt.col)
	}
}

func TestIsValidMoveNeedsClosingStone(t *testing.T) {
	var s GameState
	s.Turn = Black
	s.Board[0][1] = White
	s.Board[0][2] = White

	// The line of white stones runs into the edge without a black stone behind it.
	require.False(t, s.IsValidMove(0, 0))

	s.Board[0][3] = Black
	require.True(t, s.IsValidMove(0, 0))
}

func TestApplyFirstMove(t *testing.T) {
	start := NewGame()

	next, err := start.Apply(2, 3)
	require.NoError(t, err)

	require.Equal(t, Black, next.Board[2][3])
	require.Equal(t, Black, next.Board[3][3])
	require.Equal(t, White, next.Turn)

	black, white := next.Score()
	require.Equal(t, 4, black)
	require.Equal(t, 1, white)

	// The original state is a separate value.
	require.Equal(t, NewGame(), start)
}

func TestApplyFlipsEveryClosedDirection(t *testing.T) {
	var s GameState
	s.Turn = White
	// Black stones surrounding (3,3), each closed by a white stone.
	s.Board[3][4], s.Board[3][5] = Black, White // east, closed
	s.Board[2][3], s.Board[1][3] = Black, White // north, closed
	s.Board[4][4], s.Board[5][5] = Black, White // south-east, closed
	s.Board[3][2] = Black                       // west, runs into an empty square
	s.Board[4][3], s.Board[5][3] = Black, Black // south, runs off into empty squares

	next, err := s.Apply(3, 3)
	require.NoError(t, err)

	require.Equal(t, White, next.Board[3][3])
	require.Equal(t, White, next.Board[3][4])
	require.Equal(t, White, next.Board[2][3])
	require.Equal(t, White, next.Board[4][4])
	require.Equal(t, Black, next.Board[3][2])
	require.Equal(t, Black, next.Board[4][3])
	require.Equal(t, Black, next.Board[5][3])
	require.Equal(t, Black, next.Turn)
}

func TestApplyIllegal(t *testing.T) {
	s := NewGame()

	tests := []struct {
		name     string
		row, col int
		occupied bool
	}{
		{"no capture", 0, 0, false},
		{"occupied", 3, 3, true},
		{"off board", 8, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.Apply(tt.row, tt.col)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrIllegalMove))

			var illegal *IllegalMoveError
			require.True(t, errors.As(err, &illegal))
			require.Equal(t, Move{Row: tt.row, Col: tt.col}, illegal.Move)
			require.Equal(t, tt.occupied, illegal.Occupied)
			require.Equal(t, Black, illegal.Player)

			require.Equal(t, s, next)
			require.Equal(t, NewGame(), s)
		})
	}
}

func TestApplyTwiceIsIllegal(t *testing.T) {
	next, err := NewGame().Apply(2, 3)
	require.NoError(t, err)

	next = next.Skip()
	_, err = next.Apply(2, 3)
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestSkip(t *testing.T) {
	s := NewGame()
	skipped := s.Skip()

	require.Equal(t, White, skipped.Turn)
	require.Equal(t, s.Board, skipped.Board)
	require.Equal(t, Black, s.Turn)
}

func TestHasMoves(t *testing.T) {
	require.True(t, NewGame().HasMoves())

	var full GameState
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			full.Board[row][col] = Black
		}
	}
	full.Board[0][0] = Empty
	full.Turn = White
	require.False(t, full.HasMoves())
	require.Empty(t, full.LegalMoves())
}

// TestRandomGames plays random games and checks the invariants after every move.
func TestRandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := 0; game < 50; game++ {
		s := NewGame()
		for {
			moves := s.LegalMoves()
			if len(moves) == 0 {
				s = s.Skip()
				if !s.HasMoves() {
					break
				}
				continue
			}

			for _, m := range moves {
				require.Equal(t, Empty, s.Board[m.Row][m.Col], "legal move %s on occupied square\n%s", m, s)
			}

			m := moves[rng.Intn(len(moves))]
			mover := s.Turn
			blackBefore, whiteBefore := s.Score()
			occupiedBefore := countOccupied(s)

			next, err := s.Apply(m.Row, m.Col)
			require.NoError(t, err, "move %s\n%s", m, s)

			blackAfter, whiteAfter := next.Score()
			require.Equal(t, occupiedBefore+1, countOccupied(next))
			if mover == Black {
				require.Greater(t, blackAfter, blackBefore)
				require.LessOrEqual(t, whiteAfter, whiteBefore)
			} else {
				require.Greater(t, whiteAfter, whiteBefore)
				require.LessOrEqual(t, blackAfter, blackBefore)
			}
			require.Equal(t, mover.Opponent(), next.Turn)
			s = next
		}
		require.LessOrEqual(t, countOccupied(s), Size*Size)
	}
}
