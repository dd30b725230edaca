package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi-local/reversi"
)

func TestNewBoardState(t *testing.T) {
	s := reversi.NewGame()
	state := NewBoardState(s, 0, NoMove)

	require.Equal(t, reversi.Size, state.Width())
	require.Equal(t, reversi.Size, state.Height())
	require.Equal(t, reversi.Black, state.PlayerToMove)
	require.Equal(t, PhasePlaying, state.Phase)
	require.False(t, state.Stalled())
	require.Equal(t, 2, state.BlackScore)
	require.Equal(t, 2, state.WhiteScore)
	require.False(t, state.LastMove.Valid())

	require.Equal(t, []BoardPos{{3, 2}, {2, 3}, {5, 4}, {4, 5}}, state.ValidMoves)
	require.True(t, state.IsValidMove(3, 2))
	require.False(t, state.IsValidMove(2, 4))
	require.Equal(t, reversi.White, state.Board[3][3])
	require.Equal(t, reversi.Black, state.Board[3][4])
}

func TestBoardStateIsCopy(t *testing.T) {
	s := reversi.NewGame()
	state := NewBoardState(s, 0, NoMove)

	state.Board[0][0] = reversi.Black
	require.Equal(t, reversi.Empty, s.Board[0][0])
}

func TestBoardPosString(t *testing.T) {
	require.Equal(t, "d3", BoardPos{X: 3, Y: 2}.String())
	require.Equal(t, "-", NoMove.String())
}

func TestBoardStateJSON(t *testing.T) {
	state := NewBoardState(reversi.NewGame(), 1, BoardPos{X: 3, Y: 2})

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "playing", decoded["phase"])
	require.EqualValues(t, 1, decoded["player_to_move"])
	require.EqualValues(t, 2, decoded["black_score"])

	board, ok := decoded["board"].([]interface{})
	require.True(t, ok, "board should be an array, got %T", decoded["board"])
	require.Len(t, board, reversi.Size)
	require.Equal(t, []interface{}{0.0, 0.0, 0.0, 2.0, 1.0, 0.0, 0.0, 0.0}, board[3])

	var back BoardState
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, *state, back)
}

func TestBoardStateGameState(t *testing.T) {
	s, err := reversi.NewGame().Apply(2, 3)
	require.NoError(t, err)

	state := NewBoardState(s, 1, BoardPos{X: 3, Y: 2})
	require.Equal(t, s, state.GameState())
	require.Equal(t, reversi.GameState{}, (&BoardState{}).GameState())
}
