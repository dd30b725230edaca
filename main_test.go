package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/reversi"
	"reversi-local/types"
)

func TestGameConfigFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   flagValues
		want    engine.GameConfig
		wantErr bool
	}{
		{
			name:  "defaults",
			flags: flagValues{delay: -1},
			want:  engine.GameConfig{Black: engine.Human, White: engine.Computer, ComputerDelay: 500 * time.Millisecond},
		},
		{
			name:  "players and delay",
			flags: flagValues{black: "cpu", white: "h", delay: 0},
			want:  engine.GameConfig{Black: engine.Computer, White: engine.Human},
		},
		{
			name:  "opening",
			flags: flagValues{delay: -1, moves: "d3, c5"},
			want: engine.GameConfig{
				Black:         engine.Human,
				White:         engine.Computer,
				ComputerDelay: 500 * time.Millisecond,
				Opening:       []reversi.Move{{Row: 2, Col: 3}, {Row: 4, Col: 2}},
			},
		},
		{name: "bad player", flags: flagValues{black: "robot", delay: -1}, wantErr: true},
		{name: "delay too long", flags: flagValues{delay: config.MaxComputerDelayMs + 1}, wantErr: true},
		{name: "bad notation", flags: flagValues{delay: -1, moves: "z9"}, wantErr: true},
		{name: "illegal opening", flags: flagValues{delay: -1, moves: "a1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.DefaultConfig
			got, err := gameConfigFromFlags(&c, tt.flags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSetupSeededWithFlagDelay(t *testing.T) {
	c := config.DefaultConfig
	gameCfg, err := gameConfigFromFlags(&c, flagValues{white: "computer", delay: 2000})
	require.NoError(t, err)

	setup := newGameSetup(gameCfg).Config()
	require.Equal(t, 2*time.Second, setup.ComputerDelay)
	require.Equal(t, engine.Computer, setup.White)
}

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runHeadless(engine.DefaultConfig(), false, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, reversi.Size+3)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "+-----------------+", lines[reversi.Size+1])
	require.Contains(t, lines[reversi.Size+2], "No legal moves for")
	require.Contains(t, lines[reversi.Size+2], "moves. Black")
}

func TestRunHeadlessJSON(t *testing.T) {
	opening, err := reversi.ParseMoves("d3 c5")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runHeadless(engine.GameConfig{Opening: opening}, true, &out))

	var state types.BoardState
	require.NoError(t, json.Unmarshal(out.Bytes(), &state))
	require.True(t, state.Stalled())
	require.Empty(t, state.ValidMoves)
	require.Equal(t, state.BlackScore+state.WhiteScore-4, state.MoveNumber)
	require.GreaterOrEqual(t, state.MoveNumber, 2)

	// Both runs are deterministic.
	var again bytes.Buffer
	require.NoError(t, runHeadless(engine.GameConfig{Opening: opening}, true, &again))
	require.JSONEq(t, out.String(), again.String())
}
