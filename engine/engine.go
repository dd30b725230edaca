// Package engine defines the interface between game engines and the display.
package engine

import (
	"fmt"
	"strings"
	"time"

	"reversi-local/reversi"
	"reversi-local/types"
)

// GameEngine defines the interface for playing Reversi. Coordinates are x=column, y=row.
type GameEngine interface {
	// Connect initializes the game and starts the computer if it moves first.
	Connect() error

	// GetBoardState returns a snapshot of the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays a move for the human to move at the given coordinates.
	// Returns an error if the move is illegal or it is not a human's turn.
	PlayMove(x, y int) error

	// IsMyTurn returns true if a human is to move and the game is not stalled.
	IsMyTurn() bool

	// PlayerKind returns who plays the given color.
	PlayerKind(color reversi.Cell) PlayerKind

	// OnMove registers a callback for when a move is played (by either player).
	// x, y are -1, -1 when a computer had no legal move and its turn was skipped.
	// boardState is passed directly to avoid lock contention.
	OnMove(func(x, y int, color reversi.Cell, boardState *types.BoardState))

	// OnStall registers a callback for when the side to move has no legal move and
	// the engine will not advance any further.
	OnStall(func(reason string))

	// Close shuts down the engine and cancels a pending computer move.
	Close()
}

// PlayerKind decides who computes the moves for a color.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// ParsePlayerKind accepts "human"/"h" and "computer"/"c"/"cpu".
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "computer", "c", "cpu":
		return Computer, nil
	}
	return Human, fmt.Errorf("unknown player kind %q", s)
}

// MarshalText lets PlayerKind appear as a string in the JSON config.
func (k PlayerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PlayerKind) UnmarshalText(text []byte) error {
	kind, err := ParsePlayerKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Black         PlayerKind     // who plays black (moves first)
	White         PlayerKind     // who plays white
	ComputerDelay time.Duration  // pause before each computer move so the previous move can be seen
	Opening       []reversi.Move // moves replayed from the start position before play begins
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Black:         Human,
		White:         Computer,
		ComputerDelay: 500 * time.Millisecond,
	}
}

// Kind returns who plays color.
func (c GameConfig) Kind(color reversi.Cell) PlayerKind {
	if color == reversi.White {
		return c.White
	}
	return c.Black
}
