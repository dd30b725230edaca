package main

import (
	"fmt"
	"time"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/reversi"
)

// flagValues are the raw game flags. Zero strings and a negative delay mean "not set".
type flagValues struct {
	black string
	white string
	delay int
	moves string
}

// gameConfigFromFlags starts from the configured defaults and applies the flags on top.
func gameConfigFromFlags(c *config.Config, f flagValues) (engine.GameConfig, error) {
	gameCfg := c.GameConfig()

	if f.black != "" {
		kind, err := engine.ParsePlayerKind(f.black)
		if err != nil {
			return gameCfg, fmt.Errorf("-black: %w", err)
		}
		gameCfg.Black = kind
	}

	if f.white != "" {
		kind, err := engine.ParsePlayerKind(f.white)
		if err != nil {
			return gameCfg, fmt.Errorf("-white: %w", err)
		}
		gameCfg.White = kind
	}

	if f.delay >= 0 {
		if f.delay > config.MaxComputerDelayMs {
			return gameCfg, fmt.Errorf("-delay: must be at most %d", config.MaxComputerDelayMs)
		}
		gameCfg.ComputerDelay = time.Duration(f.delay) * time.Millisecond
	}

	if f.moves != "" {
		moves, err := reversi.ParseMoves(f.moves)
		if err != nil {
			return gameCfg, fmt.Errorf("-moves: %w", err)
		}
		if _, err := reversi.NewGame().Replay(moves); err != nil {
			return gameCfg, fmt.Errorf("-moves: %w", err)
		}
		gameCfg.Opening = moves
	}

	return gameCfg, nil
}
