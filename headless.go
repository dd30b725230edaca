package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"reversi-local/engine"
	"reversi-local/engine/local"
)

// headlessTimeout bounds a headless game. 60 moves at zero delay finish long before.
const headlessTimeout = time.Minute

// runHeadless plays the computer against itself until the side to move is stuck, then
// prints the final position.
func runHeadless(gameCfg engine.GameConfig, asJSON bool, out io.Writer) error {
	gameCfg.Black = engine.Computer
	gameCfg.White = engine.Computer
	gameCfg.ComputerDelay = 0

	eng := local.NewLocalEngine(gameCfg)
	defer eng.Close()

	done := make(chan string, 1)
	eng.OnStall(func(reason string) {
		done <- reason
	})
	if err := eng.Connect(); err != nil {
		return err
	}

	var reason string
	select {
	case reason = <-done:
	case <-time.After(headlessTimeout):
		return errors.New("headless game did not finish")
	}

	state := eng.GetBoardState()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	for _, line := range state.GameState().ASCIIArtLines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%s after %d moves. Black %d White %d\n",
		reason, state.MoveNumber, state.BlackScore, state.WhiteScore)
	return err
}
