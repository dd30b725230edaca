// Package local provides an in-process engine that plays the greedy computer opponent.
package local

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"reversi-local/engine"
	"reversi-local/reversi"
	"reversi-local/types"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrClosed      = errors.New("engine is closed")
)

// LocalEngine implements the GameEngine interface on top of the reversi package.
type LocalEngine struct {
	id     string
	config engine.GameConfig
	log    *slog.Logger

	state      reversi.GameState
	moveNumber int
	lastMove   types.BoardPos
	step       int // bumped on every change of state, including skipped turns
	stalled    bool
	closed     bool
	timer      *time.Timer

	moveCallback  func(x, y int, color reversi.Cell, boardState *types.BoardState)
	stallCallback func(reason string)

	mu sync.Mutex
}

// NewLocalEngine creates a new engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	id := uuid.NewString()
	return &LocalEngine{
		id:       id,
		config:   cfg,
		log:      slog.Default().With("game", id),
		state:    reversi.NewGame(),
		lastMove: types.NoMove,
	}
}

// ID returns the identifier used to tag this game's log lines.
func (g *LocalEngine) ID() string {
	return g.id
}

// Connect sets up the start position, replays the opening and hands the first turn out.
func (g *LocalEngine) Connect() error {
	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}

	state, err := reversi.NewGame().Replay(g.config.Opening)
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("failed to replay opening: %w", err)
	}

	g.state = state
	g.moveNumber = len(g.config.Opening)
	g.lastMove = types.NoMove
	if n := len(g.config.Opening); n > 0 {
		last := g.config.Opening[n-1]
		g.lastMove = types.BoardPos{X: last.Col, Y: last.Row}
	}
	g.step++
	step := g.step

	g.log.Info("game started",
		"black", g.config.Black,
		"white", g.config.White,
		"delay", g.config.ComputerDelay,
		"opening", len(g.config.Opening))
	g.mu.Unlock()

	g.continueFrom(step)
	return nil
}

// GetBoardState returns a snapshot of the current board state.
func (g *LocalEngine) GetBoardState() *types.BoardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// PlayMove plays a move for the human to move. x is the column, y the row.
func (g *LocalEngine) PlayMove(x, y int) error {
	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}

	color := g.state.Turn
	if g.config.Kind(color) != engine.Human {
		g.mu.Unlock()
		return ErrNotYourTurn
	}

	next, err := g.state.Apply(y, x)
	if err != nil {
		g.mu.Unlock()
		g.log.Debug("rejected move", "error", err)
		return err
	}

	move := reversi.Move{Row: y, Col: x}
	g.log.Debug("human move", "color", color, "move", move)
	g.commitLocked(next, move)
	step := g.step
	boardStateCopy := g.snapshotLocked()
	callback := g.moveCallback
	g.mu.Unlock()

	// Notify callback (outside lock to prevent deadlock)
	if callback != nil {
		callback(x, y, color, boardStateCopy)
	}

	g.continueFrom(step)
	return nil
}

// computerTurn plays the greedy move for the computer to move. A computer without a
// legal move is skipped and the turn goes back to the other side.
func (g *LocalEngine) computerTurn() {
	g.mu.Lock()

	if g.closed || g.stalled || g.config.Kind(g.state.Turn) != engine.Computer {
		g.mu.Unlock()
		return
	}

	color := g.state.Turn
	x, y := -1, -1

	move, ok := g.state.BestMove()
	if ok {
		flips := g.state.CountFlips(move.Row, move.Col)
		next, err := g.state.Apply(move.Row, move.Col)
		if err != nil {
			g.mu.Unlock()
			g.log.Error("computer chose an illegal move", "move", move, "error", err)
			return
		}
		g.log.Debug("computer move", "color", color, "move", move, "flips", flips)
		g.commitLocked(next, move)
		x, y = move.Col, move.Row
	} else {
		g.log.Info("computer has no legal move, skipping turn", "color", color)
		g.state = g.state.Skip()
		g.step++
	}

	step := g.step
	boardStateCopy := g.snapshotLocked()
	callback := g.moveCallback
	g.mu.Unlock()

	if callback != nil {
		callback(x, y, color, boardStateCopy)
	}

	g.continueFrom(step)
}

// continueFrom hands out the next turn, unless the state moved past step in the meantime.
// A computer to move gets a timer; a side without any legal move stalls the game.
func (g *LocalEngine) continueFrom(step int) {
	g.mu.Lock()

	if g.closed || g.stalled || g.step != step {
		g.mu.Unlock()
		return
	}

	var reason string
	switch {
	case !g.state.HasMoves() && (g.config.Kind(g.state.Turn) == engine.Human || !g.state.Skip().HasMoves()):
		// A human without moves is stuck, and two computers without moves would skip
		// each other forever.
		g.stalled = true
		reason = fmt.Sprintf("No legal moves for %s", g.state.Turn)
		g.log.Info("game stalled", "turn", g.state.Turn, "moves", g.moveNumber)
	case g.config.Kind(g.state.Turn) == engine.Computer:
		g.timer = time.AfterFunc(g.config.ComputerDelay, g.computerTurn)
	}

	callback := g.stallCallback
	g.mu.Unlock()

	if reason != "" && callback != nil {
		callback(reason)
	}
}

// commitLocked stores a new state produced by move.
// Must be called while holding the lock.
func (g *LocalEngine) commitLocked(next reversi.GameState, move reversi.Move) {
	g.state = next
	g.moveNumber++
	g.lastMove = types.BoardPos{X: move.Col, Y: move.Row}
	g.step++
}

// snapshotLocked creates a rendering snapshot of the current state.
// Must be called while holding the lock.
func (g *LocalEngine) snapshotLocked() *types.BoardState {
	state := types.NewBoardState(g.state, g.moveNumber, g.lastMove)
	if g.stalled {
		state.Phase = types.PhaseStalled
	}
	return state
}

// IsMyTurn returns true if a human is to move.
func (g *LocalEngine) IsMyTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.closed && !g.stalled && g.config.Kind(g.state.Turn) == engine.Human
}

// PlayerKind returns who plays color.
func (g *LocalEngine) PlayerKind(color reversi.Cell) engine.PlayerKind {
	return g.config.Kind(color)
}

// OnMove registers a callback for when a move is played.
func (g *LocalEngine) OnMove(callback func(x, y int, color reversi.Cell, boardState *types.BoardState)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveCallback = callback
}

// OnStall registers a callback for when the game cannot continue.
func (g *LocalEngine) OnStall(callback func(reason string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stallCallback = callback
}

// Close stops a pending computer move. A move that is already being applied completes.
func (g *LocalEngine) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true
	if g.timer != nil {
		g.timer.Stop()
	}
	black, white := g.state.Score()
	g.log.Info("game closed", "moves", g.moveNumber, "black", black, "white", white)
}
