// reversi-local is a terminal application to play Reversi against a greedy computer offline.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/engine/local"
	"reversi-local/reversi"
	"reversi-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBlack      = flag.String("black", "", "Who plays black: human or computer")
	flagWhite      = flag.String("white", "", "Who plays white: human or computer")
	flagDelay      = flag.Int("delay", -1, "Pause before each computer move in milliseconds")
	flagMoves      = flag.String("moves", "", "Opening moves to replay before play starts, e.g. \"d3 c5 f6\"")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagHeadless   = flag.Bool("headless", false, "Play computer against computer without the UI and print the final board")
	flagJSON       = flag.Bool("json", false, "With -headless, print the final position as JSON")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.ReversiBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var opening []reversi.Move // replayed by every game started from the setup screen

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("reversi-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := config.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	gameCfg, err := gameConfigFromFlags(cfg, flagValues{
		black: *flagBlack,
		white: *flagWhite,
		delay: *flagDelay,
		moves: *flagMoves,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opening = gameCfg.Opening

	if *flagHeadless {
		if err := runHeadless(gameCfg, *flagJSON, os.Stdout); err != nil {
			slog.Error("headless game failed", "error", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	quickStart := *flagQuickStart || *flagBlack != "" || *flagWhite != "" || *flagMoves != "" || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● reversi ○ ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewReversiBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil && !gameBoard.IsStalled() {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			playSelected()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				playSelected()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := newGameSetup(gameCfg)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	setupPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(ui.CreateCenteredForm(setupUI, 52), ui.SetupHeight, 0, true).
		AddItem(nil, 0, 1, false)

	rootPage.AddPage("setup", setupPage, true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		slog.Error("application stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gameBoard.Close()
}

func playSelected() {
	selTile := gameBoard.SelectedTile()
	if selTile == nil {
		return
	}
	gameBoard.PlayMove(selTile.X, selTile.Y)
}

// newGameSetup builds the setup card preselected with the flag-merged configuration.
func newGameSetup(gameCfg engine.GameConfig) *ui.GameSetupUI {
	return ui.NewGameSetup(gameCfg,
		func(selected engine.GameConfig) {
			startGame(selected)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	if gameCfg.Opening == nil {
		gameCfg.Opening = opening
	}

	gameBoard.Close()
	gameBoard.SetPlayers(gameCfg.Black, gameCfg.White)

	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		slog.Error("failed to start game", "error", err)
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}
