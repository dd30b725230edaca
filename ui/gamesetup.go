package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/engine"
)

// DelayStep is the unit of the computer delay slider.
const DelayStep = 100 * time.Millisecond

const maxDelaySteps = 10

var playerOptions = []RadioOption{
	{Label: "Human", Description: "keyboard or mouse"},
	{Label: "Computer", Description: "greedy, one ply"},
}

var playerKinds = []engine.PlayerKind{engine.Human, engine.Computer}

// setup focus targets, in tab order
const (
	focusBlack = iota
	focusWhite
	focusDelay
	focusButtons
)

// GameSetupUI is the new game card: who plays each color and how long the computer waits.
type GameSetupUI struct {
	*MenuCard

	black   *RadioSelect
	white   *RadioSelect
	delay   *LevelSlider
	buttons []*MenuButton

	focus  int
	button int

	// delay as configured, used until the slider is moved
	exactDelay   time.Duration
	delayTouched bool
}

// NewGameSetup creates the setup card preselected with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard:   NewMenuCard("R E V E R S I"),
		exactDelay: defaults.ComputerDelay,
	}

	setup.black = NewRadioSelect("Black (moves first)", playerOptions, kindIndex(defaults.Black), nil)
	setup.white = NewRadioSelect("White", playerOptions, kindIndex(defaults.White), nil)

	steps := int(defaults.ComputerDelay / DelayStep)
	if steps < 0 {
		steps = 0
	}
	if steps > maxDelaySteps {
		steps = maxDelaySteps
	}
	setup.delay = NewLevelSlider("Delay", 0, maxDelaySteps, steps, func(int) {
		setup.delayTouched = true
	}).SetFormat(func(v int) string {
		return setup.computerDelay().String()
	})

	setup.buttons = []*MenuButton{
		NewMenuButton("Start", true, func() {
			if onStart != nil {
				onStart(setup.Config())
			}
		}),
		NewMenuButton("Board Color", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, func() {
			if onCancel != nil {
				onCancel()
			}
		}),
	}

	setup.setFocus(focusButtons)
	return setup
}

func kindIndex(k engine.PlayerKind) int {
	for i, kind := range playerKinds {
		if kind == k {
			return i
		}
	}
	return 0
}

// Config returns the game configuration currently selected on the card.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{
		Black:         playerKinds[s.black.Selected()],
		White:         playerKinds[s.white.Selected()],
		ComputerDelay: s.computerDelay(),
	}
}

// computerDelay is the configured delay until the slider is moved, then the slider value.
// The slider only covers 0..1s in 100ms steps.
func (s *GameSetupUI) computerDelay() time.Duration {
	if !s.delayTouched {
		return s.exactDelay
	}
	return time.Duration(s.delay.Value()) * DelayStep
}

func (s *GameSetupUI) setFocus(target int) {
	s.focus = (target + focusButtons + 1) % (focusButtons + 1)
	s.black.SetFocused(s.focus == focusBlack)
	s.white.SetFocused(s.focus == focusWhite)
	s.delay.SetFocused(s.focus == focusDelay)
	for i, b := range s.buttons {
		b.SetFocused(s.focus == focusButtons && i == s.button)
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *GameSetupUI) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		s.setFocus(s.focus + 1)
		return true
	case tcell.KeyBacktab:
		s.setFocus(s.focus - 1)
		return true
	}

	switch s.focus {
	case focusBlack:
		return s.black.HandleKey(event)
	case focusWhite:
		return s.white.HandleKey(event)
	case focusDelay:
		return s.delay.HandleKey(event)
	}

	switch event.Key() {
	case tcell.KeyLeft:
		if s.button > 0 {
			s.button--
		}
		s.setFocus(focusButtons)
		return true
	case tcell.KeyRight:
		if s.button < len(s.buttons)-1 {
			s.button++
		}
		s.setFocus(focusButtons)
		return true
	}
	return s.buttons[s.button].HandleKey(event)
}

// InputHandler routes key events to the focused control.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		s.HandleKey(event)
	})
}

// Draw renders the card and its controls.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, height := s.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}

	col := x + 3
	row := y + 6
	row += s.black.Draw(screen, col, row, width-6) + 1
	row += s.white.Draw(screen, col, row, width-6) + 1
	row += s.delay.Draw(screen, col-2, row, width-4) + 1

	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	drawText(screen, col+2, row, x+width-1, "pause before each computer move", hintStyle)
	row += 2

	s.DrawDivider(screen, row)
	row += 2

	total := 0
	for _, b := range s.buttons {
		total += b.Width()
	}
	total += 2 * (len(s.buttons) - 1)
	bx := x + (width-total)/2
	for _, b := range s.buttons {
		bx += b.Draw(screen, bx, row) + 2
	}

	row += 2
	drawText(screen, x+2, row, x+width-1, "Tab: next field   ↑↓ ←→: change   ⏎: select", hintStyle)
}

// drawText draws text from col, stopping before limit.
func drawText(screen tcell.Screen, col, row, limit int, text string, style tcell.Style) {
	for _, ch := range text {
		if col >= limit {
			return
		}
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

// SetupHeight is the number of rows the setup card needs.
const SetupHeight = 24
