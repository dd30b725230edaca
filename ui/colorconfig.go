package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedBoardColor  int
	selectedMarkerColor int
	editingMarker       bool // true = editing valid move marker color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Felt greens and other dark tones that both stone colors show up on
var boardColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{30, "Cyan"},
	{17, "Navy Blue"},
	{18, "Dark Blue"},
	{54, "Purple"},
	{52, "Dark Maroon"},
	{88, "Dark Red"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{58, "Olive"},
	{240, "Gray"},
}

// Marker colors for empty squares that are legal moves
var markerColors = []paletteEntry{
	{190, "Lime"},
	{226, "Yellow"},
	{220, "Gold"},
	{214, "Orange"},
	{203, "Coral"},
	{213, "Pink"},
	{159, "Pale Cyan"},
	{123, "Aqua"},
	{250, "Light Gray"},
	{255, "White"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                 cfg,
		onDone:              onDone,
		selectedBoardColor:  cfg.Theme.Colors.BoardColor,
		selectedMarkerColor: cfg.Theme.Colors.ValidMoveColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
		cc.Apply()
		if cc.editingMarker {
			// Back to board color selection
			cc.editingMarker = false
			cc.populateColorList()
			return
		}
		if cc.onDone != nil {
			cc.onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingMarker {
		return markerColors
	}
	return boardColors
}

// preselect previews entry index of the current list.
func (cc *ColorConfigUI) preselect(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	if cc.editingMarker {
		cc.selectedMarkerColor = entries[index].code
	} else {
		cc.selectedBoardColor = entries[index].code
	}
}

// Apply stores the previewed colors in the config and saves it.
func (cc *ColorConfigUI) Apply() {
	if cc.editingMarker {
		cc.cfg.Theme.Colors.ValidMoveColor = cc.selectedMarkerColor
	} else {
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = darker(cc.selectedBoardColor)
	}
	if err := cc.cfg.Save(); err != nil {
		slog.Warn("failed to save config", "error", err)
	}
}

// darker picks the checkered square color for a board color.
func darker(code int) int {
	// In the 6x6x6 cube each channel step is worth 36, 6 and 1; drop green, then blue.
	if code < 16 || code > 231 {
		return code
	}
	c := code - 16
	r, g, b := c/36, (c/6)%6, c%6
	switch {
	case g > 0:
		g--
	case b > 0:
		b--
	case r > 0:
		r--
	}
	return 16 + r*36 + g*6 + b
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	if cc.editingMarker {
		cc.colorList.SetTitle(" Select Marker Color (Tab: board) ")
		current = cc.selectedMarkerColor
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: marker) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewStones is a position a few moves into a game.
var previewStones = map[[2]int]rune{
	{2, 2}: 'W', {2, 3}: 'B', {2, 4}: 'W',
	{3, 2}: 'B', {3, 3}: 'B', {3, 4}: 'B',
	{4, 3}: 'B', {4, 4}: 'W',
}

var previewMoves = [][2]int{{1, 1}, {1, 3}, {1, 5}, {3, 5}, {5, 5}}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := 7
	if width < 20 || height < size+4 {
		return x, y, width, height
	}

	theme := cc.cfg.Theme
	board := tcell.PaletteColor(cc.selectedBoardColor)
	boardAlt := tcell.PaletteColor(darker(cc.selectedBoardColor))

	startX := x + 2
	startY := y + 1

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := board
			if (row+col)%2 == 1 {
				bg = boardAlt
			}
			style := tcell.StyleDefault.Background(bg)
			char := ' '

			switch previewStones[[2]int{row, col}] {
			case 'B':
				char = theme.Symbols.BlackStone
				style = style.Foreground(tcell.PaletteColor(theme.Colors.BlackColor))
			case 'W':
				char = theme.Symbols.WhiteStone
				style = style.Foreground(tcell.PaletteColor(theme.Colors.WhiteColor))
			}
			for _, m := range previewMoves {
				if m == [2]int{row, col} {
					char = theme.Symbols.ValidMove
					style = style.Foreground(tcell.PaletteColor(cc.selectedMarkerColor))
				}
			}

			drawCell(screen, style, char, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Marker: %d", cc.selectedBoardColor, cc.selectedMarkerColor)
	drawText(screen, startX, startY+size+1, x+width-1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and marker color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingMarker = !cc.editingMarker
	cc.populateColorList()
}
