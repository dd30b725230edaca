package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the setup card: dark slate with a felt green accent.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(59),
	BorderFocus: tcell.PaletteColor(71),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(71),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(114),
	Unselected:  tcell.PaletteColor(243),
	ButtonFocus: tcell.PaletteColor(28),
	ButtonText:  tcell.PaletteColor(255),
}
