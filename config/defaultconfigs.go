package config

import "reversi-local/engine"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowValidMoves:           true,
		CheckeredBoard:           true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			ValidMoveColor:    190,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: ' ',
			ValidMove:   '·',
			Cursor:      '+',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			Black:           engine.Human,
			White:           engine.Computer,
			ComputerDelayMs: 500,
		},
	}
}
