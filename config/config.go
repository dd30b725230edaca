package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"

	"reversi-local/engine"
)

var (
	cfgFile = "reversi-local/config.json"
	logFile = "reversi-local/reversi.log"
)

// MaxComputerDelayMs bounds the pause before a computer move.
const MaxComputerDelayMs = 5000

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	ValidMoveColor    int `json:"valid_move"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	ValidMove   rune `json:"valid_move"`
	Cursor      rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowValidMoves           bool          `json:"show_valid_moves"`
	CheckeredBoard           bool          `json:"checkered_board"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings preselected on the setup screen.
type GameDefaults struct {
	Black           engine.PlayerKind `json:"black"`
	White           engine.PlayerKind `json:"white"`
	ComputerDelayMs int               `json:"computer_delay_ms"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	symbols := []rune{
		c.Theme.Symbols.BlackStone,
		c.Theme.Symbols.WhiteStone,
		c.Theme.Symbols.BoardSquare,
		c.Theme.Symbols.ValidMove,
		c.Theme.Symbols.Cursor,
	}
	for _, r := range symbols {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	for _, k := range []engine.PlayerKind{c.Game.Black, c.Game.White} {
		if k != engine.Human && k != engine.Computer {
			return &InvalidConfig{fmt.Sprintf("unknown player kind %d", k)}
		}
	}
	if c.Game.ComputerDelayMs < 0 || c.Game.ComputerDelayMs > MaxComputerDelayMs {
		return &InvalidConfig{fmt.Sprintf("computer_delay_ms must be between 0 and %d", MaxComputerDelayMs)}
	}
	return nil
}

// GameConfig turns the configured defaults into an engine configuration.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Black:         c.Game.Black,
		White:         c.Game.White,
		ComputerDelay: time.Duration(c.Game.ComputerDelayMs) * time.Millisecond,
	}
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(content, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
