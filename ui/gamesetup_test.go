package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"reversi-local/config"
	"reversi-local/engine"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGameSetupDefaults(t *testing.T) {
	setup := NewGameSetup(engine.DefaultConfig(), nil, nil, nil)
	require.Equal(t, engine.DefaultConfig(), setup.Config())

	cfg := config.DefaultConfig
	cfg.Game.Black = engine.Computer
	cfg.Game.ComputerDelayMs = 5000
	setup = NewGameSetup(cfg.GameConfig(), nil, nil, nil)
	require.Equal(t, engine.Computer, setup.Config().Black)
	require.Equal(t, 5*time.Second, setup.Config().ComputerDelay)
}

func TestGameSetupDelay(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		keys  []*tcell.EventKey
		want  time.Duration
	}{
		{name: "off the slider grid", delay: 250 * time.Millisecond, want: 250 * time.Millisecond},
		{name: "beyond the slider", delay: 3 * time.Second, want: 3 * time.Second},
		{name: "slider moved", delay: 250 * time.Millisecond, keys: []*tcell.EventKey{key(tcell.KeyRight)}, want: 300 * time.Millisecond},
		{name: "slider at its end", delay: 3 * time.Second, keys: []*tcell.EventKey{key(tcell.KeyRight)}, want: 3 * time.Second},
		{name: "slider pulled back", delay: 3 * time.Second, keys: []*tcell.EventKey{key(tcell.KeyLeft)}, want: 900 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := NewGameSetup(engine.GameConfig{ComputerDelay: tt.delay}, nil, nil, nil)
			setup.HandleKey(key(tcell.KeyBacktab))
			for _, k := range tt.keys {
				setup.HandleKey(k)
			}
			require.Equal(t, tt.want, setup.Config().ComputerDelay)
		})
	}
}

func TestGameSetupKeys(t *testing.T) {
	var started *engine.GameConfig
	setup := NewGameSetup(engine.DefaultConfig(), func(c engine.GameConfig) {
		started = &c
	}, nil, nil)

	// Focus starts on the Start button; Tab wraps around to Black.
	require.True(t, setup.HandleKey(key(tcell.KeyTab)))
	require.True(t, setup.HandleKey(key(tcell.KeyDown)))

	require.True(t, setup.HandleKey(key(tcell.KeyTab)))
	require.True(t, setup.HandleKey(runeKey('h')))

	require.True(t, setup.HandleKey(key(tcell.KeyTab)))
	require.True(t, setup.HandleKey(key(tcell.KeyLeft)))
	require.True(t, setup.HandleKey(key(tcell.KeyLeft)))
	require.True(t, setup.HandleKey(key(tcell.KeyLeft)))

	require.True(t, setup.HandleKey(key(tcell.KeyTab)))
	require.True(t, setup.HandleKey(key(tcell.KeyEnter)))

	require.NotNil(t, started)
	require.Equal(t, engine.GameConfig{
		Black:         engine.Computer,
		White:         engine.Human,
		ComputerDelay: 200 * time.Millisecond,
	}, *started)
}

func TestGameSetupButtons(t *testing.T) {
	var colors, quit int
	setup := NewGameSetup(engine.DefaultConfig(), nil, func() { quit++ }, func() { colors++ })

	setup.HandleKey(key(tcell.KeyRight))
	setup.HandleKey(runeKey(' '))
	require.Equal(t, 1, colors)

	setup.HandleKey(key(tcell.KeyRight))
	setup.HandleKey(key(tcell.KeyRight))
	setup.HandleKey(key(tcell.KeyEnter))
	require.Equal(t, 1, quit)

	// Backtab from the buttons lands on the delay slider.
	setup.HandleKey(key(tcell.KeyBacktab))
	setup.HandleKey(key(tcell.KeyEnd))
	require.Equal(t, time.Second, setup.Config().ComputerDelay)
}

func TestGameSetupInputHandler(t *testing.T) {
	setup := NewGameSetup(engine.DefaultConfig(), nil, nil, nil)
	handler := setup.InputHandler()

	handler(key(tcell.KeyTab), nil)
	handler(runeKey('c'), nil)
	require.Equal(t, engine.Computer, setup.Config().Black)
}

func TestRadioSelectBounds(t *testing.T) {
	var changes []int
	r := NewRadioSelect("White", playerOptions, 0, func(i int) { changes = append(changes, i) })

	r.HandleKey(key(tcell.KeyUp))
	r.HandleKey(runeKey('j'))
	r.HandleKey(runeKey('j'))
	require.Equal(t, 1, r.Selected())
	require.Equal(t, []int{1}, changes)
	require.False(t, r.HandleKey(runeKey('x')))
}

func TestLevelSliderBounds(t *testing.T) {
	s := NewLevelSlider("Delay", 0, 3, 1, nil)
	s.HandleKey(runeKey('l'))
	s.HandleKey(runeKey('l'))
	s.HandleKey(runeKey('l'))
	require.Equal(t, 3, s.Value())

	s.HandleKey(key(tcell.KeyHome))
	s.HandleKey(key(tcell.KeyLeft))
	require.Equal(t, 0, s.Value())

	s.SetValue(9)
	require.Equal(t, 0, s.Value())
}

func TestDarker(t *testing.T) {
	tests := []struct {
		code, want int
	}{
		{28, 22},   // green step
		{17, 16},   // blue only
		{52, 16},   // red only
		{16, 16},   // black
		{240, 240}, // grayscale ramp untouched
		{7, 7},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, darker(tt.code), "color %d", tt.code)
	}
}
