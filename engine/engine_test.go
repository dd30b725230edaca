package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi-local/reversi"
)

func TestParsePlayerKind(t *testing.T) {
	tests := []struct {
		input   string
		want    PlayerKind
		wantErr bool
	}{
		{"human", Human, false},
		{"H", Human, false},
		{"computer", Computer, false},
		{" cpu ", Computer, false},
		{"c", Computer, false},
		{"robot", Human, true},
		{"", Human, true},
	}
	for _, tt := range tests {
		got, err := ParsePlayerKind(tt.input)
		if tt.wantErr {
			require.Error(t, err, "ParsePlayerKind(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestPlayerKindJSON(t *testing.T) {
	var cfg struct {
		Black PlayerKind `json:"black"`
		White PlayerKind `json:"white"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"black":"computer","white":"human"}`), &cfg))
	require.Equal(t, Computer, cfg.Black)
	require.Equal(t, Human, cfg.White)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"black":"computer","white":"human"}`, string(data))

	require.Error(t, json.Unmarshal([]byte(`{"black":"alien"}`), &cfg))
}

func TestGameConfigKind(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, Human, cfg.Kind(reversi.Black))
	require.Equal(t, Computer, cfg.Kind(reversi.White))
}
