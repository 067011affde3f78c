package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, sequence.Arith(1, 1, 10), cfg.Defaults.Request(sequence.Arithmetic))
	assert.Equal(t, sequence.Geom(1, 2, 10), cfg.Defaults.Request(sequence.Geometric))
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.yaml")
	content := `
server:
  addr: ":9090"
log_level: debug
defaults:
  kind: geometric
  ratio: 3
  term_count: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, sequence.Geometric, cfg.Defaults.DefaultKind())
	assert.Equal(t, 3.0, cfg.Defaults.Ratio)
	assert.Equal(t, 1.0, cfg.Defaults.Difference)
	assert.Equal(t, 5, cfg.Defaults.TermCount)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"addr":"127.0.0.1:7000"},"metrics":false}`), 0o644))

	cfg, err := Load(path, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.False(t, cfg.Metrics)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	cfg, err := Load(path, map[string]string{
		"SEQUENCER_ADDR":               ":6060",
		"SEQUENCER_LOG_LEVEL":          "warn",
		"SEQUENCER_DEFAULT_TERM_COUNT": "25",
	})
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 25, cfg.Defaults.TermCount)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"Bad Level", map[string]string{"SEQUENCER_LOG_LEVEL": "loud"}},
		{"Bad Kind", map[string]string{"SEQUENCER_DEFAULT_KIND": "harmonic"}},
		{"Too Many Terms", map[string]string{"SEQUENCER_DEFAULT_TERM_COUNT": "5000"}},
		{"Zero Ratio", map[string]string{"SEQUENCER_DEFAULT_RATIO": "0"}},
		{"Unparseable Number", map[string]string{"SEQUENCER_DEFAULT_FIRST_TERM": "one"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", tt.environ)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	assert.Error(t, err)
}
