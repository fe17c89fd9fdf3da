package perfprof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	if cfg.FeasibilityColumn != "feas" {
		t.Errorf("Expected feas, got %q", cfg.FeasibilityColumn)
	}
	if cfg.logger() == nil {
		t.Error("Nil Logger should fall back to slog.Default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty feasibility column", func(c *Config) { c.FeasibilityColumn = "" }},
		{"zero floor", func(c *Config) { c.Floor = 0 }},
		{"tau below one", func(c *Config) { c.Taus = []float64{0.5, 2} }},
		{"max tau below one", func(c *Config) { c.MaxTau = 0.9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
feasibility_column: converged
taus: [1, 2, 4, 8]
log_scale: true
`))
	require.NoError(t, err)

	if cfg.FeasibilityColumn != "converged" {
		t.Errorf("Expected converged, got %q", cfg.FeasibilityColumn)
	}
	if len(cfg.Taus) != 4 || cfg.Taus[3] != 8 {
		t.Errorf("Unexpected taus: %v", cfg.Taus)
	}
	if !cfg.LogScale {
		t.Error("Expected log scale")
	}
	if cfg.Floor != DefaultConfig().Floor {
		t.Errorf("Floor should keep its default, got %v", cfg.Floor)
	}

	_, err = ParseConfig([]byte("max_tau: 0.5\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseConfig([]byte("taus: [1, [2]]\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfprof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_tau: 64\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	if cfg.MaxTau != 64 {
		t.Errorf("Expected max_tau 64, got %v", cfg.MaxTau)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
