package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() drifted apart:\n yaml: %+v\n code: %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pebble.yaml")
	data := []byte("moai:\n  move_speed: 350\nscore:\n  latch: run_end\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Moai.MoveSpeed != 350 {
		t.Errorf("move_speed = %g, expected 350", cfg.Moai.MoveSpeed)
	}
	if cfg.Score.Latch != LatchOnRunEnd {
		t.Errorf("latch = %q, expected %q", cfg.Score.Latch, LatchOnRunEnd)
	}
	// Untouched keys keep their defaults
	if cfg.Moai.HorizontalSpacing != 800 {
		t.Errorf("horizontal_spacing = %g, expected default 800", cfg.Moai.HorizontalSpacing)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("moai:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject an invalid config")
	}
	if !strings.Contains(err.Error(), "moai.width") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }, false},
		{"empty gap range", func(c *Config) { c.Moai.GapMin, c.Moai.GapMax = 10, 10 }, false},
		{"inverted start range", func(c *Config) { c.Pebble.StartYMin = 500 }, false},
		{"unknown latch", func(c *Config) { c.Score.Latch = "sometimes" }, false},
		{"no backend", func(c *Config) { c.Persistence.Backend = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshaled config failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("marshaled config should decode to the same value")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()

	if err := ApplyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyPreset(hard) failed: %v", err)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset should enable progression at 0.7, got %+v", cfg.Difficulty)
	}

	if err := ApplyPreset(&cfg, DifficultyFixed); err != nil {
		t.Fatalf("ApplyPreset(fixed) failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if err := ApplyPreset(&cfg, "insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
