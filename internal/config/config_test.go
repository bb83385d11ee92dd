package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML FuelRunConfig
	if err := yaml.Unmarshal(GetDefaultYAML("fuelrun"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultFuelRunConfig() {
		t.Errorf("embedded YAML and DefaultFuelRunConfig() differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultFuelRunConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	cfg := DefaultFuelRunConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  max_speed: 200\ngun:\n  mode: burst\n  cooldown: 80ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFuelRun(path)
	if err != nil {
		t.Fatalf("LoadFuelRun() error: %v", err)
	}
	if cfg.Player.MaxSpeed != 200 {
		t.Errorf("MaxSpeed = %v, want 200", cfg.Player.MaxSpeed)
	}
	if cfg.Gun.Mode != "burst" || cfg.Gun.Cooldown != 80*time.Millisecond {
		t.Errorf("Gun = %+v, want burst with 80ms cooldown", cfg.Gun)
	}
	// Untouched keys keep their defaults.
	if cfg.Pickups.Refill != 60 {
		t.Errorf("Refill = %d, want default 60", cfg.Pickups.Refill)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFuelRun(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFuelRun(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawner:\n  decay: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFuelRun(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadFuelRun() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultFuelRunConfig()
	cfg.Player.MaxSpeed = 0
	cfg.Spawner.Decay = 1
	cfg.Pickups.Frames = 0
	cfg.Gun.Mode = "laser"
	cfg.Difficulty.Progression.Type = "kills"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []string{"player.max_speed", "spawner.decay", "pickups.frames", "gun.mode", "difficulty.progression.type"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q) error = %v, want ErrUnknownPreset", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
}

func TestApplyFuelRunPreset(t *testing.T) {
	cfg := DefaultFuelRunConfig()
	ApplyFuelRunPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultFuelRunConfig()
	ApplyFuelRunPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Player.StartingAmmo >= DefaultFuelRunConfig().Player.StartingAmmo {
		t.Error("hard preset should start with less ammunition")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultFuelRunConfig()
	ApplyFuelRunPreset(&cfg, DifficultyEasy)
	if cfg.Spawner.Initial != 4*time.Second {
		t.Errorf("easy preset Spawner.Initial = %v, want 4s", cfg.Spawner.Initial)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(Progress{Score: tt.score}); !almostEqual(got, tt.want) {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if got := d.EnemyMaxSpeed(100, Progress{Score: 100}); !almostEqual(got, 200) {
		t.Errorf("EnemyMaxSpeed() at max = %v, want 200", got)
	}

	d.SetEnabled(false)
	if got := d.Level(Progress{Score: 100}); !almostEqual(got, 0.2) {
		t.Errorf("disabled Level() = %v, want initial 0.2", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionTime, MaxAt: 600},
	})
	if got := d.Level(Progress{Score: 9999, Frames: 300}); !almostEqual(got, 0.5) {
		t.Errorf("Level() = %v, want 0.5", got)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	return a-b < eps && b-a < eps
}
