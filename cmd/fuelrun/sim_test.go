package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fuelrun/internal/config"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun"
)

func testSimOptions() simOptions {
	return simOptions{
		Variant:  fuelrun.IDClassic,
		Frames:   1200,
		Seed:     42,
		TickRate: 60,
		Every:    60,
		Config:   config.DefaultFuelRunConfig(),
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	var csv1, csv2 bytes.Buffer
	r1, err := runHeadless(testSimOptions(), &csv1)
	if err != nil {
		t.Fatalf("runHeadless() error: %v", err)
	}
	r2, err := runHeadless(testSimOptions(), &csv2)
	if err != nil {
		t.Fatalf("runHeadless() error: %v", err)
	}

	if r1 != r2 {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", r1, r2)
	}
	if csv1.String() != csv2.String() {
		t.Error("same seed gave different telemetry")
	}
	if r1.Ticks == 0 || r1.Ticks > 1200 {
		t.Errorf("Ticks = %d", r1.Ticks)
	}
	if !r1.Died && r1.Ticks != 1200 {
		t.Errorf("run stopped early without dying at tick %d", r1.Ticks)
	}
}

func TestRunHeadlessTelemetryRows(t *testing.T) {
	opts := testSimOptions()
	opts.Frames = 300
	opts.Config.Spawner.Initial = time.Hour

	var buf bytes.Buffer
	res, err := runHeadless(opts, &buf)
	if err != nil {
		t.Fatalf("runHeadless() error: %v", err)
	}
	if res.Died {
		t.Fatal("nothing should kill the vehicle without enemies")
	}
	if res.Rows != 5 {
		t.Errorf("Rows = %d, want 5", res.Rows)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != res.Rows+1 {
		t.Errorf("got %d lines, want %d rows plus a header", len(lines), res.Rows)
	}
}

func TestRunHeadlessWithoutCSV(t *testing.T) {
	opts := testSimOptions()
	opts.Frames = 10
	res, err := runHeadless(opts, nil)
	if err != nil {
		t.Fatalf("runHeadless() error: %v", err)
	}
	if res.Rows != 0 {
		t.Errorf("Rows = %d without an output", res.Rows)
	}
}

func TestRunHeadlessUnknownVariant(t *testing.T) {
	opts := testSimOptions()
	opts.Variant = "nope"
	if _, err := runHeadless(opts, nil); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestLoadConfigPreset(t *testing.T) {
	cfg, err := loadConfig("", "hard")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Player.StartingAmmo != 70 {
		t.Errorf("hard preset ammo = %d", cfg.Player.StartingAmmo)
	}
	if _, err := loadConfig("", "brutal"); err == nil {
		t.Error("unknown preset should fail")
	}
}
