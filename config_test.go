package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := defaultRunConfig()
	if cfg.Trials <= 0 {
		t.Fatalf("default trials = %d", cfg.Trials)
	}
	if len(cfg.Scenarios) != 2 {
		t.Fatalf("default scenarios = %d, expected 2", len(cfg.Scenarios))
	}
	if cfg.Scenarios[0].Dice != 6 || cfg.Scenarios[1].Dice != 7 {
		t.Fatalf("unexpected default scenario dice: %+v", cfg.Scenarios)
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
trials: 500
output_dir: charts
format: svg
scenarios:
  - dice: 5
    rolls: 2
    target: claw
    palette: YlOrRd
sweep:
  dice: 2-3
  targets: [energy]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadRunConfig(path)
	if cfg.Trials != 500 || cfg.OutputDir != "charts" || cfg.Format != "svg" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Scenarios) != 1 || cfg.Scenarios[0].Target != "claw" {
		t.Fatalf("unexpected scenarios: %+v", cfg.Scenarios)
	}
	if cfg.Sweep.Dice != "2-3" || len(cfg.Sweep.Targets) != 1 {
		t.Fatalf("unexpected sweep: %+v", cfg.Sweep)
	}
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	defer func() { recover() }()
	_ = loadRunConfig("no_such_config.yaml")
	t.Fatal("expected panic for missing config")
}

func TestRunAnalysisEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := RunConfig{
		Trials:    200,
		Seed:      42,
		OutputDir: dir,
		Format:    "png",
		Scenarios: []Scenario{
			{Dice: 4, Rolls: 2, Target: "one", Palette: "YlGnBu", Width: 6, Height: 8},
		},
		Sweep: SweepConfig{Dice: "2-3", Targets: []string{"claw"}},
	}

	if err := runAnalysis(cfg, NewRoller(cfg.Seed)); err != nil {
		t.Fatal(err)
	}

	written, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d images, expected 2: %v", len(written), written)
	}
}
