package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario is one chase run: keep every die showing the target symbol,
// re-roll the rest, for the given number of rolls.
type Scenario struct {
	Dice    int     `yaml:"dice"`
	Rolls   int     `yaml:"rolls"`
	Target  string  `yaml:"target,omitempty"`
	Palette string  `yaml:"palette,omitempty"`
	Min     float64 `yaml:"vmin,omitempty"`
	Max     float64 `yaml:"vmax,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
}

// SweepConfig drives the single-throw sweep across a dice-count range, one
// heatmap per target symbol.
type SweepConfig struct {
	Dice    string   `yaml:"dice"`
	Targets []string `yaml:"targets,omitempty"`
	Palette string   `yaml:"palette,omitempty"`
}

type RunConfig struct {
	Profile   string      `yaml:"profile,omitempty"`
	Trials    int         `yaml:"trials"`
	Seed      int64       `yaml:"seed,omitempty"`
	OutputDir string      `yaml:"output_dir"`
	Format    string      `yaml:"format,omitempty"`
	Font      string      `yaml:"font,omitempty"`
	Scenarios []Scenario  `yaml:"scenarios"`
	Sweep     SweepConfig `yaml:"sweep"`
}

// defaultRunConfig mirrors the analysis the tool was written for: the two
// four-roll chase scenarios plus a claw sweep over two to eight dice.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Trials:    100000,
		OutputDir: "out",
		Format:    "png",
		Scenarios: []Scenario{
			{Dice: 6, Rolls: 4, Target: "one", Palette: "YlGnBu", Min: 0, Max: 0.4, Width: 12, Height: 16.2},
			{Dice: 7, Rolls: 4, Target: "one", Palette: "YlOrRd", Min: 0, Max: 0.4, Width: 12, Height: 18.2},
		},
		Sweep: SweepConfig{
			Dice:    "2-8",
			Targets: []string{"claw"},
			Palette: "YlGnBu",
		},
	}
}

func loadRunConfig(path string) RunConfig {
	var (
		data []byte
		err  error
	)

	if data, err = os.ReadFile(path); err != nil {
		panic(err)
	}
	cfg := defaultRunConfig()
	cfg.Scenarios = nil
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = defaultRunConfig().Scenarios
	}
	return cfg
}
