package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML run config; built-in defaults when empty")
		trials     = flag.Int("trials", 0, "override trial count")
		dice       = flag.String("dice", "", "override sweep dice range, e.g. 2-8 or 2,4,6")
		outDir     = flag.String("out", "", "override output directory")
		seed       = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
		fontName   = flag.String("font", "", "heatmap typeface")
		format     = flag.String("format", "", "image format (png, svg, pdf, ...)")
	)
	flag.Parse()

	cfg := defaultRunConfig()
	if *configPath != "" {
		cfg = loadRunConfig(*configPath)
	}
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *dice != "" {
		cfg.Sweep.Dice = *dice
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fontName != "" {
		cfg.Font = *fontName
	}
	if *format != "" {
		cfg.Format = *format
	}

	initLogger()
	defer closeLogger()

	if err := runAnalysis(cfg, NewRoller(cfg.Seed)); err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}
}

// runAnalysis runs every configured chase scenario and the dice-range
// sweep, writing one heatmap per scenario and per sweep target.
func runAnalysis(cfg RunConfig, roller *Roller) error {
	die := NewKingOfTokyoDie()
	if cfg.Profile != "" {
		die = loadDie(cfg.Profile)
	}
	die.PrintInfo()
	fmt.Printf("\n")

	start := time.Now()
	logInfo("starting analysis",
		zap.String("die", die.Name),
		zap.Int("trials", cfg.Trials),
		zap.Int("scenarios", len(cfg.Scenarios)))

	for _, sc := range cfg.Scenarios {
		if err := runScenario(cfg, sc, die, roller); err != nil {
			return err
		}
	}

	if cfg.Sweep.Dice != "" {
		if err := runSweep(cfg, die, roller); err != nil {
			return err
		}
	}

	logInfo("analysis complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func runScenario(cfg RunConfig, sc Scenario, die Die, roller *Roller) error {
	target, err := ParseSymbol(sc.Target)
	if err != nil {
		return err
	}

	freq, err := RunChase(die, roller, target, sc.Dice, sc.Rolls, cfg.Trials)
	if err != nil {
		return err
	}
	probs, err := Aggregate(freq)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("heatmap-%dd%dr-%s", sc.Dice, sc.Rolls, target)
	path, err := RenderHeatmap(probs, PercentageLabels(probs), cfg.OutputDir, name, HeatmapOptions{
		Title:   fmt.Sprintf("%d dice, %d rolls: %s faces kept", sc.Dice, sc.Rolls, target),
		YLabel:  fmt.Sprintf("Number of %s faces", target),
		Font:    cfg.Font,
		Palette: sc.Palette,
		Format:  cfg.Format,
		Min:     sc.Min,
		Max:     sc.Max,
		Width:   sc.Width,
		Height:  sc.Height,
	})
	if err != nil {
		return err
	}

	// Summary over the final roll, same report shape as a single-column
	// percentile read-out.
	expectation := probs.Expectation()
	pcts, err := Percentiles(freq, sc.Rolls-1, 0.68, 0.95)
	if err != nil {
		return err
	}
	fmt.Printf("%d dice, %d rolls chasing %s: mean %.2f, 68th: %v, 95th: %v\n",
		sc.Dice, sc.Rolls, target, expectation[sc.Rolls-1], pcts[0], pcts[1])
	logInfo("scenario rendered",
		zap.Int("dice", sc.Dice),
		zap.Int("rolls", sc.Rolls),
		zap.Stringer("target", target),
		zap.String("file", path))
	return nil
}

func runSweep(cfg RunConfig, die Die, roller *Roller) error {
	diceCounts, err := parseDiceRange(cfg.Sweep.Dice)
	if err != nil {
		return err
	}

	for _, name := range cfg.Sweep.Targets {
		target, err := ParseSymbol(name)
		if err != nil {
			return err
		}
		freq, err := RunSweep(die, roller, target, diceCounts, cfg.Trials)
		if err != nil {
			return err
		}
		probs, err := Aggregate(freq)
		if err != nil {
			return err
		}
		path, err := RenderHeatmap(probs, PercentageLabels(probs), cfg.OutputDir,
			fmt.Sprintf("sweep-%s", target), HeatmapOptions{
				Title:   fmt.Sprintf("Single throw: %s count by dice thrown", target),
				XLabel:  "Dice thrown",
				YLabel:  fmt.Sprintf("Number of %s faces", target),
				Font:    cfg.Font,
				Palette: cfg.Sweep.Palette,
				Format:  cfg.Format,
			})
		if err != nil {
			return err
		}

		atLeast := probs.CumulativeAtLeast()
		for j, d := range diceCounts {
			fmt.Printf("%d dice: P(>=1 %s) = %.3f\n", d, target, atLeast.At(1, j))
		}
		logInfo("sweep rendered", zap.Stringer("target", target), zap.String("file", path))
	}
	return nil
}
