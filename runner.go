package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FrequencyTable holds raw trial tallies. Rows are symbol/hit counts
// starting at zero, columns are whatever axis the run swept (roll number,
// dice count). Each column sums to Trials. Treated as immutable once
// returned by a runner.
type FrequencyTable struct {
	Counts *mat.Dense
	Cols   []string
	Trials int
}

func validateRun(diceCount, trialCount int) error {
	if diceCount < 0 {
		return fmt.Errorf("dice count %d: %w", diceCount, ErrInvalidInput)
	}
	if trialCount <= 0 {
		return fmt.Errorf("trial count %d: %w", trialCount, ErrInvalidInput)
	}
	return nil
}

// RunSimulation repeats SimulateRoll trialCount times and tallies how often
// the target symbol came up k times. The single column sums to trialCount.
func RunSimulation(die Die, roller *Roller, target Symbol, diceCount, trialCount int) (FrequencyTable, error) {
	if err := validateRun(diceCount, trialCount); err != nil {
		return FrequencyTable{}, err
	}

	counts := mat.NewDense(diceCount+1, 1, nil)
	for t := 0; t < trialCount; t++ {
		result, err := SimulateRoll(die, roller, diceCount)
		if err != nil {
			return FrequencyTable{}, err
		}
		k := result.Count(target)
		counts.Set(k, 0, counts.At(k, 0)+1)
	}
	return FrequencyTable{
		Counts: counts,
		Cols:   []string{fmt.Sprintf("%d dice", diceCount)},
		Trials: trialCount,
	}, nil
}

// RunChase repeats the keep/re-roll sequence trialCount times. Columns are
// roll numbers, rows are cumulative hit counts; each column sums to
// trialCount.
func RunChase(die Die, roller *Roller, target Symbol, diceCount, rolls, trialCount int) (FrequencyTable, error) {
	if err := validateRun(diceCount, trialCount); err != nil {
		return FrequencyTable{}, err
	}
	if rolls < 1 {
		return FrequencyTable{}, fmt.Errorf("roll count %d: %w", rolls, ErrInvalidInput)
	}

	counts := mat.NewDense(diceCount+1, rolls, nil)
	for t := 0; t < trialCount; t++ {
		outcome, err := ChaseSymbol(die, roller, diceCount, rolls, target)
		if err != nil {
			return FrequencyTable{}, err
		}
		for roll, hits := range outcome {
			counts.Set(hits, roll, counts.At(hits, roll)+1)
		}
	}

	cols := make([]string, rolls)
	for i := range cols {
		cols[i] = fmt.Sprintf("Roll %d", i+1)
	}
	return FrequencyTable{Counts: counts, Cols: cols, Trials: trialCount}, nil
}

// RunSweep runs a single-throw simulation for each dice count in ascending
// order. Columns are dice counts, rows are target-symbol counts; each
// column sums to trialCount.
func RunSweep(die Die, roller *Roller, target Symbol, diceCounts []int, trialCount int) (FrequencyTable, error) {
	if len(diceCounts) == 0 {
		return FrequencyTable{}, fmt.Errorf("empty dice range: %w", ErrInvalidInput)
	}
	maxDice := 0
	for _, d := range diceCounts {
		if err := validateRun(d, trialCount); err != nil {
			return FrequencyTable{}, err
		}
		if d > maxDice {
			maxDice = d
		}
	}

	counts := mat.NewDense(maxDice+1, len(diceCounts), nil)
	cols := make([]string, len(diceCounts))
	for j, d := range diceCounts {
		cols[j] = fmt.Sprintf("%d dice", d)
		for t := 0; t < trialCount; t++ {
			result, err := SimulateRoll(die, roller, d)
			if err != nil {
				return FrequencyTable{}, err
			}
			k := result.Count(target)
			counts.Set(k, j, counts.At(k, j)+1)
		}
	}
	return FrequencyTable{Counts: counts, Cols: cols, Trials: trialCount}, nil
}
