package main

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks rejected simulation parameters. Callers test for it
// with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// TrialResult counts how many dice showed each symbol in one throw.
type TrialResult [NumSymbols]int

func (t TrialResult) Count(s Symbol) int { return t[s] }

func (t TrialResult) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// SimulateRoll throws diceCount dice once and tallies symbols. The tally
// always sums to diceCount.
func SimulateRoll(die Die, roller *Roller, diceCount int) (TrialResult, error) {
	var result TrialResult
	if diceCount < 0 {
		return result, fmt.Errorf("dice count %d: %w", diceCount, ErrInvalidInput)
	}
	for i := 0; i < diceCount; i++ {
		result[roller.Face(die)]++
	}
	return result, nil
}

// ChaseSymbol plays the keep/re-roll rule for one trial: every die showing
// the target symbol is kept, every other die is re-rolled, up to rolls
// throws. It returns the cumulative hit count after each throw, so the
// returned slice is non-decreasing and bounded by diceCount.
func ChaseSymbol(die Die, roller *Roller, diceCount, rolls int, target Symbol) ([]int, error) {
	if diceCount < 0 {
		return nil, fmt.Errorf("dice count %d: %w", diceCount, ErrInvalidInput)
	}
	if rolls < 1 {
		return nil, fmt.Errorf("roll count %d: %w", rolls, ErrInvalidInput)
	}

	outcome := make([]int, rolls)
	hits := 0

	for roll := 0; roll < rolls; roll++ {
		// Only the dice not already showing the target get thrown.
		remaining := diceCount - hits
		for i := 0; i < remaining; i++ {
			if roller.Face(die) == target {
				hits++
			}
		}
		outcome[roll] = hits
	}
	return outcome, nil
}
