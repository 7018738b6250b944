package main

import (
	"errors"
	"testing"
)

func TestSimulateRollSumsToDiceCount(t *testing.T) {
	die := NewKingOfTokyoDie()
	roller := NewRoller(1)
	for _, n := range []int{0, 1, 3, 6, 12} {
		result, err := SimulateRoll(die, roller, n)
		if err != nil {
			t.Fatal(err)
		}
		if result.Total() != n {
			t.Fatalf("dice=%d: counts sum to %d", n, result.Total())
		}
	}
}

func TestSimulateRollNegative(t *testing.T) {
	_, err := SimulateRoll(NewKingOfTokyoDie(), NewRoller(1), -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChaseSymbolMonotonic(t *testing.T) {
	die := NewKingOfTokyoDie()
	roller := NewRoller(7)
	for trial := 0; trial < 100; trial++ {
		outcome, err := ChaseSymbol(die, roller, 6, 3, One)
		if err != nil {
			t.Fatal(err)
		}
		prev := 0
		for roll, hits := range outcome {
			if hits < prev || hits > 6 {
				t.Fatalf("roll %d: hits %d (prev %d)", roll+1, hits, prev)
			}
			prev = hits
		}
	}
}

func TestChaseSymbolZeroDice(t *testing.T) {
	outcome, err := ChaseSymbol(NewKingOfTokyoDie(), NewRoller(1), 0, 3, Claw)
	if err != nil {
		t.Fatal(err)
	}
	for _, hits := range outcome {
		if hits != 0 {
			t.Fatalf("zero dice produced %d hits", hits)
		}
	}
}

func TestChaseSymbolInvalid(t *testing.T) {
	die := NewKingOfTokyoDie()
	if _, err := ChaseSymbol(die, NewRoller(1), -2, 3, Claw); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative dice: got %v", err)
	}
	if _, err := ChaseSymbol(die, NewRoller(1), 6, 0, Claw); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero rolls: got %v", err)
	}
}

func TestChaseSymbolDeterministic(t *testing.T) {
	die := NewKingOfTokyoDie()
	a, _ := ChaseSymbol(die, NewRoller(42), 6, 3, One)
	b, _ := ChaseSymbol(die, NewRoller(42), 6, 3, One)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverged at roll %d: %v vs %v", i+1, a, b)
		}
	}
}
