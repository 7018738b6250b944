package main

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Roller is the simulation's random source. Seed zero seeds from the clock;
// any other seed makes runs reproducible.
type Roller struct {
	rng *rand.Rand
}

func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Face draws one face of the die uniformly at random.
func (r *Roller) Face(d Die) Symbol {
	return d.Face(r.rng.Intn(d.Faces()))
}

var rangeRe = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)

// parseDiceRange reads a dice-count range such as "2-8", a comma list such
// as "2,4,6", or a single count. Counts must be positive and ascending.
func parseDiceRange(input string) ([]int, error) {
	if m := rangeRe.FindStringSubmatch(input); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo < 1 || hi < lo {
			return nil, fmt.Errorf("dice range %q: %w", input, ErrInvalidInput)
		}
		counts := make([]int, 0, hi-lo+1)
		for d := lo; d <= hi; d++ {
			counts = append(counts, d)
		}
		return counts, nil
	}

	parts := strings.Split(input, ",")
	counts := make([]int, 0, len(parts))
	prev := 0
	for _, part := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d < 1 || d <= prev {
			return nil, fmt.Errorf("dice range %q: %w", input, ErrInvalidInput)
		}
		counts = append(counts, d)
		prev = d
	}
	return counts, nil
}
