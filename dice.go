package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const _profileFilepath = "./profiles/"

// Symbol is one of the categories a die face can show.
type Symbol int

const (
	One Symbol = iota
	Two
	Three
	Heart
	Claw
	Energy
	NumSymbols
)

var symbolNames = [NumSymbols]string{"one", "two", "three", "heart", "claw", "energy"}

func (s Symbol) String() string {
	if s < 0 || s >= NumSymbols {
		return fmt.Sprintf("symbol(%d)", int(s))
	}
	return symbolNames[s]
}

func ParseSymbol(name string) (Symbol, error) {
	for i, n := range symbolNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return Symbol(i), nil
		}
	}
	return 0, fmt.Errorf("unknown symbol %q: %w", name, ErrInvalidInput)
}

// Die is an immutable face list. The stock King of Tokyo die has one face
// per symbol; profiles can weight symbols by repeating faces.
type Die struct {
	Name  string
	faces []Symbol
}

func NewKingOfTokyoDie() Die {
	return Die{
		Name:  "King of Tokyo",
		faces: []Symbol{One, Two, Three, Heart, Claw, Energy},
	}
}

func newDie(name string, faceNames []string) (Die, error) {
	if len(faceNames) == 0 {
		return Die{}, fmt.Errorf("die %q has no faces: %w", name, ErrInvalidInput)
	}
	faces := make([]Symbol, len(faceNames))
	for i, fn := range faceNames {
		s, err := ParseSymbol(fn)
		if err != nil {
			return Die{}, fmt.Errorf("die %q face %d: %w", name, i+1, err)
		}
		faces[i] = s
	}
	return Die{Name: name, faces: faces}, nil
}

func (d Die) Faces() int { return len(d.faces) }

func (d Die) Face(i int) Symbol { return d.faces[i] }

// Symbols returns the distinct symbols the die can show, in symbol order.
func (d Die) Symbols() []Symbol {
	var seen [NumSymbols]bool
	for _, f := range d.faces {
		seen[f] = true
	}
	out := make([]Symbol, 0, NumSymbols)
	for s := Symbol(0); s < NumSymbols; s++ {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func (d Die) PrintInfo() {
	fmt.Printf("Die: %s | Faces: %d\n", d.Name, len(d.faces))
	for i, f := range d.faces {
		fmt.Printf("Face %d: %s\n", i+1, f)
	}
}

type dieProfile struct {
	Name  string   `yaml:"name"`
	Faces []string `yaml:"faces"`
}

func loadDie(name string) Die {
	var (
		data []byte
		err  error
	)

	if data, err = os.ReadFile(_profileFilepath + name); err != nil {
		panic(err)
	}
	profile := dieProfile{}
	if err = yaml.Unmarshal(data, &profile); err != nil {
		panic(err)
	}
	if profile.Name == "" {
		profile.Name = strings.TrimSuffix(name, ".yaml")
	}
	die, err := newDie(profile.Name, profile.Faces)
	if err != nil {
		panic(err)
	}
	return die
}
