// Command profilebuilder writes the stock die profiles the simulator loads
// from profiles/. Run it after changing the built-in definitions here, or
// use -name/-faces to emit a custom die.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

type dieProfile struct {
	Name  string   `yaml:"name"`
	Faces []string `yaml:"faces"`
}

var stockProfiles = map[string]dieProfile{
	"king_of_tokyo.yaml": {
		Name:  "King of Tokyo",
		Faces: []string{"one", "two", "three", "heart", "claw", "energy"},
	},
	"berserk.yaml": {
		Name:  "Berserk",
		Faces: []string{"one", "two", "claw", "claw", "claw", "energy"},
	},
}

var validSymbols = map[string]bool{
	"one": true, "two": true, "three": true,
	"heart": true, "claw": true, "energy": true,
}

func main() {
	outDir := flag.String("out", "profiles", "directory to write profiles into")
	name := flag.String("name", "", "custom die name; writes only this die when set")
	faces := flag.String("faces", "", "comma-separated face symbols for the custom die")
	flag.Parse()

	if *name != "" {
		profile, err := customProfile(*name, *faces)
		if err != nil {
			log.Fatal(err)
		}
		file := strings.ToLower(strings.ReplaceAll(*name, " ", "_")) + ".yaml"
		if err := writeProfile(profile, filepath.Join(*outDir, file)); err != nil {
			log.Fatal(err)
		}
		return
	}

	for file, profile := range stockProfiles {
		if err := writeProfile(profile, filepath.Join(*outDir, file)); err != nil {
			log.Fatal(err)
		}
	}
}

func customProfile(name, faces string) (dieProfile, error) {
	profile := dieProfile{Name: name}
	for _, f := range strings.Split(faces, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if !validSymbols[f] {
			return dieProfile{}, fmt.Errorf("unknown face symbol %q", f)
		}
		profile.Faces = append(profile.Faces, f)
	}
	if len(profile.Faces) == 0 {
		return dieProfile{}, fmt.Errorf("die %q needs at least one face", name)
	}
	return profile, nil
}

func writeProfile(profile dieProfile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d faces)\n", path, len(profile.Faces))
	return nil
}
