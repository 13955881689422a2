// Package advice holds the static, heuristic recommendations printed next to the
// analysis results. The tables live in an embedded YAML file so they can be
// edited without touching code.
package advice

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dixieflatline76/Slim/asset"
)

// FileName is the embedded asset holding the advice tables.
const FileName = "advice.yaml"

// Source provides raw embedded files.
type Source interface {
	GetRaw(name string) ([]byte, error)
}

// HeavyDependency is a package known to add noticeably to app size.
type HeavyDependency struct {
	Name string `yaml:"name"`
	Note string `yaml:"note"`
}

// Category groups related suggestions.
type Category struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Advice is the full set of advisory tables.
type Advice struct {
	Heavy       []HeavyDependency `yaml:"heavy_dependencies"`
	Watched     []string          `yaml:"watched_comments"`
	Suggestions []Category        `yaml:"suggestions"`
	Commands    []string          `yaml:"commands"`
	NextSteps   []string          `yaml:"next_steps"`
}

// Load parses the advice tables from src.
func Load(src Source) (*Advice, error) {
	data, err := src.GetRaw(FileName)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return Parse(data)
}

// Default loads the advice tables embedded in the binary.
func Default() (*Advice, error) {
	return Load(asset.NewManager())
}

// Parse decodes advice tables from YAML.
func Parse(data []byte) (*Advice, error) {
	var a Advice
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing advice: %w", err)
	}
	return &a, nil
}

// HeavyNotes returns the heavy table as a name -> note map.
func (a *Advice) HeavyNotes() map[string]string {
	notes := make(map[string]string, len(a.Heavy))
	for _, h := range a.Heavy {
		notes[h.Name] = h.Note
	}
	return notes
}
