// Package deps reads a pubspec.yaml manifest and the package imports of Dart
// sources, and compares the two.
package deps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrManifestNotFound is returned when the manifest file does not exist.
var ErrManifestNotFound = errors.New("manifest not found")

// SourceKind says where a dependency comes from.
type SourceKind string

const (
	SourceHosted  SourceKind = "hosted"
	SourceSDK     SourceKind = "sdk"
	SourcePath    SourceKind = "path"
	SourceGit     SourceKind = "git"
	SourceUnknown SourceKind = "unknown"
)

// Dependency is one entry of a dependencies section.
type Dependency struct {
	Name       string     `json:"name"`
	Constraint string     `json:"constraint"`
	Source     SourceKind `json:"source"`
}

// Manifest is the part of pubspec.yaml the analysis needs.
type Manifest struct {
	Name            string
	Dependencies    []Dependency
	DevDependencies []Dependency
	// Lines is the raw file, kept for comment scanning.
	Lines []string
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes pubspec.yaml content. Dependency order follows the file.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{
		Dependencies:    []Dependency{},
		DevDependencies: []Dependency{},
		Lines:           strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		// Empty file.
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level is not a mapping (line %d)", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name":
			m.Name = strings.TrimSpace(val.Value)
		case "dependencies":
			m.Dependencies = parseSection(val)
		case "dev_dependencies":
			m.DevDependencies = parseSection(val)
		}
	}
	return m, nil
}

// DeclaredNames returns the dependency names in file order, without firstParty ones.
func (m *Manifest) DeclaredNames(firstParty []string) []string {
	skip := make(map[string]bool, len(firstParty))
	for _, n := range firstParty {
		skip[n] = true
	}
	names := make([]string, 0, len(m.Dependencies))
	for _, d := range m.Dependencies {
		if !skip[d.Name] {
			names = append(names, d.Name)
		}
	}
	return names
}

// DevNames returns the dev dependency names in file order.
func (m *Manifest) DevNames() []string {
	names := make([]string, 0, len(m.DevDependencies))
	for _, d := range m.DevDependencies {
		names = append(names, d.Name)
	}
	return names
}

func parseSection(n *yaml.Node) []Dependency {
	deps := []Dependency{}
	if n.Kind != yaml.MappingNode {
		// "dependencies:" with nothing under it decodes as null.
		return deps
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		constraint, source := describe(n.Content[i+1])
		deps = append(deps, Dependency{
			Name:       n.Content[i].Value,
			Constraint: constraint,
			Source:     source,
		})
	}
	return deps
}

// describe renders a dependency value as a short constraint string.
func describe(n *yaml.Node) (string, SourceKind) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" || strings.TrimSpace(n.Value) == "" {
			return "any", SourceHosted
		}
		return n.Value, SourceHosted
	case yaml.MappingNode:
		fields := map[string]*yaml.Node{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields[n.Content[i].Value] = n.Content[i+1]
		}
		version := ""
		if v, ok := fields["version"]; ok {
			version = v.Value
		}
		switch {
		case fields["sdk"] != nil:
			return "sdk: " + fields["sdk"].Value, SourceSDK
		case fields["path"] != nil:
			return "path: " + fields["path"].Value, SourcePath
		case fields["git"] != nil:
			return "git: " + gitURL(fields["git"]), SourceGit
		case fields["hosted"] != nil:
			if version != "" {
				return version, SourceHosted
			}
			return "hosted: " + hostedURL(fields["hosted"]), SourceHosted
		case version != "":
			return version, SourceHosted
		}
	}
	return "", SourceUnknown
}

func gitURL(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	ref := ""
	url := ""
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch n.Content[i].Value {
		case "url":
			url = n.Content[i+1].Value
		case "ref":
			ref = n.Content[i+1].Value
		}
	}
	if ref != "" {
		return url + "#" + ref
	}
	return url
}

func hostedURL(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "url" {
			return n.Content[i+1].Value
		}
	}
	return ""
}
