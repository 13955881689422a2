package deps

import "github.com/dixieflatline76/Slim/pkg/scanner"

// AnalyzeOptions tunes Analyze.
type AnalyzeOptions struct {
	// FirstParty names are ignored on both sides (e.g. "flutter").
	FirstParty []string
	// Heavy maps known size-heavy packages to a note.
	Heavy map[string]string
	// Watched are keywords looked for in commented-out manifest lines.
	Watched []string
}

// DeclaredDependency is a declared dependency with its advisory annotations.
type DeclaredDependency struct {
	Dependency
	Kind      ConstraintKind `json:"kind"`
	HeavyNote string         `json:"heavy_note,omitempty"`
}

// Analysis is the outcome of comparing a manifest with the imports in use.
type Analysis struct {
	Package  string               `json:"package"`
	Declared []DeclaredDependency `json:"declared"`
	Used     []string             `json:"used"`
	// Unused is declared but never imported.
	Unused []string `json:"unused"`
	// Undeclared is imported but not declared under dependencies.
	Undeclared []string `json:"undeclared"`
	// DevOnly is the part of Undeclared that dev_dependencies declares.
	DevOnly   []string        `json:"dev_only"`
	Commented []CommentedLine `json:"commented"`
}

// Analyze compares the manifest's dependencies with imports.
func Analyze(m *Manifest, imports []string, opts AnalyzeOptions) Analysis {
	firstParty := scanner.NewSet(opts.FirstParty...)

	declared := make([]DeclaredDependency, 0, len(m.Dependencies))
	for _, d := range m.Dependencies {
		if firstParty.Contains(d.Name) {
			continue
		}
		declared = append(declared, DeclaredDependency{
			Dependency: d,
			Kind:       Classify(d),
			HeavyNote:  opts.Heavy[d.Name],
		})
	}

	imported := scanner.Difference(imports, firstParty)
	usage := scanner.AnalyzeUsage(m.DeclaredNames(opts.FirstParty), imported)

	return Analysis{
		Package:    m.Name,
		Declared:   declared,
		Used:       usage.Used,
		Unused:     usage.Unused,
		Undeclared: usage.Undeclared,
		DevOnly:    scanner.Intersection(usage.Undeclared, scanner.NewSet(m.DevNames()...)),
		Commented:  CommentedDependencies(m.Lines, opts.Watched),
	}
}
