package scanner

// Usage splits declared and imported package names into three groups.
// Package names are already normalized, so matching is exact rather than by substring.
type Usage struct {
	// Used is declared ∩ imported, in declared order.
	Used []string
	// Unused is declared − imported, in declared order.
	Unused []string
	// Undeclared is imported − declared, in imported order.
	Undeclared []string
}

// AnalyzeUsage compares declared dependencies against imported packages.
func AnalyzeUsage(declared, imported []string) Usage {
	declaredSet := NewSet(declared...)
	importedSet := NewSet(imported...)

	return Usage{
		Used:       Intersection(declared, importedSet),
		Unused:     Difference(declared, importedSet),
		Undeclared: Difference(imported, declaredSet),
	}
}
