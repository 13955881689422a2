// Package scanner finds candidate identifiers that never appear in a body of text.
//
// It is the shared core of the unused-asset and unused-dependency checks. Everything
// here is a pure function over strings: no file system access, no logging, no errors.
package scanner

import "strings"

// Identifier is anything that can be searched for in source text.
// ShortForm is the final path segment, LongForm the identifier as given.
type Identifier interface {
	ShortForm() string
	LongForm() string
}

// Name is a plain string identifier (an asset path or a package name).
type Name string

// ShortForm returns the text after the last '/'.
func (n Name) ShortForm() string {
	s := string(n)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// LongForm returns the name unchanged.
func (n Name) LongForm() string {
	return string(n)
}

// FindUnreferenced returns the candidates for which neither the short nor the long
// form occurs as a substring of corpus or supplement, in input order.
//
// Any textual coincidence counts as a reference, so the result can miss unused
// candidates but should not list used ones. An empty form always matches.
// Paths assembled at runtime (interpolation, concatenation) are not detected.
func FindUnreferenced[T Identifier](candidates []T, corpus, supplement string) []T {
	unreferenced := make([]T, 0)
	for _, c := range candidates {
		if !IsReferenced(c, corpus, supplement) {
			unreferenced = append(unreferenced, c)
		}
	}
	return unreferenced
}

// IsReferenced reports whether either form of id occurs in any of the texts.
func IsReferenced(id Identifier, texts ...string) bool {
	forms := [2]string{id.ShortForm(), id.LongForm()}
	for _, p := range forms {
		for _, t := range texts {
			if strings.Contains(t, p) {
				return true
			}
		}
	}
	return false
}
