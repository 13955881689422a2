package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// KB converts a byte count to kilobytes.
func KB(bytes int64) float64 {
	return float64(bytes) / 1024
}

// FormatKB formats a byte count as kilobytes with one decimal, e.g. "12.5 KB".
func FormatKB(bytes int64) string {
	return fmt.Sprintf("%.1f KB", KB(bytes))
}

// SlashRel returns target relative to base using forward slashes.
// Asset paths in Dart source are always written with '/', whatever the host OS.
func SlashRel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(filepath.ToSlash(rel), "./"), nil
}

// HasExt reports whether name ends with one of exts, ignoring case.
func HasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
