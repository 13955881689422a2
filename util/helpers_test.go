package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKB(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "Zero", input: 0, expected: "0.0 KB"},
		{name: "Exact", input: 2048, expected: "2.0 KB"},
		{name: "Fraction", input: 1536, expected: "1.5 KB"},
		{name: "Negative", input: -512, expected: "-0.5 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatKB(tt.input))
		})
	}
}

func TestSlashRel(t *testing.T) {
	base := t.TempDir()
	rel, err := SlashRel(base, filepath.Join(base, "assets", "icons", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "assets/icons/logo.png", rel)
}

func TestHasExt(t *testing.T) {
	exts := []string{".png", ".webp"}
	assert.True(t, HasExt("a.png", exts))
	assert.True(t, HasExt("A.PNG", exts))
	assert.True(t, HasExt("dir/b.webp", exts))
	assert.False(t, HasExt("c.jpg", exts))
	assert.False(t, HasExt("png", exts))
}
