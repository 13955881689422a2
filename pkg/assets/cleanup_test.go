package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveMetadataFiles(t *testing.T) {
	root := t.TempDir()
	top := filepath.Join(root, ".DS_Store")
	nested := filepath.Join(root, "assets", "icons", ".DS_Store")
	keep := filepath.Join(root, "assets", "icons", "logo.png")
	writeFile(t, top, []byte("x"))
	writeFile(t, nested, []byte("x"))
	writeFile(t, keep, []byte("x"))

	t.Run("DryRun", func(t *testing.T) {
		got, err := RemoveMetadataFiles(root, []string{".DS_Store"}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{".DS_Store", "assets/icons/.DS_Store"}, got)
		assert.FileExists(t, top)
		assert.FileExists(t, nested)
	})

	t.Run("Remove", func(t *testing.T) {
		got, err := RemoveMetadataFiles(root, []string{".DS_Store"}, false)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.NoFileExists(t, top)
		assert.NoFileExists(t, nested)
		assert.FileExists(t, keep)
	})

	t.Run("NothingLeft", func(t *testing.T) {
		got, err := RemoveMetadataFiles(root, []string{".DS_Store"}, false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRemoveMetadataFilesMissingRoot(t *testing.T) {
	_, err := RemoveMetadataFiles(filepath.Join(t.TempDir(), "gone"), []string{".DS_Store"}, false)
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
