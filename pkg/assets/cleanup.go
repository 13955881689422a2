package assets

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Slim/util/log"
)

// RemoveMetadataFiles deletes OS metadata files (e.g. .DS_Store) anywhere under root
// and returns the paths it removed, or would remove when dryRun is set.
// Entries that cannot be read or removed are logged and skipped.
func RemoveMetadataFiles(root string, names []string, dryRun bool) ([]string, error) {
	match := make(map[string]bool, len(names))
	for _, n := range names {
		match[n] = true
	}

	removed := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Debugf("Cleanup: Error accessing path %s: %v", path, walkErr)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			if path == root {
				return walkErr
			}
			return nil
		}
		if d.IsDir() || !match[d.Name()] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if dryRun {
			removed = append(removed, rel)
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.Printf("Cleanup: Failed to remove %s: %v", path, err)
			return nil
		}
		removed = append(removed, rel)
		return nil
	})
	if err != nil {
		return removed, err
	}
	return removed, nil
}
