// Package corpus gathers the text that asset names are searched for.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dixieflatline76/Slim/util"
	"github.com/dixieflatline76/Slim/util/log"
)

// Corpus is the aggregated content of a set of source files.
type Corpus struct {
	// Text holds every readable file, in path order, separated by newlines.
	Text string
	// Files lists the files that went into Text, relative to the scanned dir.
	Files []string
	// Skipped lists files that could not be read.
	Skipped []string
}

// LoadSources reads every file under dir whose extension is ext.
// Unreadable files are skipped rather than failing the load, and a missing dir
// yields an empty corpus.
func LoadSources(dir, ext string) (Corpus, error) {
	out := Corpus{Files: []string{}, Skipped: []string{}}

	paths, err := ListFiles(dir, ext)
	if err != nil {
		return out, err
	}

	var b strings.Builder
	for _, rel := range paths {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			log.Debugf("Corpus: Skipping unreadable file %s: %v", rel, err)
			out.Skipped = append(out.Skipped, rel)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.Write(data)
		out.Files = append(out.Files, rel)
	}
	out.Text = b.String()
	return out, nil
}

// LoadOptional returns the content of path, or "" when it does not exist.
func LoadOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// ListFiles returns the slash-separated paths under dir ending in ext, sorted.
// Directories that cannot be entered are skipped.
func ListFiles(dir, ext string) ([]string, error) {
	if fi, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Directory %s not found, nothing to read", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", dir)
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Debugf("Corpus: Error accessing path %s: %v", path, walkErr)
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !util.HasExt(d.Name(), []string{ext}) {
			return nil
		}
		rel, err := util.SlashRel(dir, path)
		if err != nil {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
