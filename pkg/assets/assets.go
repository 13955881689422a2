// Package assets enumerates the asset files of a project and inspects images.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dixieflatline76/Slim/pkg/scanner"
	"github.com/dixieflatline76/Slim/util"
	"github.com/dixieflatline76/Slim/util/log"
)

// Asset is one file under the assets directory.
type Asset struct {
	// Name is the base name, e.g. "logo.png".
	Name string `json:"name"`
	// Path is relative to the project root with forward slashes, e.g. "assets/icons/logo.png".
	Path string `json:"path"`
	// AbsPath is the location on disk.
	AbsPath string `json:"-"`
	// Ext is the lower-case extension including the dot.
	Ext  string `json:"ext"`
	Size int64  `json:"size"`
}

// ShortForm implements scanner.Identifier.
func (a Asset) ShortForm() string { return a.Name }

// LongForm implements scanner.Identifier.
func (a Asset) LongForm() string { return a.Path }

// Enumerate lists the regular files under dir, skipping any whose base name is
// in ignore. A relative dir is resolved against root. Results are sorted by Path.
// A missing directory yields no assets.
func Enumerate(root, dir string, ignore []string) ([]Asset, error) {
	root = filepath.Clean(root)
	base := filepath.FromSlash(dir)
	if !filepath.IsAbs(base) {
		base = filepath.Join(root, base)
	}
	base = filepath.Clean(base)

	if fi, err := os.Stat(base); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Assets directory %s not found, nothing to scan", base)
			return []Asset{}, nil
		}
		return nil, fmt.Errorf("reading assets directory %s: %w", base, err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("assets path %s is not a directory", base)
	}

	skip := make(map[string]bool, len(ignore))
	for _, n := range ignore {
		skip[n] = true
	}

	found := make([]Asset, 0, 64)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || skip[d.Name()] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := util.SlashRel(root, path)
		if err != nil {
			return err
		}

		found = append(found, Asset{
			Name:    d.Name(),
			Path:    rel,
			AbsPath: path,
			Ext:     strings.ToLower(filepath.Ext(d.Name())),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", base, err)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

// FilterByExt keeps the assets whose extension is one of exts (case-insensitive).
func FilterByExt(all []Asset, exts []string) []Asset {
	out := make([]Asset, 0, len(all))
	for _, a := range all {
		if util.HasExt(a.Name, exts) {
			out = append(out, a)
		}
	}
	return out
}

// FindUnused returns the assets referenced neither by name nor by path in corpus
// or supplement.
func FindUnused(all []Asset, corpus, supplement string) []Asset {
	return scanner.FindUnreferenced(all, corpus, supplement)
}

// TotalSize sums the sizes of the given assets.
func TotalSize(all []Asset) int64 {
	var total int64
	for _, a := range all {
		total += a.Size
	}
	return total
}
