package deps

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/Slim/pkg/corpus"
	"github.com/dixieflatline76/Slim/pkg/scanner"
	"github.com/dixieflatline76/Slim/util/log"
)

const packageScheme = "package:"

// importMarkers are the line prefixes that declare a package directive.
var importMarkers = []string{
	"import '" + packageScheme,
	`import "` + packageScheme,
	"export '" + packageScheme,
	`export "` + packageScheme,
}

// ParseImportLine returns the package named by a package import/export line.
func ParseImportLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range importMarkers {
		if !strings.HasPrefix(line, marker) {
			continue
		}
		rest := line[len(marker):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		pkg := strings.NewReplacer("'", "", `"`, "", ";", "").Replace(rest)
		pkg = strings.TrimSpace(pkg)
		return pkg, pkg != ""
	}
	return "", false
}

// ExtractImports returns the packages imported by r, in first-seen order, leaving
// out own (the project's own package).
// Lines have no length limit. On a read error the imports found so far are
// returned along with it.
func ExtractImports(r io.Reader, own string) ([]string, error) {
	var pkgs []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if pkg, ok := ParseImportLine(line); ok && pkg != own {
			pkgs = append(pkgs, pkg)
		}
		if err == io.EOF {
			return scanner.Unique(pkgs), nil
		}
		if err != nil {
			return scanner.Unique(pkgs), err
		}
	}
}

// LoadImports collects the imported packages of every source file under dir with
// extension ext. Files that cannot be read contribute whatever was read from them.
func LoadImports(dir, ext, own string) ([]string, error) {
	files, err := corpus.ListFiles(dir, ext)
	if err != nil {
		return nil, err
	}

	var all []string
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		pkgs, err := importsOf(path, own)
		if err != nil {
			// Keep what was read before the failure.
			log.Debugf("Imports: Error reading %s: %v", rel, err)
		}
		all = append(all, pkgs...)
	}
	return scanner.Unique(all), nil
}

func importsOf(path, own string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ExtractImports(f, own)
}

// CommentedLine is a commented-out manifest line mentioning a watched package.
type CommentedLine struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// CommentedDependencies finds comment lines that mention one of keywords.
// Line numbers are 1-based.
func CommentedDependencies(lines []string, keywords []string) []CommentedLine {
	found := []CommentedLine{}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		for _, k := range keywords {
			if k != "" && strings.Contains(trimmed, k) {
				found = append(found, CommentedLine{Line: i + 1, Text: trimmed})
				break
			}
		}
	}
	return found
}
