package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/dixieflatline76/Slim/util/log"
)

// referenceAttrs are the attributes whose values can point at an asset.
var referenceAttrs = map[string]bool{
	"src":     true,
	"href":    true,
	"content": true,
	"srcset":  true,
}

// HTMLReferences collects attribute values that may reference assets from every
// .html file under dir (a Flutter project's web/ entry points), one per line.
// A missing dir yields "".
func HTMLReferences(dir string) (string, error) {
	files, err := ListFiles(dir, ".html")
	if err != nil {
		return "", err
	}

	var refs []string
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		found, err := htmlFileReferences(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		refs = append(refs, found...)
	}
	return strings.Join(refs, "\n"), nil
}

func htmlFileReferences(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return ParseReferences(doc), nil
}

// ParseReferences walks an HTML tree and returns the non-empty values of
// src, href, content and srcset attributes in document order.
func ParseReferences(doc *html.Node) []string {
	var refs []string
	var crawler func(*html.Node)
	crawler = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if referenceAttrs[a.Key] && strings.TrimSpace(a.Val) != "" {
					refs = append(refs, strings.TrimSpace(a.Val))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			crawler(c)
		}
	}
	crawler(doc)
	return refs
}
