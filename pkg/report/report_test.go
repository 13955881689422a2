package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Slim/pkg/advice"
	"github.com/dixieflatline76/Slim/pkg/assets"
	"github.com/dixieflatline76/Slim/pkg/compress"
	"github.com/dixieflatline76/Slim/pkg/deps"
)

func TestCleanup(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Cleanup([]string{".DS_Store"}, []string{"assets/.DS_Store"}, false)
	assert.Equal(t, "🧹 Removing .DS_Store files...\n🗑️  Removed assets/.DS_Store\n", buf.String())

	buf.Reset()
	p.Cleanup([]string{".DS_Store", "Thumbs.db"}, nil, true)
	assert.Equal(t, "🧹 Removing metadata files...\n✅ Nothing to remove\n", buf.String())

	buf.Reset()
	p.Cleanup(nil, []string{"x/.DS_Store"}, true)
	assert.Contains(t, buf.String(), "Would remove x/.DS_Store")
}

func TestUnusedAssets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.UnusedAssets([]assets.Asset{
		{Name: "z.png", Path: "assets/z.png", Size: 2048},
		{Name: "banner.png", Path: "assets/banner.png", Size: 1536},
	})
	assert.Equal(t, "\n🔍 Searching for unused assets...\n"+
		"⚠️  Potentially unused assets:\n"+
		"  📁 assets/banner.png (1.5 KB)\n"+
		"  📁 assets/z.png (2.0 KB)\n"+
		"💾 Total potentially unused: 3.5 KB\n", buf.String())

	buf.Reset()
	p.UnusedAssets(nil)
	assert.Contains(t, buf.String(), "✅ All assets appear to be in use")
}

func TestOptimization(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Optimization(compress.Result{
		Items: []compress.Item{
			{Name: "a.webp", Outcome: compress.OutcomeReduced, Before: 2048, After: 1024},
			{Name: "b.webp", Outcome: compress.OutcomeAlreadyOptimized, Before: 1024, After: 1024},
			{Name: "c.png", Outcome: compress.OutcomeSuggestWebP, Before: 4096, After: 4096, CandidateSize: 1024},
			{Name: "d.png", Outcome: compress.OutcomeToolMissing, Before: 1024, After: 1024},
		},
		Before: 8192,
		After:  7168,
	})

	out := buf.String()
	assert.Contains(t, out, "📁 a.webp: 2.0 KB\n  ✅ Reduced by 1.0 KB\n")
	assert.Contains(t, out, "📁 b.webp: 1.0 KB\n  ➡️  Already optimized\n")
	assert.Contains(t, out, "  💡 Consider replacing with WebP: 1.0 KB (save 3.0 KB)\n")
	assert.Contains(t, out, "  ⚠️  WebP tools not available, skipping optimization\n")
	assert.Contains(t, out, "📊 Total assets: 8.0 KB → 7.0 KB\n💾 Saved: 1.0 KB\n")
}

func TestImages(t *testing.T) {
	var buf bytes.Buffer
	NewPresenter(&buf).Images([]assets.ImageInfo{
		{Asset: assets.Asset{Path: "assets/big.png", Size: 4096}, Width: 4000, Height: 3000},
		{Asset: assets.Asset{Path: "assets/icon.png", Size: 512}, Width: 64, Height: 64},
		{Asset: assets.Asset{Path: "assets/bad.jpg"}, Error: "corrupt"},
	}, 2048)

	assert.Equal(t, "📐 Image dimensions:\n"+
		"  ⚠️ assets/big.png: 4000x3000, 4.0 KB\n"+
		"  📁 assets/icon.png: 64x64, 0.5 KB\n"+
		"  ❌ assets/bad.jpg: corrupt\n"+
		"\n💡 1 images are larger than 2048 px, consider downscaling them\n", buf.String())
}

func testAnalysis() deps.Analysis {
	return deps.Analysis{
		Package: "shop",
		Declared: []deps.DeclaredDependency{
			{Dependency: deps.Dependency{Name: "http", Constraint: "^1.0.0"}, Kind: deps.KindCaret},
			{Dependency: deps.Dependency{Name: "geolocator", Constraint: "^10.0.0"}, Kind: deps.KindCaret, HeavyNote: "Heavy location package"},
			{Dependency: deps.Dependency{Name: "odd", Constraint: "latest"}, Kind: deps.KindInvalid},
		},
		Used:       []string{"http"},
		Unused:     []string{"odd", "geolocator"},
		Undeclared: []string{"mockito", "collection"},
		DevOnly:    []string{"mockito"},
		Commented:  []deps.CommentedLine{{Line: 12, Text: "# google_maps_flutter: ^2.5.0"}},
	}
}

func TestDependencyOverview(t *testing.T) {
	var buf bytes.Buffer
	NewPresenter(&buf).DependencyOverview(testAnalysis())

	assert.Equal(t, "🔍 Current dependencies analysis:\n"+
		"📦 http: ^1.0.0\n"+
		"⚠️ geolocator: ^10.0.0 - Heavy location package\n"+
		"📦 odd: latest (unrecognized constraint)\n"+
		"\n💭 Found commented dependencies in pubspec.yaml:\n"+
		"  Line 12: # google_maps_flutter: ^2.5.0\n", buf.String())
}

func TestDependencyUsage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)
	p.DependencyUsage(testAnalysis())

	assert.Equal(t, "\n🔍 Scanning for unused dependencies...\n\n"+
		"⚠️  Potentially unused dependencies:\n"+
		"  📦 geolocator\n"+
		"  📦 odd\n"+
		"\n💾 Consider removing 2 unused dependencies\n"+
		"\n⚠️  Imports without dependencies (check dev_dependencies):\n"+
		"  📦 collection\n"+
		"  📦 mockito (dev_dependencies)\n", buf.String())

	buf.Reset()
	p.DependencyUsage(deps.Analysis{})
	assert.Equal(t, "\n🔍 Scanning for unused dependencies...\n\n✅ All dependencies appear to be in use\n", buf.String())
}

func TestAdviceSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Suggestions([]advice.Category{{Category: "📦 Dependencies", Items: []string{"a", "b"}}})
	p.Commands([]string{"# c", "flutter clean"})
	p.NextSteps([]string{"one", "two"})
	p.NextSteps(nil)

	assert.Equal(t, "\n💡 Optimization suggestions:\n\n"+
		"📦 Dependencies\n  • a\n  • b\n\n"+
		"🚀 Quick optimization commands:\n\n# c\nflutter clean\n"+
		"\n💡 Next steps:\n1. one\n2. two\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPresenter(&buf).JSON(testAnalysis()))

	var got deps.Analysis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"odd", "geolocator"}, got.Unused)
	assert.Contains(t, buf.String(), `"dev_only": [`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrorIsKept(t *testing.T) {
	p := NewPresenter(failingWriter{})
	p.Title("x")
	p.NextSteps([]string{"y"})

	require.Error(t, p.Err())
	assert.EqualError(t, p.JSON(map[string]int{"a": 1}), "disk full")
}
