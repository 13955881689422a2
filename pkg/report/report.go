// Package report renders analysis results for humans (text) or tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dixieflatline76/Slim/pkg/advice"
	"github.com/dixieflatline76/Slim/pkg/assets"
	"github.com/dixieflatline76/Slim/pkg/compress"
	"github.com/dixieflatline76/Slim/pkg/deps"
	"github.com/dixieflatline76/Slim/pkg/scanner"
	"github.com/dixieflatline76/Slim/util"
)

// Presenter writes reports to w. The first write error is kept and returned by Err.
type Presenter struct {
	w   io.Writer
	err error
}

// NewPresenter creates a Presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Err returns the first write error, if any.
func (p *Presenter) Err() error {
	return p.err
}

func (p *Presenter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Title prints a run banner.
func (p *Presenter) Title(text string) {
	p.printf("%s\n\n", text)
}

// Done prints the closing line of a run.
func (p *Presenter) Done(text string) {
	p.printf("\n✨ %s\n", text)
}

// Cleanup lists removed metadata files.
func (p *Presenter) Cleanup(names, removed []string, dryRun bool) {
	label := "metadata files"
	if len(names) == 1 {
		label = names[0] + " files"
	}
	p.printf("🧹 Removing %s...\n", label)
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	for _, r := range removed {
		p.printf("🗑️  %s %s\n", verb, r)
	}
	if len(removed) == 0 {
		p.printf("✅ Nothing to remove\n")
	}
}

// UnusedAssets lists assets no source file refers to, sorted by path.
func (p *Presenter) UnusedAssets(unused []assets.Asset) {
	p.printf("\n🔍 Searching for unused assets...\n")
	if len(unused) == 0 {
		p.printf("✅ All assets appear to be in use\n")
		return
	}

	sorted := append([]assets.Asset(nil), unused...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	p.printf("⚠️  Potentially unused assets:\n")
	for _, a := range sorted {
		p.printf("  📁 %s (%s)\n", a.Path, util.FormatKB(a.Size))
	}
	p.printf("💾 Total potentially unused: %s\n", util.FormatKB(assets.TotalSize(unused)))
}

// Optimization prints per-image outcomes and the totals.
func (p *Presenter) Optimization(res compress.Result) {
	p.printf("\n🖼️  Optimizing images...\n")
	for _, it := range res.Items {
		p.printf("📁 %s: %s\n", it.Name, util.FormatKB(it.Before))
		switch it.Outcome {
		case compress.OutcomeReduced:
			p.printf("  ✅ Reduced by %s\n", util.FormatKB(it.Reduction()))
		case compress.OutcomeAlreadyOptimized:
			p.printf("  ➡️  Already optimized\n")
		case compress.OutcomeSuggestWebP:
			p.printf("  💡 Consider replacing with WebP: %s (save %s)\n",
				util.FormatKB(it.CandidateSize), util.FormatKB(it.Before-it.CandidateSize))
		case compress.OutcomeToolMissing:
			p.printf("  ⚠️  WebP tools not available, skipping optimization\n")
		case compress.OutcomeFailed:
			p.printf("  ❌ Failed: %s\n", it.Error)
		case compress.OutcomeDryRun:
			p.printf("  🔎 Dry run, not modified\n")
		case compress.OutcomeSkipped:
			if it.Note != "" {
				p.printf("  ➡️  Skipped: %s\n", it.Note)
			}
		}
		if it.Recompressed {
			p.printf("  ✅ Lossless PNG now %s\n", util.FormatKB(it.After))
		}
	}

	p.printf("\n📊 Total assets: %s → %s\n", util.FormatKB(res.Before), util.FormatKB(res.After))
	if saved := res.Saved(); saved > 0 {
		p.printf("💾 Saved: %s\n", util.FormatKB(saved))
	}
}

// Images lists image dimensions and flags those larger than maxDimension.
func (p *Presenter) Images(infos []assets.ImageInfo, maxDimension int) {
	p.printf("📐 Image dimensions:\n")
	oversized := 0
	for _, i := range infos {
		if i.Error != "" {
			p.printf("  ❌ %s: %s\n", i.Path, i.Error)
			continue
		}
		marker := "📁"
		if i.Exceeds(maxDimension) {
			marker = "⚠️"
			oversized++
		}
		p.printf("  %s %s: %dx%d, %s\n", marker, i.Path, i.Width, i.Height, util.FormatKB(i.Size))
	}
	if oversized > 0 {
		p.printf("\n💡 %d images are larger than %d px, consider downscaling them\n", oversized, maxDimension)
	}
}

// DependencyOverview lists declared dependencies with their heavy-package notes,
// then the commented-out leftovers of the manifest.
func (p *Presenter) DependencyOverview(a deps.Analysis) {
	p.printf("🔍 Current dependencies analysis:\n")
	for _, d := range a.Declared {
		marker := "📦"
		notes := ""
		if d.HeavyNote != "" {
			marker = "⚠️"
			notes = " - " + d.HeavyNote
		}
		if d.Kind == deps.KindInvalid {
			notes += " (unrecognized constraint)"
		}
		p.printf("%s %s: %s%s\n", marker, d.Name, d.Constraint, notes)
	}

	p.printf("\n💭 Found commented dependencies in pubspec.yaml:\n")
	if len(a.Commented) == 0 {
		p.printf("  (none)\n")
	}
	for _, c := range a.Commented {
		p.printf("  Line %d: %s\n", c.Line, c.Text)
	}
}

// DependencyUsage reports declared-but-unused and imported-but-undeclared packages.
func (p *Presenter) DependencyUsage(a deps.Analysis) {
	p.printf("\n🔍 Scanning for unused dependencies...\n\n")
	if len(a.Unused) == 0 {
		p.printf("✅ All dependencies appear to be in use\n")
	} else {
		p.printf("⚠️  Potentially unused dependencies:\n")
		for _, d := range scanner.Sorted(scanner.NewSet(a.Unused...)) {
			p.printf("  📦 %s\n", d)
		}
		p.printf("\n💾 Consider removing %d unused dependencies\n", len(a.Unused))
	}

	if len(a.Undeclared) == 0 {
		return
	}
	dev := make(map[string]bool, len(a.DevOnly))
	for _, d := range a.DevOnly {
		dev[d] = true
	}
	p.printf("\n⚠️  Imports without dependencies (check dev_dependencies):\n")
	for _, d := range scanner.Sorted(scanner.NewSet(a.Undeclared...)) {
		if dev[d] {
			p.printf("  📦 %s (dev_dependencies)\n", d)
			continue
		}
		p.printf("  📦 %s\n", d)
	}
}

// Suggestions prints the advice categories.
func (p *Presenter) Suggestions(cats []advice.Category) {
	p.printf("\n💡 Optimization suggestions:\n\n")
	for _, c := range cats {
		p.printf("%s\n", c.Category)
		for _, s := range c.Items {
			p.printf("  • %s\n", s)
		}
		p.printf("\n")
	}
}

// Commands prints ready-to-paste shell commands.
func (p *Presenter) Commands(cmds []string) {
	p.printf("🚀 Quick optimization commands:\n\n")
	for _, c := range cmds {
		p.printf("%s\n", c)
	}
}

// NextSteps prints a numbered list.
func (p *Presenter) NextSteps(steps []string) {
	if len(steps) == 0 {
		return
	}
	p.printf("\n💡 Next steps:\n")
	for i, s := range steps {
		p.printf("%d. %s\n", i+1, s)
	}
}

// JSON writes v as indented JSON.
func (p *Presenter) JSON(v any) error {
	if p.err != nil {
		return p.err
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		p.err = fmt.Errorf("encoding report: %w", err)
	}
	return p.err
}
