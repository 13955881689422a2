package compress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Slim/config"
	"github.com/dixieflatline76/Slim/pkg/assets"
	"github.com/dixieflatline76/Slim/util"
	"github.com/dixieflatline76/Slim/util/log"
)

// Outcome is what happened to one image.
type Outcome string

const (
	OutcomeReduced          Outcome = "reduced"
	OutcomeAlreadyOptimized Outcome = "already_optimized"
	OutcomeSuggestWebP      Outcome = "suggest_webp"
	OutcomeNoGain           Outcome = "no_gain"
	OutcomeSkipped          Outcome = "skipped"
	OutcomeToolMissing      Outcome = "tool_missing"
	OutcomeFailed           Outcome = "failed"
	OutcomeDryRun           Outcome = "dry_run"
)

// Options controls an Optimizer run.
type Options struct {
	WebPQuality int
	WebPMethod  int
	PNGQuality  int
	// MinSavingsRatio is the largest candidate/original size ratio still worth suggesting.
	MinSavingsRatio float64
	// PNGLossless also rewrites PNG files in place when a lossless re-encode is smaller.
	PNGLossless bool
	Concurrency int
	// DryRun only measures. Nothing is written.
	DryRun bool
}

// NewOptions maps the compress configuration section to Options.
func NewOptions(c config.CompressConfig, dryRun bool) Options {
	return Options{
		WebPQuality:     c.WebPQuality,
		WebPMethod:      c.WebPMethod,
		PNGQuality:      c.PNGQuality,
		MinSavingsRatio: c.MinSavingsRatio,
		PNGLossless:     c.PNGLossless,
		Concurrency:     c.Concurrency,
		DryRun:          dryRun,
	}
}

// Item is the result for one image.
type Item struct {
	Name    string  `json:"name"`
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	Before  int64   `json:"before"`
	After   int64   `json:"after"`
	// Candidate is the WebP file kept next to a PNG when it is worth switching to.
	Candidate     string `json:"candidate,omitempty"`
	CandidateSize int64  `json:"candidate_size,omitempty"`
	// Recompressed is set when a lossless PNG re-encode replaced the original.
	Recompressed bool   `json:"recompressed,omitempty"`
	Note         string `json:"note,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Reduction is the number of bytes the image shrank by.
func (i Item) Reduction() int64 {
	if i.After < i.Before {
		return i.Before - i.After
	}
	return 0
}

// Result is the outcome of an Optimizer run, in input order.
type Result struct {
	Items  []Item `json:"items"`
	Before int64  `json:"before"`
	After  int64  `json:"after"`
}

// Saved is the total number of bytes removed.
func (r Result) Saved() int64 {
	if r.After < r.Before {
		return r.Before - r.After
	}
	return 0
}

// ToolMissing reports whether any image could not be processed for lack of the encoder.
func (r Result) ToolMissing() bool {
	for _, it := range r.Items {
		if it.Outcome == OutcomeToolMissing {
			return true
		}
	}
	return false
}

// Optimizer recompresses WebP images and tries WebP conversion for PNG images.
type Optimizer struct {
	webp     Encoder
	lossless Encoder
	opts     Options
}

// NewOptimizer creates an Optimizer. lossless may be nil, which disables PNG
// recompression regardless of opts.PNGLossless.
func NewOptimizer(webp, lossless Encoder, opts Options) *Optimizer {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Optimizer{webp: webp, lossless: lossless, opts: opts}
}

// Run processes images. Per-image failures are recorded in the result, only a
// cancelled ctx stops the run early.
func (o *Optimizer) Run(ctx context.Context, images []assets.Asset) (Result, error) {
	items := make([]Item, len(images))
	done := util.NewSafeCounter()
	saved := util.NewSafeCounter()
	warned := util.NewSafeFlag()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			items[i] = o.optimize(gctx, img)
			if items[i].Outcome == OutcomeToolMissing && warned.SetOnce() {
				log.Printf("Optimizer: %s is not available, WebP images are left as they are", o.webp.Name())
			}
			saved.Add(items[i].Reduction())
			log.Debugf("Optimizer: %d/%d %s -> %s", done.Increment(), len(images), img.Path, items[i].Outcome)
			return nil
		})
	}
	_ = g.Wait()
	log.Debugf("Optimizer: %d images processed, %d bytes saved", done.Value(), saved.Value())

	res := Result{Items: items}
	for _, it := range items {
		res.Before += it.Before
		res.After += it.After
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

func (o *Optimizer) optimize(ctx context.Context, a assets.Asset) Item {
	item := Item{Name: a.Name, Path: a.Path}

	fi, err := os.Stat(a.AbsPath)
	if err != nil {
		item.Outcome = OutcomeFailed
		item.Error = err.Error()
		return item
	}
	item.Before = fi.Size()
	item.After = item.Before

	if err := ctx.Err(); err != nil {
		item.Outcome = OutcomeFailed
		item.Error = err.Error()
		return item
	}

	ext := strings.ToLower(filepath.Ext(a.AbsPath))
	switch {
	case ext != ".webp" && ext != ".png":
		item.Outcome = OutcomeSkipped
	case o.opts.DryRun:
		item.Outcome = OutcomeDryRun
	case ext == ".webp":
		o.recompressWebP(ctx, a.AbsPath, &item)
	default:
		o.convertPNG(ctx, a.AbsPath, &item)
		if o.opts.PNGLossless && o.lossless != nil {
			o.recompressPNG(ctx, a.AbsPath, &item)
		}
	}
	return item
}

// recompressWebP re-encodes path and keeps the result only if it is smaller.
func (o *Optimizer) recompressWebP(ctx context.Context, path string, item *Item) {
	tmp := tempSibling(path, ".webp")
	err := o.webp.Encode(ctx, path, tmp, EncodeOptions{Quality: o.opts.WebPQuality, Method: o.opts.WebPMethod})
	if err != nil {
		removeQuietly(tmp)
		fail(item, err)
		return
	}

	size, err := replaceIfSmaller(tmp, path, item.Before)
	if err != nil {
		fail(item, err)
		return
	}
	if size < 0 {
		item.Outcome = OutcomeAlreadyOptimized
		return
	}
	item.After = size
	item.Outcome = OutcomeReduced
}

// convertPNG writes a sibling .webp and keeps it only when the saving is significant.
func (o *Optimizer) convertPNG(ctx context.Context, path string, item *Item) {
	candidate := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
	if _, err := os.Stat(candidate); err == nil {
		// Never overwrite a WebP that is already there.
		item.Outcome = OutcomeSkipped
		item.Note = fmt.Sprintf("%s already exists", filepath.Base(candidate))
		return
	}

	err := o.webp.Encode(ctx, path, candidate, EncodeOptions{Quality: o.opts.PNGQuality, Method: -1})
	if err != nil {
		removeQuietly(candidate)
		fail(item, err)
		return
	}

	fi, err := os.Stat(candidate)
	if err != nil {
		fail(item, err)
		return
	}
	if float64(fi.Size()) < float64(item.Before)*o.opts.MinSavingsRatio {
		item.Outcome = OutcomeSuggestWebP
		item.Candidate = filepath.Base(candidate)
		item.CandidateSize = fi.Size()
		return
	}
	removeQuietly(candidate)
	item.Outcome = OutcomeNoGain
}

func (o *Optimizer) recompressPNG(ctx context.Context, path string, item *Item) {
	tmp := tempSibling(path, ".png")
	if err := o.lossless.Encode(ctx, path, tmp, EncodeOptions{Method: -1}); err != nil {
		removeQuietly(tmp)
		log.Printf("Optimizer: Lossless recompression of %s failed: %v", item.Path, err)
		return
	}
	size, err := replaceIfSmaller(tmp, path, item.After)
	if err != nil {
		log.Printf("Optimizer: Lossless recompression of %s failed: %v", item.Path, err)
		return
	}
	if size >= 0 {
		item.After = size
		item.Recompressed = true
	}
}

// replaceIfSmaller moves tmp over path when tmp is smaller than limit and returns
// the new size. Otherwise tmp is removed and -1 is returned.
func replaceIfSmaller(tmp, path string, limit int64) (int64, error) {
	fi, err := os.Stat(tmp)
	if err != nil {
		removeQuietly(tmp)
		return -1, err
	}
	if fi.Size() >= limit {
		removeQuietly(tmp)
		return -1, nil
	}
	if err := os.Rename(tmp, path); err != nil {
		removeQuietly(tmp)
		return -1, fmt.Errorf("replacing %s: %w", path, err)
	}
	return fi.Size(), nil
}

func fail(item *Item, err error) {
	if errors.Is(err, ErrToolNotFound) {
		item.Outcome = OutcomeToolMissing
	} else {
		item.Outcome = OutcomeFailed
	}
	item.Error = err.Error()
}

// tempSibling names a scratch file in the same directory so the final rename stays
// on one filesystem.
func tempSibling(path, ext string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+ext)
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Debugf("Optimizer: Could not remove %s: %v", path, err)
	}
}
