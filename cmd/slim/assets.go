package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Slim/config"
	"github.com/dixieflatline76/Slim/pkg/advice"
	"github.com/dixieflatline76/Slim/pkg/assets"
	"github.com/dixieflatline76/Slim/pkg/compress"
	"github.com/dixieflatline76/Slim/pkg/corpus"
	"github.com/dixieflatline76/Slim/pkg/report"
	"github.com/dixieflatline76/Slim/util/log"
)

type assetsOptions struct {
	dryRun       bool
	skipOptimize bool
}

// assetsReport is the JSON form of an assets run.
type assetsReport struct {
	Removed      []string         `json:"removed"`
	Unused       []assets.Asset   `json:"unused"`
	UnusedSize   int64            `json:"unused_size"`
	Optimization *compress.Result `json:"optimization,omitempty"`
	DryRun       bool             `json:"dry_run"`
}

func newAssetsCmd(g *globalOptions) *cobra.Command {
	opts := &assetsOptions{}
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Remove metadata files, list unused assets and optimize images",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			adv, err := advice.Default()
			if err != nil {
				return err
			}
			rep, err := analyzeAssets(cmd.Context(), cfg, *opts)
			if err != nil {
				return err
			}

			p := g.presenter(cmd)
			if g.json {
				return p.JSON(rep)
			}
			presentAssets(p, cfg, rep, adv)
			return p.Err()
		},
	}
	addAssetsFlags(cmd, opts)
	return cmd
}

func addAssetsFlags(cmd *cobra.Command, opts *assetsOptions) {
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report only, do not delete or rewrite files")
	cmd.Flags().BoolVar(&opts.skipOptimize, "skip-optimize", false, "do not recompress images")
}

// analyzeAssets runs cleanup, the unused-asset scan and image optimization, in that order.
func analyzeAssets(ctx context.Context, cfg *config.Config, opts assetsOptions) (*assetsReport, error) {
	rep := &assetsReport{DryRun: opts.dryRun}

	removed, err := assets.RemoveMetadataFiles(cfg.Root, cfg.IgnoreNames, opts.dryRun)
	if err != nil {
		return nil, fmt.Errorf("removing metadata files: %w", err)
	}
	rep.Removed = removed

	all, err := assets.Enumerate(cfg.Root, cfg.AssetsDir, cfg.IgnoreNames)
	if err != nil {
		return nil, err
	}

	src, err := corpus.LoadSources(cfg.Path(cfg.SourceDir), cfg.SourceExt)
	if err != nil {
		return nil, err
	}
	if len(src.Skipped) > 0 {
		log.Printf("Skipped %d unreadable source files", len(src.Skipped))
	}
	resource, err := corpus.LoadOptional(cfg.Path(cfg.ResourceFile))
	if err != nil {
		return nil, err
	}
	web, err := corpus.HTMLReferences(cfg.Path(cfg.WebDir))
	if err != nil {
		return nil, err
	}

	rep.Unused = assets.FindUnused(all, src.Text, resource+"\n"+web)
	rep.UnusedSize = assets.TotalSize(rep.Unused)
	log.Debugf("Assets: %d files, %d unreferenced", len(all), len(rep.Unused))

	if opts.skipOptimize {
		return rep, nil
	}

	images := assets.FilterByExt(all, cfg.ImageExts)
	optimizer := compress.NewOptimizer(
		compress.NewCWebP(cfg.Compress.Tool, cfg.Compress.Timeout),
		compress.Native{},
		compress.NewOptions(cfg.Compress, opts.dryRun),
	)
	res, err := optimizer.Run(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("optimizing images: %w", err)
	}
	rep.Optimization = &res
	return rep, nil
}

func presentAssets(p *report.Presenter, cfg *config.Config, rep *assetsReport, adv *advice.Advice) {
	p.Title("🚀 Starting asset optimization...")
	p.Cleanup(cfg.IgnoreNames, rep.Removed, rep.DryRun)
	p.UnusedAssets(rep.Unused)
	if rep.Optimization != nil {
		p.Optimization(*rep.Optimization)
	}
	p.Done("Asset optimization complete!")
	p.NextSteps(adv.NextSteps)
}
