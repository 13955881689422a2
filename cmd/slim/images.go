package main

import (
	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Slim/pkg/assets"
)

func newImagesCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List image dimensions and flag oversized images",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			all, err := assets.Enumerate(cfg.Root, cfg.AssetsDir, cfg.IgnoreNames)
			if err != nil {
				return err
			}
			infos := assets.Inspect(assets.FilterByExt(all, cfg.ImageExts))

			p := g.presenter(cmd)
			if g.json {
				return p.JSON(infos)
			}
			p.Images(infos, cfg.MaxDimension)
			return p.Err()
		},
	}
}
