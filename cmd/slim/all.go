package main

import (
	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Slim/pkg/advice"
	"github.com/dixieflatline76/Slim/pkg/deps"
)

// allReport is the JSON form of a combined run.
type allReport struct {
	Deps   *deps.Analysis `json:"deps"`
	Assets *assetsReport  `json:"assets"`
}

func newAllCmd(g *globalOptions) *cobra.Command {
	opts := &assetsOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the dependency analysis, then the asset pass",
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

			a, err := analyzeDeps(cfg, adv)
			if err != nil {
				return err
			}
			p := g.presenter(cmd)
			if !g.json {
				presentDeps(p, a, adv)
			}

			rep, err := analyzeAssets(cmd.Context(), cfg, *opts)
			if err != nil {
				return err
			}
			if g.json {
				return p.JSON(allReport{Deps: a, Assets: rep})
			}
			presentAssets(p, cfg, rep, adv)
			return p.Err()
		},
	}
	addAssetsFlags(cmd, opts)
	return cmd
}
