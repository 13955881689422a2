package main

import (
	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Slim/config"
	"github.com/dixieflatline76/Slim/pkg/advice"
	"github.com/dixieflatline76/Slim/pkg/deps"
	"github.com/dixieflatline76/Slim/pkg/report"
	"github.com/dixieflatline76/Slim/util/log"
)

func newDepsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Compare pubspec dependencies with the packages the sources import",
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
			if g.json {
				return p.JSON(a)
			}
			presentDeps(p, a, adv)
			return p.Err()
		},
	}
}

func analyzeDeps(cfg *config.Config, adv *advice.Advice) (*deps.Analysis, error) {
	m, err := deps.LoadManifest(cfg.Path(cfg.Manifest))
	if err != nil {
		return nil, err
	}

	own := cfg.PackageName
	if own == "" {
		own = m.Name
	}
	imports, err := deps.LoadImports(cfg.Path(cfg.SourceDir), cfg.SourceExt, own)
	if err != nil {
		return nil, err
	}
	log.Debugf("Deps: %d declared, %d imported packages (own package %q)", len(m.Dependencies), len(imports), own)

	a := deps.Analyze(m, imports, deps.AnalyzeOptions{
		FirstParty: cfg.FirstParty,
		Heavy:      adv.HeavyNotes(),
		Watched:    adv.Watched,
	})
	return &a, nil
}

func presentDeps(p *report.Presenter, a *deps.Analysis, adv *advice.Advice) {
	p.Title("🔍 Dependency Analysis & Optimization Guide")
	p.DependencyOverview(*a)
	p.DependencyUsage(*a)
	p.Suggestions(adv.Suggestions)
	p.Commands(adv.Commands)
	p.Done("Analysis complete!")
}
