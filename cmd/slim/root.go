package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Slim/config"
	"github.com/dixieflatline76/Slim/pkg/report"
	"github.com/dixieflatline76/Slim/util/log"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	root       string
	configFile string
	verbose    bool
	json       bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "slim",
		Short:         "Asset and dependency maintenance for a Flutter project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbose(opts.verbose)
		},
	}
	cmd.SetOut(out)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.root, "root", ".", "project root directory")
	pf.StringVar(&opts.configFile, "config", "", "config file (default <root>/slim.yaml if present)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs")
	pf.BoolVar(&opts.json, "json", false, "print the report as JSON")
	pf.String("assets-dir", "assets", "assets directory, relative to the root")
	pf.String("source-dir", "lib", "Dart source directory, relative to the root")
	pf.String("manifest", "pubspec.yaml", "pubspec file, relative to the root")

	cmd.AddCommand(
		newAssetsCmd(opts),
		newDepsCmd(opts),
		newAllCmd(opts),
		newImagesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{err: fmt.Errorf("%s takes no arguments, got %q", cmd.CommandPath(), args)}
	}
	return nil
}

// loadConfig resolves the configuration for cmd, with its flags taking precedence.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Root:  o.root,
		File:  o.configFile,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Config: root=%s assets=%s source=%s manifest=%s", cfg.Root, cfg.AssetsDir, cfg.SourceDir, cfg.Manifest)
	return cfg, nil
}

func (o *globalOptions) presenter(cmd *cobra.Command) *report.Presenter {
	return report.NewPresenter(cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
			return err
		},
	}
}
