package main

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/staffline/notat/pkg/cobrax/topics"
	"github.com/staffline/notat/pkg/config"
	"github.com/staffline/notat/pkg/logging"
	"github.com/staffline/notat/pkg/streamfactory"

	// Register the stream container types with the default factory.
	_ "github.com/staffline/notat/pkg/streams"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd builds the notat command tree
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "notat",
		Short: "Inspect and exercise the notat stream type factory",
		Long: `notat is a small workbench around the stream type factory: it lists the
registered container types, resolves them on demand, and builds instances
by symbolic name.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			settings, err := config.Load()
			if err != nil {
				// Run with defaults rather than refusing to start.
				logging.SetupLogger(verbosity)
				log.Warn().Err(err).Msg("Failed to load config, using defaults")
				return
			}

			if verbosity == 0 {
				verbosity = settings.Verbosity
			}
			logging.SetupLogger(verbosity)

			for alias, target := range settings.Factory.Aliases {
				if err := streamfactory.Alias(alias, target); err != nil {
					log.Warn().Err(err).
						Str("alias", alias).
						Str("target", target).
						Msg("Skipping configured alias")
				}
			}

			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		newListCmd(),
		newResolveCmd(),
		newNewCmd(),
		newDemoCmd(),
		newGenConfigCmd(),
	)

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_ = topics.Initialize(rootCmd, topicsFS, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}
