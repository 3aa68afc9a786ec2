// Command toolctl inspects the tool catalog, checks a deployed site against
// it, mirrors it into Neo4j and browses it in the terminal.
package main

import (
	"fmt"
	"os"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/pkg/config"
	"toolshelf/backend/pkg/logger"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand
type app struct {
	cfg         *config.Config
	registry    *catalog.Registry
	catalogFile string
	// copy writes to the system clipboard; replaced in tests
	copy func(string) error
}

func main() {
	if err := newRootCmd(&app{copy: clipboard.WriteAll}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "toolctl",
		Short:         "Inspect and operate the tool catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.catalogFile, "catalog", "", "YAML or JSON registry file (default: $CATALOG_FILE, then the built-in catalog)")

	rootCmd.AddCommand(
		listCmd(a),
		searchCmd(a),
		showCmd(a),
		categoriesCmd(a),
		exportCmd(a),
		checkRoutesCmd(a),
		seedGraphCmd(a),
		browseCmd(a),
	)
	return rootCmd
}

// load reads configuration and opens the catalog
func (a *app) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	// the CLI prints to stdout; keep the log on stderr quiet unless asked
	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	if err := logger.Init(cfg.Env, level); err != nil {
		return err
	}

	file := a.catalogFile
	if file == "" {
		file = cfg.CatalogFile
	}
	reg, err := catalog.Open(file)
	if err != nil {
		return err
	}
	a.registry = reg
	return nil
}

// link is the public URL of a tool page
func (a *app) link(d catalog.Descriptor) string {
	return a.cfg.PublicBaseURL + d.Path
}
