package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"toolshelf/backend/internal/graph"
	"toolshelf/backend/internal/routecheck"
	"toolshelf/backend/internal/tui"
	"toolshelf/backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// commandContext is the command's context cancelled on SIGINT or SIGTERM
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func checkRoutesCmd(a *app) *cobra.Command {
	var (
		baseURL     string
		concurrency int
		timeout     time.Duration
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check-routes",
		Short: "Verify a running site serves exactly one page per catalog path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = a.cfg.PublicBaseURL
			}
			if concurrency < 1 {
				concurrency = a.cfg.RouteCheckConcurrency
			}
			if timeout <= 0 {
				timeout = a.cfg.RouteCheckTimeout
			}

			checker, err := routecheck.New(routecheck.Options{
				BaseURL:     baseURL,
				Concurrency: concurrency,
				Timeout:     timeout,
			})
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			report, err := checker.Check(ctx, a.registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "Checked %d tool pages and %d listing pages at %s\n",
					report.Checked, report.ListingPages, baseURL)
				for _, f := range report.Failures {
					fmt.Fprintf(out, "  FAIL %s: %s\n", f.Path, f.Reason)
				}
			}

			if !report.OK() {
				return fmt.Errorf("%d route failures", len(report.Failures))
			}
			if !asJSON {
				fmt.Fprintln(out, "All routes OK.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Site to check (default: $PUBLIC_BASE_URL)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel requests (default: $ROUTE_CHECK_CONCURRENCY)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (default: $ROUTE_CHECK_TIMEOUT_MS)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func seedGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-graph",
		Short: "Mirror the catalog into Neo4j",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.GraphEnabled() {
				return fmt.Errorf("NEO4J_URI is not set")
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			driver, err := graph.Connect(ctx, a.cfg.Neo4jURI, a.cfg.Neo4jUser, a.cfg.Neo4jPassword)
			if err != nil {
				return err
			}
			repo := graph.NewRepository(driver)
			defer repo.Close()

			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			pruned, err := repo.SyncCatalog(ctx, a.registry.All())
			if err != nil {
				return err
			}

			counts, err := repo.CategoryCounts(ctx)
			if err != nil {
				return err
			}
			logger.Named("toolctl").Debug("Graph category counts", zap.Any("counts", counts))

			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d tools, pruned %d.\n", a.registry.Len(), pruned)
			return nil
		},
	}
}

func browseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.registry, a.cfg.PublicBaseURL)
		},
	}
}
