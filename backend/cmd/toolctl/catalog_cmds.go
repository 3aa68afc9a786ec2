package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/grid"
	"toolshelf/backend/internal/icons"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// listFilter narrows a category listing
type listFilter struct {
	category string
	featured bool
	isNew    bool
	match    string
}

// apply runs f over reg. match is a glob over tool ids, e.g. "password-*".
func (f listFilter) apply(reg *catalog.Registry) ([]catalog.Descriptor, error) {
	cat := catalog.All
	if f.category != "" {
		c, ok := catalog.ParseCategory(f.category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", f.category)
		}
		cat = c
	}

	var g glob.Glob
	if f.match != "" {
		compiled, err := glob.Compile(strings.ToLower(f.match))
		if err != nil {
			return nil, fmt.Errorf("invalid --match pattern %q: %w", f.match, err)
		}
		g = compiled
	}

	var out []catalog.Descriptor
	for _, d := range reg.ByCategory(cat) {
		if f.featured && !d.Featured {
			continue
		}
		if f.isNew && !d.IsNew {
			continue
		}
		if g != nil && !g.Match(d.ID) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func listCmd(a *app) *cobra.Command {
	var f listFilter
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools a page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := f.apply(a.registry)
			if err != nil {
				return err
			}
			page = grid.ClampPage(page, len(tools), grid.PageSize)
			writeTools(cmd.OutOrStdout(), grid.Page(tools, grid.PageSize, page))
			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d/%d · %d tools\n",
				page, grid.TotalPages(len(tools), grid.PageSize), len(tools))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.category, "category", "", "Only tools in this category")
	cmd.Flags().BoolVar(&f.featured, "featured", false, "Only featured tools")
	cmd.Flags().BoolVar(&f.isNew, "new", false, "Only new tools")
	cmd.Flags().StringVar(&f.match, "match", "", "Glob over tool ids, e.g. 'password-*'")
	cmd.Flags().IntVar(&page, "page", 1, "Page to show")
	return cmd
}

func searchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search tools by name, description and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			hits := a.registry.SearchTiered(query)
			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintf(out, "No tools match %q.\n", query)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MATCH\tID\tNAME\tCATEGORY")
			for _, h := range hits {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.Tier, h.Tool.ID, h.Tool.Name, h.Tool.Category)
			}
			return tw.Flush()
		},
	}
}

func showCmd(a *app) *cobra.Command {
	var copyLink bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one tool and its related tools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}
			related, err := a.registry.Related(d.ID, constants.DefaultRelatedLimit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n\n%s\n\n", icons.ForTool(d), d.Name, d.Description)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\t%s\n", d.ID)
			fmt.Fprintf(tw, "Category\t%s %s\n", icons.ForCategory(d.Category), d.Category)
			fmt.Fprintf(tw, "Link\t%s\n", a.link(d))
			if len(d.Tags) > 0 {
				fmt.Fprintf(tw, "Tags\t%s\n", strings.Join(d.Tags, ", "))
			}
			if len(related) > 0 {
				names := make([]string, 0, len(related))
				for _, r := range related {
					names = append(names, r.ID)
				}
				fmt.Fprintf(tw, "Related\t%s\n", strings.Join(names, ", "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if copyLink {
				if err := a.copy(a.link(d)); err != nil {
					return fmt.Errorf("copy link: %w", err)
				}
				fmt.Fprintln(out, "\nLink copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyLink, "copy", false, "Copy the tool link to the clipboard")
	return cmd
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their tool counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s %s\t%d\n", icons.ForCategory(catalog.All), catalog.All, a.registry.Len())
			for _, c := range a.registry.CategoryCounts() {
				fmt.Fprintf(tw, "%s %s\t%d\n", icons.ForCategory(c.Category), c.Category, c.Count)
			}
			return tw.Flush()
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a registry file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Format(strings.ToLower(format))
			if f != catalog.FormatYAML && f != catalog.FormatJSON {
				return fmt.Errorf("unsupported format %q (want yaml or json)", format)
			}
			return catalog.Encode(cmd.OutOrStdout(), a.registry.All(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func writeTools(w io.Writer, tools []catalog.Descriptor) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tFLAGS")
	for _, d := range tools {
		var flags []string
		if d.Featured {
			flags = append(flags, "featured")
		}
		if d.IsNew {
			flags = append(flags, "new")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Category, strings.Join(flags, ","))
	}
	_ = tw.Flush()
}
