package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/service"
)

func newPalettesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Browse the curated palettes",
	}
	cmd.AddCommand(
		newPalettesListCmd(a),
		newPalettesShowCmd(a),
		newPalettesSearchCmd(a),
		newPalettesSwatchCmd(a),
	)
	return cmd
}

func newPalettesListCmd(a *app) *cobra.Command {
	var sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.services.Palette.ListPalettes(cmd.Context(), service.ListPalettesRequest{Sort: sort})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(list)
			}
			for _, p := range list {
				fmt.Fprintf(a.out, "%s %-24s %-24s %5d likes\n", a.strip(p.Colors), p.Name, p.Slug, p.Likes)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sort, "sort", "catalog", "Order: catalog, likes or name")
	return cmd
}

func newPalettesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a palette's colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services.Palette.GetPalette(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(p)
			}
			fmt.Fprintf(a.out, "%s (%s), %d likes\n", p.Name, p.Slug, p.Likes)
			for _, c := range p.Colors {
				fmt.Fprintf(a.out, "%s %s\n", a.swatch(c), c)
			}
			return nil
		},
	}
}

func newPalettesSearchCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search palettes and themes by name or color",
		Long: `Search palettes and themes by name or by a #rrggbb color they contain.

Examples:
  hueforge palettes search ocean
  hueforge palettes search "#2e4057"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits, err := a.services.Palette.Search(cmd.Context(), service.SearchRequest{
				Query: strings.Join(args, " "),
				Limit: limit,
			})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(hits)
			}
			if len(hits) == 0 {
				fmt.Fprintln(a.out, "No matches.")
				return nil
			}
			for _, h := range hits {
				fmt.Fprintf(a.out, "%-8s %-24s %s\n", h.Kind, h.Slug, h.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (default: 20)")
	return cmd
}

func newPalettesSwatchCmd(a *app) *cobra.Command {
	var (
		output        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "swatch <slug>",
		Short: "Write a palette as a PNG strip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := a.services.Palette.Swatch(cmd.Context(), args[0], width, height)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".png"
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("write swatch: %w", err)
			}
			fmt.Fprintf(a.out, "Wrote %s (%d bytes)\n", output, len(png))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <slug>.png)")
	cmd.Flags().IntVar(&width, "width", 0, "Width in pixels (default: 500)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in pixels (default: 100)")
	return cmd
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes [key]",
		Short: "List theme presets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				t, err := a.services.Palette.GetTheme(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if a.jsonOut {
					return a.printJSON(t)
				}
				fmt.Fprintf(a.out, "%s (%s)\n", t.Name, t.Key)
				for _, c := range t.Colors {
					fmt.Fprintf(a.out, "%s %s\n", a.swatch(c), c)
				}
				return nil
			}

			themes, err := a.services.Palette.ListThemes(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(themes)
			}
			for _, t := range themes {
				fmt.Fprintf(a.out, "%s %-12s %s\n", a.strip(t.Colors), t.Key, t.Name)
			}
			return nil
		},
	}
}
