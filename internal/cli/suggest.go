package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/service"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description>",
		Short: "Ask for a color matching a theme or mood",
		Long: `Ask the generative-text model for a color matching a theme or mood and
print it with its shade ramp.

Requires HUEFORGE_SUGGEST_API_KEY in the environment or .env file.

Examples:
  hueforge suggest "a rainy afternoon in Lisbon"
  hueforge suggest calm forest morning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sug, err := a.services.Suggestion.Suggest(cmd.Context(), service.SuggestRequest{
				Prompt: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(sug)
			}
			fmt.Fprintf(a.out, "%s %s  %q\n", a.swatch(sug.Hex), sug.Hex, sug.Prompt)
			a.printRamp(sug.Shades)
			return nil
		},
	}
}
