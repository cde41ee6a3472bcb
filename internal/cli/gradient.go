package cli

import (
	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/service"
)

const previewWidth = 32

func newGradientCmd(a *app) *cobra.Command {
	var (
		from, to string
		angle    float64
		radial   bool
	)

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Build a two-stop gradient",
		Long: `Build a two-stop gradient and print its CSS and Tailwind classes.

Omitted stops and angle take the gradient tool's defaults
(#e5deff to #f6f6f7 at 90 degrees).

Examples:
  hueforge gradient
  hueforge gradient --from "#ff8800" --to "#336699" --angle 45
  hueforge gradient --radial --from "#ffffff" --to "#000000"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := service.GradientRequest{From: from, To: to, Kind: "linear"}
			if radial {
				req.Kind = "radial"
			}
			if cmd.Flags().Changed("angle") {
				req.Angle = &angle
			}

			res, err := a.services.Gradient.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(res)
			}

			a.row("preview", "%s", a.ramp(color.MustParseHex(res.From), color.MustParseHex(res.To), previewWidth))
			a.row("css", "%s", res.CSS)
			a.row("tailwind", "%s", res.Tailwind)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start color, #rrggbb")
	cmd.Flags().StringVar(&to, "to", "", "End color, #rrggbb")
	cmd.Flags().Float64Var(&angle, "angle", 90, "Angle in degrees, 0-360")
	cmd.Flags().BoolVar(&radial, "radial", false, "Radial instead of linear")
	return cmd
}
