package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/service"
	"github.com/hueforge/hueforge/internal/shade"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color as hex, RGB and HSL",
		Long: `Show a color as hex, RGB and HSL.

The color is a #rrggbb hex code or a CSS color name.

Examples:
  hueforge convert "#336699"
  hueforge convert steelblue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.services.Color.Convert(cmd.Context(), service.ConvertRequest{Color: args[0]})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(info)
			}
			a.printColor(*info)
			return nil
		},
	}
}

func (a *app) printColor(info service.ColorInfo) {
	fmt.Fprintf(a.out, "%s %s\n", a.swatch(info.Hex), info.Hex)
	a.row("rgb", "%d, %d, %d", info.RGB.R, info.RGB.G, info.RGB.B)
	a.row("hsl", "%s", info.CSS)
}

func newAdjustCmd(a *app) *cobra.Command {
	var saturation, brightness, contrast, temperature float64

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Apply tone settings to a color",
		Long: `Apply saturation, brightness, contrast and temperature to a color.

Saturation and brightness run 0-200 (100 is neutral); contrast and
temperature run -100 to 100 (0 is neutral). Values outside a range are
clamped.

Examples:
  hueforge adjust "#808080" --temperature 100
  hueforge adjust teal --saturation 150 --contrast 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.AdjustRequest{Color: args[0]}
			flags := cmd.Flags()
			if flags.Changed("saturation") {
				req.Saturation = &saturation
			}
			if flags.Changed("brightness") {
				req.Brightness = &brightness
			}
			if flags.Changed("contrast") {
				req.Contrast = &contrast
			}
			if flags.Changed("temperature") {
				req.Temperature = &temperature
			}

			res, err := a.services.Color.Adjust(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(res)
			}

			fmt.Fprintf(a.out, "%s %s  base\n", a.swatch(res.Base), res.Base)
			fmt.Fprintf(a.out, "%s %s  result\n", a.swatch(res.Result.Hex), res.Result.Hex)
			p := res.Params
			a.row("tone", "saturation %g  brightness %g  contrast %g  temperature %g",
				p.Saturation, p.Brightness, p.Contrast, p.Temperature)
			return nil
		},
	}

	cmd.Flags().Float64Var(&saturation, "saturation", 100, "Saturation, 0-200")
	cmd.Flags().Float64Var(&brightness, "brightness", 100, "Brightness, 0-200")
	cmd.Flags().Float64Var(&contrast, "contrast", 0, "Contrast, -100 to 100")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "Temperature, -100 (cool) to 100 (warm)")
	return cmd
}

func newShadesCmd(a *app) *cobra.Command {
	var mode, levels string

	cmd := &cobra.Command{
		Use:   "shades <color>",
		Short: "Build a shade ramp",
		Long: `Build a shade ramp from a color.

darken scales the color toward black in proportion to each level
(100-900). sweep keeps the color's hue and saturation and steps lightness
down from 95% (levels 50-900).

Examples:
  hueforge shades "#ff8800"
  hueforge shades orange --mode sweep
  hueforge shades orange --levels 100,500,900`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.ShadesRequest{Color: args[0], Mode: mode}
			if levels != "" {
				parsed, err := shade.ParseLevels(levels)
				if err != nil {
					return err
				}
				req.Levels = parsed
			}

			res, err := a.services.Color.Shades(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(res)
			}
			a.printRamp(res.Shades)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "darken", "Ramp mode: darken or sweep")
	cmd.Flags().StringVar(&levels, "levels", "", "Comma-separated levels (default: the mode's standard levels)")
	return cmd
}

func (a *app) printRamp(r shade.Ramp) {
	for _, s := range r {
		fmt.Fprintf(a.out, "%5d %s %s\n", s.Level, a.swatch(s.Hex), s.Hex)
	}
}

func newWheelCmd(a *app) *cobra.Command {
	var (
		hue     float64
		offsets []float64
	)

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Show hue wheel markers",
		Long: `Show the markers the hue wheel draws around a hue. Each marker is the
fully saturated, half-lightness color at hue plus its offset.

Examples:
  hueforge wheel --hue 270
  hueforge wheel --hue 10 --offsets -60,0,60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.services.Color.Wheel(cmd.Context(), service.WheelRequest{Hue: &hue, Offsets: offsets})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(res)
			}
			for _, m := range res.Markers {
				fmt.Fprintf(a.out, "%+5g %s %s  %s\n", m.Offset, a.swatch(m.Hex), m.Hex, m.CSS)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 0, "Hue in degrees")
	cmd.Flags().Float64SliceVar(&offsets, "offsets", nil, "Marker offsets in degrees (default: -30,0,30)")
	return cmd
}
