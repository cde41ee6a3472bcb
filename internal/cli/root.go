// Package cli implements the hueforge command-line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/service"
	"github.com/hueforge/hueforge/internal/suggest"
)

// Options configures a command tree. Zero values use the process defaults.
type Options struct {
	Out io.Writer
	Err io.Writer
	// Suggester replaces the generative-text client built from config.
	Suggester service.Suggester
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	opts    Options
	out     io.Writer
	profile termenv.Profile

	jsonOut  bool
	noColor  bool
	overlay  string
	envFile  string
	logLevel string

	services *service.Services
	closers  []func() error
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	if err := Run(context.Background(), os.Args[1:], Options{}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Run executes the command tree with args and releases everything it opened.
func Run(ctx context.Context, args []string, opts Options) error {
	a, root := newRoot(opts)
	defer a.close()

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRoot(opts Options) (*app, *cobra.Command) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	a := &app{opts: opts, out: opts.Out}

	root := &cobra.Command{
		Use:   "hueforge",
		Short: "Color palette and gradient toolkit",
		Long: `hueforge converts colors, builds shade ramps and gradients, browses the
curated palette catalog and asks a generative-text model for color ideas.

Examples:
  hueforge convert "#336699"
  hueforge shades orange --mode sweep
  hueforge gradient --from "#e5deff" --to "#f6f6f7" --angle 45
  hueforge palettes search ocean
  hueforge suggest "a rainy afternoon in Lisbon"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup() },
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	flags := root.PersistentFlags()
	flags.BoolVar(&a.jsonOut, "json", false, "Print results as JSON")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable color swatches")
	flags.StringVar(&a.overlay, "overlay", "", "YAML palette overlay (default: $HUEFORGE_CATALOG_OVERLAY)")
	flags.StringVar(&a.envFile, "env-file", ".env", "Path to .env file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newConvertCmd(a),
		newAdjustCmd(a),
		newShadesCmd(a),
		newWheelCmd(a),
		newGradientCmd(a),
		newPalettesCmd(a),
		newThemesCmd(a),
		newSuggestCmd(a),
	)
	return a, root
}

// setup loads config and builds the services. It runs once per invocation,
// before the selected subcommand.
func (a *app) setup() error {
	cfg, err := config.LoadConfig([]string{"-env-file", a.envFile, "-log-level", a.logLevel})
	if err != nil {
		return err
	}
	if a.overlay != "" {
		cfg.Catalog.OverlayPath = a.overlay
	}

	a.profile = termenv.NewOutput(a.out).EnvColorProfile()
	if a.noColor {
		a.profile = termenv.Ascii
	}

	log := logger.New(logger.Config{
		Writer:      a.opts.Err,
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
		NoColor:     a.noColor,
	})

	store, err := palette.NewStore(cfg.Catalog.OverlayPath, log.Logger)
	if err != nil {
		return err
	}
	index, err := palette.NewIndex(store.Catalog(), log.Logger)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, index.Close)

	suggester := a.opts.Suggester
	if suggester == nil {
		client := suggest.New(suggest.Config{
			Endpoint:          cfg.Suggest.Endpoint,
			Model:             cfg.Suggest.Model,
			APIKey:            cfg.Suggest.APIKey,
			Timeout:           cfg.Suggest.Timeout,
			RequestsPerMinute: cfg.Suggest.RequestsPerMinute,
		}, log.Logger)
		a.closers = append(a.closers, client.Shutdown)
		suggester = client
	}

	a.services = service.New(store, index, suggester, log.Logger)
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
