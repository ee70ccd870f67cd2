// Package cli assembles the geoncore command tree: node, build-graph,
// polygonize, snap, pipeline and serve, plus the shared per-invocation
// wiring (config resolution, correlation-ID logging) every one of them
// goes through.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/geoncore/geoncore/pkg/buildinfo"
	"github.com/geoncore/geoncore/pkg/geonconfig"
	"github.com/geoncore/geoncore/pkg/snap"
)

// rootOptions carries the persistent flags every subcommand can
// contribute to and read back via resolve.
type rootOptions struct {
	configPath   string
	verbose      bool
	tolerance    float64
	toleranceSet bool
	noding       string
	snapStrategy string
	format       string
}

// resolve merges an optional config file, persistent flag overrides,
// and defaults into a validated geonconfig.Options. --tolerance carries
// a non-zero default (per spec, a very small positive value rather than
// exact-arithmetic-only 0), so it applies whenever the user passed it
// explicitly or there is no config file to defer to; a config file's own
// tolerance otherwise stands unless the flag was explicitly set.
func (o *rootOptions) resolve() (geonconfig.Options, error) {
	var cfg geonconfig.Options
	if o.configPath != "" {
		loaded, err := geonconfig.Load(o.configPath)
		if err != nil {
			return geonconfig.Options{}, err
		}
		cfg = loaded
	}
	if o.toleranceSet || o.configPath == "" {
		cfg.Tolerance = o.tolerance
	}
	if o.noding != "" {
		cfg.Noding = geonconfig.NodingPolicy(o.noding)
	}
	if o.snapStrategy != "" {
		cfg.SnapStrategy = snap.Strategy(o.snapStrategy)
	}
	if o.format != "" {
		cfg.Format = geonconfig.Format(o.format)
	}
	cfg.Verbose = o.verbose
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return geonconfig.Options{}, err
	}
	return cfg, nil
}

// NewRootCommand builds the full geoncore command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "geoncore",
		Short:         "Stream-oriented geometry-graph noding and polygonization toolkit.",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			opts.toleranceSet = c.Flags().Changed("tolerance")
			logger := newLogger(opts.verbose).With("invocation_id", uuid.NewString())
			c.SetContext(withLogger(c.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().Float64Var(&opts.tolerance, "tolerance", 1e-5, "noding/snap tolerance (0 = exact noding)")
	cmd.PersistentFlags().StringVar(&opts.noding, "noding", "", "noding policy: exact or snap")
	cmd.PersistentFlags().StringVar(&opts.snapStrategy, "snap-strategy", "", "snap strategy: grid or closest")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "wire format: wkt or tgf")

	cmd.AddCommand(
		newNodeCommand(opts),
		newBuildGraphCommand(opts),
		newPolygonizeCommand(opts),
		newSnapCommand(opts),
		newPipelineCommand(opts),
		newServeCommand(opts),
	)

	return cmd
}

// Execute runs the command tree against os.Args, exiting non-zero on
// failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
