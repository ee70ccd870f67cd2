package cli

import (
	"github.com/spf13/cobra"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
	"github.com/geoncore/geoncore/pkg/geonio"
	"github.com/geoncore/geoncore/pkg/graph"
	"github.com/geoncore/geoncore/pkg/graph/tgf"
	"github.com/geoncore/geoncore/pkg/polygonize"
	"github.com/geoncore/geoncore/pkg/snap"
)

type ioFlags struct {
	input  string
	output string
}

func (f *ioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "input file (- for stdin)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "output file (- for stdout)")
}

// extractSegments flattens and decomposes every geometry into segment
// strings, the shared first step of node, build-graph and pipeline.
func extractSegments(geoms []geom.Geometry) []segment.String {
	var out []segment.String
	for _, g := range geoms {
		out = append(out, segment.Extract(g)...)
	}
	return out
}

func newNodeCommand(opts *rootOptions) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Node a WKT geometry stream, splitting segments at intersections.",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(c.Context())

			in, closeIn, err := openInput(io.input)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(io.output)
			if err != nil {
				return err
			}
			defer closeOut()

			geoms, err := geonio.ReadWKT(in, func(msg string) { logger.Warn(msg) })
			if err != nil {
				return err
			}

			noded, err := cfg.Noder().Node(extractSegments(geoms))
			if err != nil {
				return err
			}

			results := make([]geom.Geometry, len(noded))
			for i, s := range noded {
				results[i] = geom.NewLineString(geom.CoordinateSequence(s))
			}
			return geonio.WriteWKT(out, results)
		},
	}
	io.register(cmd)
	return cmd
}

func newBuildGraphCommand(opts *rootOptions) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   "build-graph",
		Short: "Node a WKT geometry stream and emit the resulting planar graph as TGF.",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(c.Context())

			in, closeIn, err := openInput(io.input)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(io.output)
			if err != nil {
				return err
			}
			defer closeOut()

			geoms, err := geonio.ReadWKT(in, func(msg string) { logger.Warn(msg) })
			if err != nil {
				return err
			}

			noded, err := cfg.Noder().Node(extractSegments(geoms))
			if err != nil {
				return err
			}

			g, err := graph.Builder{}.Build(noded)
			if err != nil {
				return err
			}
			logger.Info("built graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())
			return tgf.Write(out, g)
		},
	}
	io.register(cmd)
	return cmd
}

func newPolygonizeCommand(opts *rootOptions) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   "polygonize",
		Short: "Polygonize a TGF planar graph, reporting dangling chains as warnings.",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			in, closeIn, err := openInput(io.input)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(io.output)
			if err != nil {
				return err
			}
			defer closeOut()

			g, err := tgf.Read(in, func(msg string) { logger.Warn(msg) })
			if err != nil {
				return err
			}

			res, err := polygonize.Polygonize(g)
			if err != nil {
				return err
			}
			for _, d := range res.Dangles {
				logger.Warn("dangling chain did not close into a ring", "geometry", d)
			}

			geoms := make([]geom.Geometry, len(res.Polygons))
			for i, p := range res.Polygons {
				geoms[i] = p
			}
			return geonio.WriteWKT(out, geoms)
		},
	}
	io.register(cmd)
	return cmd
}

func newSnapCommand(opts *rootOptions) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Snap coordinates in a WKT geometry stream onto a grid or to a nearby representative.",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(c.Context())

			if cfg.Tolerance <= 0 {
				return errNonPositiveTolerance
			}

			in, closeIn, err := openInput(io.input)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(io.output)
			if err != nil {
				return err
			}
			defer closeOut()

			geoms, err := geonio.ReadWKT(in, func(msg string) { logger.Warn(msg) })
			if err != nil {
				return err
			}

			results := make([]geom.Geometry, len(geoms))
			for i, g := range geoms {
				results[i] = snap.Geometry(g, cfg.Tolerance, cfg.SnapStrategy)
			}
			return geonio.WriteWKT(out, results)
		},
	}
	io.register(cmd)
	return cmd
}

func newPipelineCommand(opts *rootOptions) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run node, build-graph and polygonize as a single pass over a WKT stream.",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(c.Context())
			progress := newProgress(logger, cfg.Verbose)

			in, closeIn, err := openInput(io.input)
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(io.output)
			if err != nil {
				return err
			}
			defer closeOut()

			geoms, err := geonio.ReadWKT(in, func(msg string) { logger.Warn(msg) })
			if err != nil {
				return err
			}
			progress.step("noding")

			noded, err := cfg.Noder().Node(extractSegments(geoms))
			if err != nil {
				return err
			}
			progress.step("building graph")

			g, err := graph.Builder{}.Build(noded)
			if err != nil {
				return err
			}
			progress.step("polygonizing")

			res, err := polygonize.Polygonize(g)
			if err != nil {
				return err
			}
			for _, d := range res.Dangles {
				logger.Warn("dangling chain did not close into a ring", "geometry", d)
			}
			progress.done()

			results := make([]geom.Geometry, len(res.Polygons))
			for i, p := range res.Polygons {
				results[i] = p
			}
			return geonio.WriteWKT(out, results)
		},
	}
	io.register(cmd)
	return cmd
}
