package geonio

import (
	"io"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonconfig"
	"github.com/geoncore/geoncore/pkg/geonerrors"
	"github.com/geoncore/geoncore/pkg/graph"
	"github.com/geoncore/geoncore/pkg/graph/tgf"
)

// ReadGeometries dispatches to the reader for format, returning the
// decoded geometries from r.
func ReadGeometries(format geonconfig.Format, r io.Reader, warn func(string)) ([]geom.Geometry, error) {
	switch format {
	case geonconfig.FormatWKT:
		return ReadWKT(r, warn)
	default:
		return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "format %q does not carry geometries directly", format)
	}
}

// WriteGeometries dispatches to the writer for format.
func WriteGeometries(format geonconfig.Format, w io.Writer, geoms []geom.Geometry) error {
	switch format {
	case geonconfig.FormatWKT:
		return WriteWKT(w, geoms)
	default:
		return geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "format %q does not carry geometries directly", format)
	}
}

// ReadGraph dispatches to the reader for format.
func ReadGraph(format geonconfig.Format, r io.Reader, warn func(string)) (*graph.Graph, error) {
	switch format {
	case geonconfig.FormatTGF:
		return tgf.Read(r, warn)
	default:
		return nil, geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "format %q does not carry a graph directly", format)
	}
}

// WriteGraph dispatches to the writer for format.
func WriteGraph(format geonconfig.Format, w io.Writer, g *graph.Graph) error {
	switch format {
	case geonconfig.FormatTGF:
		return tgf.Write(w, g)
	default:
		return geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "format %q does not carry a graph directly", format)
	}
}
