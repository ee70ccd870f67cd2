// Package geonio provides the line-oriented stream readers and writers
// the CLI layer uses: one geometry per line of WKT, or a TGF document
// per graph. Malformed input is reported via a warn callback and
// skipped rather than aborting the whole stream, the same
// warn-and-skip contract pkg/graph/tgf uses for its known TGF
// limitations.
package geonio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonerrors"
	"github.com/geoncore/geoncore/pkg/wkt"
)

// ReadWKT reads one geometry per non-blank line of r. A line that fails
// to parse is reported via warn (nil discards) and skipped.
func ReadWKT(r io.Reader, warn func(string)) ([]geom.Geometry, error) {
	if warn == nil {
		warn = func(string) {}
	}
	var out []geom.Geometry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := wkt.Parse(line)
		if err != nil {
			warn(fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}
		out = append(out, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, geonerrors.Wrap(geonerrors.ErrCodeIO, err, "reading WKT stream")
	}
	return out, nil
}

// WriteWKT writes one geometry per line.
func WriteWKT(w io.Writer, geoms []geom.Geometry) error {
	bw := bufio.NewWriter(w)
	for _, g := range geoms {
		if _, err := fmt.Fprintln(bw, wkt.Write(g)); err != nil {
			return geonerrors.Wrap(geonerrors.ErrCodeIO, err, "writing WKT stream")
		}
	}
	return bw.Flush()
}
