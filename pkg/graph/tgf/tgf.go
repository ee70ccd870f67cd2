// Package tgf reads and writes graphs in Trivial Graph Format: a node
// section (index, then a WKT POINT label) followed by a "#" separator
// and an edge section (a pair of node indices per line).
package tgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonerrors"
	"github.com/geoncore/geoncore/pkg/graph"
	"github.com/geoncore/geoncore/pkg/wkt"
)

// Write emits g as TGF, labeling each node with its coordinate as a WKT
// POINT and emitting each undirected edge once.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for i, c := range g.Coords {
		if _, err := fmt.Fprintf(bw, "%d %s\n", i, wkt.Write(geom.NewPoint(c))); err != nil {
			return geonerrors.Wrap(geonerrors.ErrCodeIO, err, "writing TGF node %d", i)
		}
	}
	if _, err := fmt.Fprintln(bw, "#"); err != nil {
		return geonerrors.Wrap(geonerrors.ErrCodeIO, err, "writing TGF separator")
	}
	for _, p := range g.EdgesPairs() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p[0], p[1]); err != nil {
			return geonerrors.Wrap(geonerrors.ErrCodeIO, err, "writing TGF edge %d-%d", p[0], p[1])
		}
	}
	return bw.Flush()
}

// Read parses a TGF stream into a Graph.
//
// Known limitation: node indices are required to be strictly ascending
// starting from 0. A gap in the sequence causes every subsequent node
// line to be skipped, and silently discarded via warn, until a line
// bearing the expected index reappears; the reader does not renumber
// or remap indices around a gap. Edge lines that reference a node
// index that was never registered (because it fell in a skipped gap)
// are also skipped and reported via warn. warn may be nil to discard
// diagnostics.
func Read(r io.Reader, warn func(string)) (*graph.Graph, error) {
	if warn == nil {
		warn = func(string) {}
	}

	g := graph.New()
	nodeCoord := make(map[int]geom.Coordinate)

	scanner := bufio.NewScanner(r)
	inEdges := false
	expected := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "#" {
			inEdges = true
			continue
		}

		if !inEdges {
			idx, label, ok := splitNodeLine(line)
			if !ok {
				warn(fmt.Sprintf("skipping malformed node line %q", line))
				continue
			}
			if idx != expected {
				warn(fmt.Sprintf("out-of-order node index %d (expected %d), skipping", idx, expected))
				continue
			}
			p, err := wkt.ParsePoint(label)
			if err != nil {
				warn(fmt.Sprintf("skipping node %d: label %q is not a WKT POINT: %v", idx, label, err))
				expected++
				continue
			}
			nodeCoord[idx] = p.C
			g.AddNode(p.C)
			expected++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			warn(fmt.Sprintf("skipping malformed edge line %q", line))
			continue
		}
		a, erra := strconv.Atoi(fields[0])
		b, errb := strconv.Atoi(fields[1])
		if erra != nil || errb != nil {
			warn(fmt.Sprintf("skipping malformed edge line %q", line))
			continue
		}
		ca, oka := nodeCoord[a]
		cb, okb := nodeCoord[b]
		if !oka || !okb {
			warn(fmt.Sprintf("edge %d-%d references an unregistered node, skipping", a, b))
			continue
		}
		g.AddEdge(ca, cb)
	}
	if err := scanner.Err(); err != nil {
		return nil, geonerrors.Wrap(geonerrors.ErrCodeIO, err, "reading TGF stream")
	}
	return g, nil
}

func splitNodeLine(line string) (idx int, label string, ok bool) {
	parts := strings.SplitN(line, " ", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	if len(parts) > 1 {
		label = strings.TrimSpace(parts[1])
	}
	return n, label, true
}
