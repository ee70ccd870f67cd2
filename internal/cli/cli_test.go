package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoncore/geoncore/pkg/wkt"
)

// runCLI executes the full command tree against args, reading stdin-like
// input from the "-i" flag value and stdout-like output back from the
// "-o" flag value, both real files under t.TempDir(). It mirrors an
// actual shell invocation of the geoncore binary.
func runCLI(t *testing.T, input string, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in")
	outPath := filepath.Join(dir, "out")
	if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	full := append([]string{}, args...)
	full = append(full, "-i", inPath, "-o", outPath, "--verbose")

	cmd := NewRootCommand()
	cmd.SetArgs(full)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(out)
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// TestScenarioCrossingLinestrings covers spec scenario 1: two crossing
// linestrings noded at ε=0 split into four segments at their crossing
// point.
func TestScenarioCrossingLinestrings(t *testing.T) {
	input := "LINESTRING(0 0, 1 0)\nLINESTRING(0.5 -1, 0.5 1)\n"
	got := runCLI(t, input, "node", "--tolerance", "0")

	want := []string{
		"LINESTRING(0 0, 0.5 0)",
		"LINESTRING(0.5 0, 1 0)",
		"LINESTRING(0.5 -1, 0.5 0)",
		"LINESTRING(0.5 0, 0.5 1)",
	}
	gotLines := lines(got)
	if len(gotLines) != len(want) {
		t.Fatalf("node output = %v, want %v", gotLines, want)
	}
	for i, w := range want {
		if gotLines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, gotLines[i], w)
		}
	}
}

// TestScenarioOverlappingSquares covers spec scenario 2: two overlapping
// unit squares produce a graph with 10 nodes, including the two
// intersection points (1, 0.5) and (0.5, 1).
func TestScenarioOverlappingSquares(t *testing.T) {
	input := "POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))\n" +
		"POLYGON((0.5 0.5, 0.5 1.5, 1.5 1.5, 1.5 0.5, 0.5 0.5))\n"
	got := runCLI(t, input, "build-graph", "--tolerance", "0")

	nodeLines := 0
	haveA, haveB := false, false
	for _, line := range lines(got) {
		if line == "#" {
			break
		}
		nodeLines++
		if strings.Contains(line, "POINT(1 0.5)") {
			haveA = true
		}
		if strings.Contains(line, "POINT(0.5 1)") {
			haveB = true
		}
	}
	if nodeLines != 10 {
		t.Fatalf("build-graph produced %d node lines, want 10:\n%s", nodeLines, got)
	}
	if !haveA || !haveB {
		t.Fatalf("build-graph output missing an intersection node:\n%s", got)
	}
}

// TestScenarioPolygonRoundTrip covers spec scenario 3: noding, then
// graph-building, then polygonizing a single square yields exactly one
// polygon equal to the input.
func TestScenarioPolygonRoundTrip(t *testing.T) {
	input := "POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))\n"
	got := runCLI(t, input, "pipeline", "--tolerance", "0")

	polyLines := lines(got)
	if len(polyLines) != 1 {
		t.Fatalf("pipeline output = %v, want exactly one polygon", polyLines)
	}
	g, err := wkt.Parse(polyLines[0])
	if err != nil {
		t.Fatalf("parsing pipeline output: %v", err)
	}
	want := map[[2]float64]bool{
		{0, 0}: true, {0, 1}: true, {1, 1}: true, {1, 0}: true,
	}
	for _, c := range g.Coordinates() {
		delete(want, [2]float64{c.X, c.Y})
	}
	if len(want) != 0 {
		t.Fatalf("polygon output %s missing vertices %v", polyLines[0], want)
	}
}

// TestScenarioPolygonWithDangle covers spec scenario 4: a square plus a
// linestring crossing its right edge at (1, 0.5) is noded into two
// dangles hanging off that new vertex, and still polygonizes to exactly
// one polygon (the dangles are pruned before ring tracing rather than
// contaminating the square's ring).
func TestScenarioPolygonWithDangle(t *testing.T) {
	input := "POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))\n" +
		"LINESTRING(0.5 0.5, 1.5 0.5)\n"
	got := runCLI(t, input, "pipeline", "--tolerance", "0")

	polyLines := lines(got)
	if len(polyLines) != 1 {
		t.Fatalf("pipeline output = %v, want exactly one polygon", polyLines)
	}
	g, err := wkt.Parse(polyLines[0])
	if err != nil {
		t.Fatalf("parsing pipeline output: %v", err)
	}
	want := map[[2]float64]bool{
		{0, 0}: true, {0, 1}: true, {1, 1}: true, {1, 0}: true,
	}
	for _, c := range g.Coordinates() {
		delete(want, [2]float64{c.X, c.Y})
	}
	if len(want) != 0 {
		t.Fatalf("polygon output %s missing vertices %v", polyLines[0], want)
	}
}

// TestScenarioSnappingAcrossGap covers spec scenario 5: two linestrings
// separated by a gap smaller than ε snap-node into a single joint at
// (0, 2).
func TestScenarioSnappingAcrossGap(t *testing.T) {
	input := "LINESTRING(0 1, 0 2)\nLINESTRING(0 2.001, 0 3)\n"
	got := runCLI(t, input, "node", "--tolerance", "0.01")

	want := []string{
		"LINESTRING(0 1, 0 2)",
		"LINESTRING(0 2, 0 3)",
	}
	gotLines := lines(got)
	if len(gotLines) != len(want) {
		t.Fatalf("node output = %v, want %v", gotLines, want)
	}
	for i, w := range want {
		if gotLines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, gotLines[i], w)
		}
	}
}

// TestScenarioNestedCollectionFlatten covers spec scenario 6: a nested
// GEOMETRYCOLLECTION/MULTIPOINT/MULTILINESTRING flattens, depth-first,
// to six points followed by one linestring; node emits each point as a
// degenerate two-point LINESTRING and the linestring as its two segments.
func TestScenarioNestedCollectionFlatten(t *testing.T) {
	input := "GEOMETRYCOLLECTION(GEOMETRYCOLLECTION(POINT(1 1), " +
		"GEOMETRYCOLLECTION(MULTIPOINT((2 2), (3 3)), POINT(4 4)), " +
		"MULTIPOINT((5 5))), POINT(6 6), MULTILINESTRING((7 7, 8 8, 9 9)))\n"
	got := runCLI(t, input, "node", "--tolerance", "0")

	want := []string{
		"LINESTRING(1 1, 1 1)",
		"LINESTRING(2 2, 2 2)",
		"LINESTRING(3 3, 3 3)",
		"LINESTRING(4 4, 4 4)",
		"LINESTRING(5 5, 5 5)",
		"LINESTRING(6 6, 6 6)",
		"LINESTRING(7 7, 8 8)",
		"LINESTRING(8 8, 9 9)",
	}
	gotLines := lines(got)
	if len(gotLines) != len(want) {
		t.Fatalf("node output = %v, want %v", gotLines, want)
	}
	for i, w := range want {
		if gotLines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, gotLines[i], w)
		}
	}
}
