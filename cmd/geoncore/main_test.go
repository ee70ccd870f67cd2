package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoncore/geoncore/internal/cli"
)

// TestPipelineEndToEnd drives the geoncore binary's command tree the way
// a shell invocation of `geoncore pipeline` would, covering spec
// scenario 3 (polygon round trip) at the outermost entry point rather
// than through internal/cli's own package-level tests.
func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wkt")
	outPath := filepath.Join(dir, "out.wkt")

	if err := os.WriteFile(inPath, []byte("POLYGON((0 0, 0 1, 1 1, 1 0, 0 0))\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"pipeline", "-i", inPath, "-o", outPath, "--verbose", "--tolerance", "0"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(out)), "POLYGON(") {
		t.Fatalf("pipeline output = %q, want a single POLYGON line", out)
	}
}
