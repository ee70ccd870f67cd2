// Command geoncore is the CLI entry point for the noding/polygonization
// toolkit: node, build-graph, polygonize, snap, pipeline and serve.
package main

import "github.com/geoncore/geoncore/internal/cli"

func main() {
	cli.Execute()
}
