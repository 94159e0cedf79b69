// Command thorsp parses a DIMACS shortest-path file, prepares a
// thorup.Engine over it, runs one query, and reports the resulting
// distance vector.
//
// Exit code 0 on success; 1 on malformed input, a missing file, or an
// out-of-range flag value.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/thorsp/dimacs"
	"github.com/katalvlaran/thorsp/msbmst"
	"github.com/katalvlaran/thorsp/thorup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("thorsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "path to a DIMACS shortest-path file (required)")
	source := fs.Int("source", 0, "0-based source vertex")
	algoName := fs.String("algo", "kruskal", "msb-MST algorithm: kruskal, prim, or fredman-tarjan")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *input == "" {
		slog.Error("thorsp: -input is required")

		return 1
	}

	f, err := os.Open(*input)
	if err != nil {
		slog.Error("thorsp: cannot open input file", "path", *input, "err", err)

		return 1
	}
	defer f.Close()

	g, err := dimacs.Parse(f)
	if err != nil {
		slog.Error("thorsp: failed to parse DIMACS input", "err", err)

		return 1
	}

	algo, err := resolveAlgorithm(*algoName, int32(*source))
	if err != nil {
		slog.Error("thorsp: unknown algorithm", "algo", *algoName, "err", err)

		return 1
	}

	e := thorup.NewEngine()
	if err := e.PrepareDefault(g, algo); err != nil {
		slog.Error("thorsp: failed to prepare engine", "err", err)

		return 1
	}

	d, err := e.FindShortestPaths(int32(*source))
	if err != nil {
		slog.Error("thorsp: query failed", "source", *source, "err", err)

		return 1
	}

	for v, dist := range d {
		fmt.Fprintf(stdout, "%d %d\n", v, dist)
	}

	return 0
}

func resolveAlgorithm(name string, root int32) (msbmst.MSTAlgorithm, error) {
	switch name {
	case "kruskal":
		return msbmst.Kruskal{}, nil
	case "prim":
		return msbmst.Prim{Root: root}, nil
	case "fredman-tarjan":
		return msbmst.FredmanTarjan{Root: root}, nil
	default:
		return nil, fmt.Errorf("thorsp: unknown algorithm %q", name)
	}
}
