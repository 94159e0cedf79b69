// Package dimacs parses the DIMACS shortest-path challenge format into a
// wgraph.Graph: plain-text, line-oriented, space-separated tokens.
//
//	c <text>          comment, ignored
//	p sp <n> <m>      problem line: vertex count and edge count, must
//	                  precede any arc line
//	a <u> <v> <w>     arc: 1-based vertex indices, positive 32-bit weight
//
// Vertex indices are 1-based in the file and 0-based in the returned
// graph; converting between the two is this package's job, not the
// caller's.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/thorsp/wgraph"
)

// Sentinel errors for malformed DIMACS input.
var (
	// ErrMissingProblemLine is returned when an "a" line appears before
	// any "p sp" line, or no "p sp" line appears at all.
	ErrMissingProblemLine = errors.New("dimacs: arc line precedes problem line")
	// ErrMalformedLine is returned for a line that starts with a
	// recognized token but doesn't have the right field count or types.
	ErrMalformedLine = errors.New("dimacs: malformed line")
	// ErrUnknownLineType is returned for a line whose first token is none
	// of "c", "p", "a".
	ErrUnknownLineType = errors.New("dimacs: unrecognized line type")
)

// Parse reads a DIMACS shortest-path file from r and returns the
// corresponding wgraph.Graph. Parallel directed edges are logged as a
// warning and skipped rather than failing the parse.
func Parse(r io.Reader) (*wgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var g *wgraph.Graph
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if g != nil {
				return nil, fmt.Errorf("%w: duplicate problem line at %d", ErrMalformedLine, lineNo)
			}
			n, err := parseProblemLine(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g, err = wgraph.New(n)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "a":
			if g == nil {
				return nil, fmt.Errorf("%w at line %d", ErrMissingProblemLine, lineNo)
			}
			u, v, w, err := parseArcLine(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := g.AddUndirectedEdge(u, v, w); err != nil {
				if errors.Is(err, wgraph.ErrParallelEdge) {
					slog.Warn("dimacs: skipping parallel edge", "line", lineNo, "u", u, "v", v, "w", w)

					continue
				}

				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("%w %q at line %d", ErrUnknownLineType, fields[0], lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: scan failed: %w", err)
	}
	if g == nil {
		return nil, ErrMissingProblemLine
	}

	return g, nil
}

// parseProblemLine parses "p sp <n> <m>", returning n. m is not used to
// preallocate anything beyond what wgraph.New(n) already does; it is
// still required to be present and numeric, matching the format.
func parseProblemLine(fields []string) (int, error) {
	if len(fields) != 4 || fields[1] != "sp" {
		return 0, fmt.Errorf("%w: expected \"p sp <n> <m>\"", ErrMalformedLine)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("%w: vertex count %q: %v", ErrMalformedLine, fields[2], err)
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return 0, fmt.Errorf("%w: edge count %q: %v", ErrMalformedLine, fields[3], err)
	}

	return n, nil
}

// parseArcLine parses "a <u> <v> <w>", converting DIMACS's 1-based u, v
// to 0-based and returning the weight as given.
func parseArcLine(fields []string) (u, v, w int32, err error) {
	if len(fields) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: expected \"a <u> <v> <w>\"", ErrMalformedLine)
	}
	uu, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: u %q: %v", ErrMalformedLine, fields[1], err)
	}
	vv, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: v %q: %v", ErrMalformedLine, fields[2], err)
	}
	ww, err := strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: w %q: %v", ErrMalformedLine, fields[3], err)
	}

	return int32(uu - 1), int32(vv - 1), int32(ww), nil
}
