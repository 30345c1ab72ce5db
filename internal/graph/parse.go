package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a graph in adjacency-list form: one "vertex: n1 n2 ..." line per
// vertex, neighbors separated by whitespace. Blank lines and lines starting
// with # are ignored. A vertex line with no neighbors declares an isolated
// vertex; repeating a vertex appends to its neighbor list.
func Parse(r io.Reader) (Graph, error) {
	g := make(Graph)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vertex, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: expected \"vertex: neighbors...\", got %q", lineno, line)
		}
		vertex = strings.TrimSpace(vertex)
		if vertex == "" {
			return nil, fmt.Errorf("line %d: empty vertex name", lineno)
		}
		g[vertex] = append(g[vertex], strings.Fields(rest)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return g, nil
}
