package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"algolab/internal/graph"
)

var (
	dfsGraphPath string
	dfsStart     string
	dfsIterative bool
)

var dfsCmd = &cobra.Command{
	Use:   "dfs",
	Short: "Depth-first search over an adjacency list",
	Long:  "Reads a graph in 'vertex: neighbor neighbor' lines and prints the depth-first visit order from the start vertex.",
	RunE:  runDFS,
}

func init() {
	dfsCmd.Flags().StringVar(&dfsGraphPath, "graph", "", "graph file (default stdin)")
	dfsCmd.Flags().StringVar(&dfsStart, "start", "", "start vertex (required)")
	dfsCmd.Flags().BoolVar(&dfsIterative, "iterative", false, "use the explicit-stack traversal")
	rootCmd.AddCommand(dfsCmd)
}

func runDFS(cmd *cobra.Command, args []string) error {
	if dfsStart == "" {
		return fmt.Errorf("--start is required")
	}
	return newEnv().doDFS(dfsGraphPath, dfsStart, dfsIterative)
}

func (e *env) doDFS(path, start string, iterative bool) error {
	r := e.stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := graph.Parse(r)
	if err != nil {
		return err
	}

	var order []string
	if iterative {
		order = graph.DFSIterative(g, start)
	} else {
		order = graph.DFS(g, start)
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(order)
	}
	fmt.Fprintln(e.stdout, strings.Join(order, " "))
	return nil
}
