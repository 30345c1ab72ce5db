package graph

// Graph is a directed adjacency list. Neighbor slices keep definition order,
// so traversals are deterministic.
type Graph map[string][]string

// AddEdge appends an edge from -> to.
func (g Graph) AddEdge(from, to string) {
	g[from] = append(g[from], to)
}

// DFS returns the vertices reachable from start in depth-first preorder.
// Vertices absent from the graph have no neighbors, so an unknown start
// yields just itself.
func DFS(g Graph, start string) []string {
	visited := make(map[string]struct{})
	var order []string
	var walk func(v string)
	walk = func(v string) {
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}
		order = append(order, v)
		for _, n := range g[v] {
			walk(n)
		}
	}
	walk(start)
	return order
}

// DFSIterative is the explicit-stack variant of DFS. Neighbors are pushed in
// reverse so the visit order matches the recursive traversal.
func DFSIterative(g Graph, start string) []string {
	visited := make(map[string]struct{})
	var order []string
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[v]; ok {
			continue
		}
		visited[v] = struct{}{}
		order = append(order, v)
		neighbors := g[v]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if _, ok := visited[neighbors[i]]; !ok {
				stack = append(stack, neighbors[i])
			}
		}
	}
	return order
}
