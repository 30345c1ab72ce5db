package markov

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

type edge struct {
	to     string
	weight float64
}

// Chain is a weighted state-transition chain. Successor order is insertion
// order, so walks are reproducible for a fixed random source.
type Chain struct {
	transitions map[string][]edge
	states      map[string]struct{}
	rng         *rand.Rand
}

// New returns an empty chain drawing from rng. A nil rng gets a fresh
// randomly-seeded source; tests pass a fixed seed instead.
func New(rng *rand.Rand) *Chain {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Chain{
		transitions: make(map[string][]edge),
		states:      make(map[string]struct{}),
		rng:         rng,
	}
}

// AddTransition sets the weight of the from -> to transition, registering both
// states. Adding the same pair again overwrites the previous weight.
func (c *Chain) AddTransition(from, to string, weight float64) {
	for i, e := range c.transitions[from] {
		if e.to == to {
			c.transitions[from][i].weight = weight
			return
		}
	}
	c.transitions[from] = append(c.transitions[from], edge{to: to, weight: weight})
	c.states[from] = struct{}{}
	c.states[to] = struct{}{}
}

// addState registers a state with no transitions of its own.
func (c *Chain) addState(s string) {
	c.states[s] = struct{}{}
}

// Normalize rescales each state's outgoing weights to sum to 1. Rows with a
// non-positive total are left as they are.
func (c *Chain) Normalize() {
	for _, edges := range c.transitions {
		total := 0.0
		for _, e := range edges {
			total += e.weight
		}
		if total <= 0 {
			continue
		}
		for i := range edges {
			edges[i].weight /= total
		}
	}
}

// Next picks a successor of state at random, weighted by transition weight.
// ok is false when the state has no outgoing transitions.
func (c *Chain) Next(state string) (next string, ok bool) {
	edges := c.transitions[state]
	if len(edges) == 0 {
		return "", false
	}
	total := 0.0
	for _, e := range edges {
		total += e.weight
	}
	if total <= 0 {
		return edges[c.rng.IntN(len(edges))].to, true
	}
	r := c.rng.Float64() * total
	for _, e := range edges {
		r -= e.weight
		if r < 0 {
			return e.to, true
		}
	}
	// Float roundoff can leave r at exactly zero; land on the last edge.
	return edges[len(edges)-1].to, true
}

// Walk generates a state sequence of up to n states starting at start. The
// walk stops early at a state with no outgoing transitions. Unknown start
// states are an error.
func (c *Chain) Walk(start string, n int) ([]string, error) {
	if _, ok := c.states[start]; !ok {
		return nil, fmt.Errorf("start state %q not in chain", start)
	}
	seq := []string{start}
	current := start
	for len(seq) < n {
		next, ok := c.Next(current)
		if !ok {
			break
		}
		seq = append(seq, next)
		current = next
	}
	return seq, nil
}

// States returns all known states, sorted.
func (c *Chain) States() []string {
	out := make([]string, 0, len(c.states))
	for s := range c.states {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Weight reports the current weight of the from -> to transition.
func (c *Chain) Weight(from, to string) (float64, bool) {
	for _, e := range c.transitions[from] {
		if e.to == to {
			return e.weight, true
		}
	}
	return 0, false
}
