package markov

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// stateSep joins the words of a k-gram into one chain state.
const stateSep = " "

// TextChain is a word chain of fixed order: each state is a run of `order`
// consecutive words and transitions lead to the single word that follows.
type TextChain struct {
	*Chain
	order int
}

// FromText builds an order-k word chain from whitespace-split text. Each
// k-gram window transitions to the word after it; weights are normalized over
// the distinct successors of each window.
func FromText(text string, order int, rng *rand.Rand) (*TextChain, error) {
	if order < 1 {
		return nil, fmt.Errorf("order must be at least 1, got %d", order)
	}
	words := strings.Fields(text)
	if len(words) <= order {
		return nil, fmt.Errorf("need more than %d words to build an order-%d chain, got %d", order, order, len(words))
	}
	c := New(rng)
	for i := 0; i+order < len(words); i++ {
		from := strings.Join(words[i:i+order], stateSep)
		c.AddTransition(from, words[i+order], 1)
	}
	c.Normalize()
	return &TextChain{Chain: c, order: order}, nil
}

// Order returns the chain's k-gram size.
func (tc *TextChain) Order() int {
	return tc.order
}

// Generate produces up to n words starting from seed, which must be exactly
// `order` words already present in the chain. After each step the window
// slides by one word, so generation keeps going for any order. Stops early
// when the current window has no successor.
func (tc *TextChain) Generate(seed string, n int) ([]string, error) {
	window := strings.Fields(seed)
	if len(window) != tc.order {
		return nil, fmt.Errorf("seed must be %d word(s), got %d", tc.order, len(window))
	}
	state := strings.Join(window, stateSep)
	if _, ok := tc.states[state]; !ok {
		return nil, fmt.Errorf("seed %q not in chain", state)
	}
	words := append([]string(nil), window...)
	for len(words) < n {
		next, ok := tc.Next(state)
		if !ok {
			break
		}
		words = append(words, next)
		window = append(window[1:], next)
		state = strings.Join(window, stateSep)
	}
	return words, nil
}
