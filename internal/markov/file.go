package markov

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

type chainFile struct {
	States      []string         `yaml:"states"`
	Transitions []transitionSpec `yaml:"transitions"`
}

type transitionSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	P    float64 `yaml:"p"`
}

// LoadFile reads a chain definition from a YAML file:
//
//	states: [stuck]            # optional, for states with no transitions
//	transitions:
//	  - {from: sunny, to: sunny, p: 0.8}
//	  - {from: sunny, to: rainy, p: 0.2}
//
// An omitted p counts as 1. Weights are normalized per state after loading.
func LoadFile(path string, rng *rand.Rand) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	var def chainFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse chain file %s: %w", path, err)
	}
	if len(def.Transitions) == 0 {
		return nil, fmt.Errorf("chain file %s declares no transitions", path)
	}
	c := New(rng)
	for _, tr := range def.Transitions {
		if tr.From == "" || tr.To == "" {
			return nil, fmt.Errorf("chain file %s: transition needs both from and to (got from=%q to=%q)", path, tr.From, tr.To)
		}
		if tr.P < 0 {
			return nil, fmt.Errorf("chain file %s: negative probability %v for %s -> %s", path, tr.P, tr.From, tr.To)
		}
		p := tr.P
		if p == 0 {
			p = 1
		}
		c.AddTransition(tr.From, tr.To, p)
	}
	for _, s := range def.States {
		c.addState(s)
	}
	c.Normalize()
	return c, nil
}
