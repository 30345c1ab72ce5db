package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"algolab/internal/markov"
)

var markovCmd = &cobra.Command{
	Use:   "markov",
	Short: "Markov chain walks and text generation",
}

var (
	walkChainPath string
	walkStart     string
	walkSteps     int
	walkSeed      uint64
)

var markovWalkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Random walk over a chain file",
	Long:  "Loads a YAML chain definition and walks it from the start state, printing the visited states.",
	RunE:  runMarkovWalk,
}

var (
	textOrder  int
	textWords  int
	textSeed   uint64
	textCorpus string
	textStart  string
)

var markovTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate text from a corpus",
	Long:  "Builds an order-k word chain from a corpus (a file or stdin) and generates words from it.",
	RunE:  runMarkovText,
}

func init() {
	markovWalkCmd.Flags().StringVar(&walkChainPath, "chain", "", "YAML chain file (required)")
	markovWalkCmd.Flags().StringVar(&walkStart, "start", "", "start state (required)")
	markovWalkCmd.Flags().IntVarP(&walkSteps, "steps", "n", 20, "number of transitions")
	markovWalkCmd.Flags().Uint64Var(&walkSeed, "seed", 0, "RNG seed (0 picks a random one)")

	markovTextCmd.Flags().IntVar(&textOrder, "order", 1, "k-gram order")
	markovTextCmd.Flags().IntVarP(&textWords, "words", "n", 50, "number of words to generate")
	markovTextCmd.Flags().Uint64Var(&textSeed, "seed", 0, "RNG seed (0 picks a random one)")
	markovTextCmd.Flags().StringVar(&textCorpus, "corpus", "", "corpus file (default stdin)")
	markovTextCmd.Flags().StringVar(&textStart, "start", "", "starting words (default the corpus opening)")

	markovCmd.AddCommand(markovWalkCmd)
	markovCmd.AddCommand(markovTextCmd)
	rootCmd.AddCommand(markovCmd)
}

// chainRand builds the injected RNG; seed 0 keeps the chain's own seeding.
func chainRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func runMarkovWalk(cmd *cobra.Command, args []string) error {
	if walkChainPath == "" {
		return fmt.Errorf("--chain is required")
	}
	if walkStart == "" {
		return fmt.Errorf("--start is required")
	}
	return newEnv().doMarkovWalk(walkChainPath, walkStart, walkSteps, walkSeed)
}

func (e *env) doMarkovWalk(path, start string, steps int, seed uint64) error {
	c, err := markov.LoadFile(path, chainRand(seed))
	if err != nil {
		return err
	}
	// steps counts transitions; the walk length includes the start state.
	states, err := c.Walk(start, steps+1)
	if err != nil {
		return err
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}
	fmt.Fprintln(e.stdout, strings.Join(states, " -> "))
	return nil
}

func runMarkovText(cmd *cobra.Command, args []string) error {
	return newEnv().doMarkovText(textCorpus, textStart, textOrder, textWords, textSeed)
}

func (e *env) doMarkovText(corpusPath, start string, order, words int, seed uint64) error {
	r := e.stdin
	if corpusPath != "" {
		f, err := os.Open(corpusPath)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	tc, err := markov.FromText(string(data), order, chainRand(seed))
	if err != nil {
		return err
	}
	if start == "" {
		fields := strings.Fields(string(data))
		start = strings.Join(fields[:order], " ")
	}
	out, err := tc.Generate(start, words)
	if err != nil {
		return err
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	fmt.Fprintln(e.stdout, strings.Join(out, " "))
	return nil
}
