package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"algolab/internal/happy"
	"algolab/internal/ui"
)

var happySeq bool

var happyCmd = &cobra.Command{
	Use:   "happy <n...>",
	Short: "Test numbers for happiness",
	Long:  "A number is happy when repeatedly summing the squares of its digits reaches 1; every other number falls into a cycle.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHappy,
}

func init() {
	happyCmd.Flags().BoolVar(&happySeq, "seq", false, "print the digit-square trajectory")
	rootCmd.AddCommand(happyCmd)
}

func runHappy(cmd *cobra.Command, args []string) error {
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not an integer: %q", arg)
		}
		if n < 0 {
			return fmt.Errorf("negative input %d: happiness is defined for non-negative integers", n)
		}
		nums = append(nums, n)
	}
	return newEnv().doHappy(nums, happySeq)
}

type happyVerdict struct {
	N        int   `json:"n"`
	Happy    bool  `json:"happy"`
	Sequence []int `json:"sequence,omitempty"`
}

func (e *env) doHappy(nums []int, withSeq bool) error {
	verdicts := make([]happyVerdict, 0, len(nums))
	for _, n := range nums {
		v := happyVerdict{N: n, Happy: happy.IsHappy(n)}
		if withSeq || e.jsonOut {
			v.Sequence = happy.Sequence(n)
		}
		verdicts = append(verdicts, v)
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(verdicts)
	}

	styles := ui.DefaultStyles()
	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, v := range verdicts {
		verdict := styles.Bad.Render("unhappy")
		if v.Happy {
			verdict = styles.Good.Render("happy")
		}
		if withSeq {
			fmt.Fprintf(w, "%d\t%s\t%v\n", v.N, verdict, v.Sequence)
		} else {
			fmt.Fprintf(w, "%d\t%s\n", v.N, verdict)
		}
	}
	return w.Flush()
}
