package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pitchmate/travel-coach/internal/relevance"
	"github.com/pitchmate/travel-coach/internal/router"
	"github.com/pitchmate/travel-coach/internal/types"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate routing accuracy against a labeled JSONL file",
	Long: `Reads JSONL lines of the form {"text": ..., "segment": ...} and routes each
text through the rule-based router, reporting the match rate and every
mismatch. Runs cases concurrently; routing is deterministic, so the report
is stable.`,
	RunE: runEvalCmd,
}

var evalConcurrency int

func init() {
	evalCmd.Flags().IntVar(&evalConcurrency, "concurrency", 8, "Number of cases routed in parallel")

	rootCmd.AddCommand(evalCmd)
}

// evalCase is one labeled routing example.
type evalCase struct {
	Text    string `json:"text"`
	Segment string `json:"segment"`
}

// evalOutcome pairs a case with the segment the router actually chose.
type evalOutcome struct {
	evalCase
	Got types.Segment
}

func readEvalCases(r io.Reader) ([]evalCase, error) {
	var cases []evalCase
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var c evalCase
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if c.Text == "" {
			return nil, fmt.Errorf("line %d: missing text", line)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// routeEvalCases routes every case concurrently and returns outcomes in
// input order.
func routeEvalCases(ctx context.Context, cases []evalCase, concurrency int) ([]evalOutcome, error) {
	outcomes := make([]evalOutcome, len(cases))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			conv := types.NewConversationContext(
				[]types.Turn{{Role: types.RoleUser, Content: c.Text}}, types.Params{})
			conv.Relevance = &types.RelevanceResult{Related: !relevance.IsUnrelated(c.Text)}
			decision := router.Decide(ctx, conv, router.Options{})

			mu.Lock()
			outcomes[i] = evalOutcome{evalCase: c, Got: decision.Segment}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runEvalCmd(_ *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open eval file: %w", err)
		}
		defer f.Close()
		in = f
	}

	cases, err := readEvalCases(in)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no eval cases found")
	}

	concurrency := evalConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	outcomes, err := routeEvalCases(context.Background(), cases, concurrency)
	if err != nil {
		return err
	}

	matched := 0
	for _, o := range outcomes {
		if string(o.Got) == o.Segment {
			matched++
			continue
		}
		fmt.Fprintf(os.Stdout, "MISMATCH %-12q want=%-10s got=%s\n", o.Text, o.Segment, o.Got)
	}
	fmt.Fprintf(os.Stdout, "%d/%d matched (%.1f%%)\n",
		matched, len(outcomes), 100*float64(matched)/float64(len(outcomes)))
	return nil
}
