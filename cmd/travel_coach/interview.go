package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchmate/travel-coach/internal/lengthctl"
	"github.com/pitchmate/travel-coach/internal/logging"
	"github.com/pitchmate/travel-coach/internal/pipeline"
	"github.com/pitchmate/travel-coach/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run the scripted business interview interactively",
	Long: `Starts a local interview loop on stdin/stdout. Each answer is routed and
fed to the script engine; the loop ends when every section is exhausted.`,
	RunE: runInterviewCmd,
}

var (
	interviewSegment string
	interviewStyle   string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewSegment, "segment", "", "Explicit segment override (camping/experience/sports)")
	interviewCmd.Flags().StringVar(&interviewStyle, "length-style", "", "Force a length preset for any payload output")

	rootCmd.AddCommand(interviewCmd)
}

func runInterviewCmd(_ *cobra.Command, _ []string) error {
	return interviewLoop(context.Background(), os.Stdin, os.Stdout, types.RawParams{
		Segment:     interviewSegment,
		LengthStyle: interviewStyle,
	})
}

// interviewLoop drives the turn pipeline until the script reaches its
// terminal state or input runs out. Turn history and params round-trip the
// same way a hosting service would round-trip them.
func interviewLoop(ctx context.Context, in io.Reader, out io.Writer, params types.RawParams) error {
	scanner := bufio.NewScanner(in)
	var history []types.Turn

	if params.LengthStyle != "" {
		directive, budget := lengthctl.Directive(lengthctl.Style(params.LengthStyle))
		fmt.Fprintf(out, "(길이 지침: %s / %d tokens)\n", directive, budget)
	}
	fmt.Fprintln(out, "사업 아이디어를 한 줄로 말씀해 주세요. (빈 줄 입력 시 종료)")

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}
		history = append(history, types.Turn{Role: types.RoleUser, Content: text})

		req := &types.TurnRequest{Turns: history, Params: params}
		conv, err := pipeline.RunTurn(ctx, req, pipeline.RunOptions{Logger: logging.Nop()})
		if err != nil {
			return err
		}
		script := conv.Script

		switch script.Mode {
		case types.ModeNotice:
			fmt.Fprintln(out, script.Message)
		case types.ModeAsk:
			fmt.Fprintf(out, "[%s] %s\n", script.SlotKey, script.Question)
			history = append(history, types.Turn{Role: types.RoleAssistant, Content: script.Question})
		case types.ModeEnd:
			fmt.Fprintln(out, script.Message)
			return scanner.Err()
		}

		params = pipeline.BuildResponse(conv).Params
	}
	return scanner.Err()
}
