package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pitchmate/travel-coach/internal/config"
	"github.com/pitchmate/travel-coach/internal/llm"
	"github.com/pitchmate/travel-coach/internal/logging"
	"github.com/pitchmate/travel-coach/internal/observability"
	"github.com/pitchmate/travel-coach/internal/pipeline"
	"github.com/pitchmate/travel-coach/internal/schemas"
	"github.com/pitchmate/travel-coach/internal/types"
)

var turnCmd = &cobra.Command{
	Use:   "turn",
	Short: "Process one conversation turn from a JSON request",
	Long: `Reads a turn request (turn history, round-tripped params, optional payload)
from a file or stdin, runs the relevance/routing/script/length stages, and
writes the response envelope as JSON to stdout.`,
	RunE: runTurnCmd,
}

var (
	turnConfigPath    string
	turnInputPath     string
	turnAPIKey        string
	turnModel         string
	turnAllowZeroShot bool
	turnLengthStyle   string
	turnMaxChars      int
	turnMaxTokens     int
	turnVerbose       bool
	turnPretty        bool
)

func init() {
	turnCmd.Flags().StringVar(&turnConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	turnCmd.Flags().StringVarP(&turnInputPath, "input", "i", "-", "Path to the turn request JSON ('-' for stdin)")
	turnCmd.Flags().StringVar(&turnAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	turnCmd.Flags().StringVar(&turnModel, "model", "", "Gemini model for zero-shot routing")
	turnCmd.Flags().BoolVar(&turnAllowZeroShot, "allow-zero-shot", false, "Permit one bounded classifier call when keyword rules fail")
	turnCmd.Flags().StringVar(&turnLengthStyle, "length-style", "", "Force a length preset (one_line/short/medium/long)")
	turnCmd.Flags().IntVar(&turnMaxChars, "max-chars", 0, "Global character cap for the payload")
	turnCmd.Flags().IntVar(&turnMaxTokens, "max-tokens", 0, "Token cap for payload text fields")
	turnCmd.Flags().BoolVarP(&turnVerbose, "verbose", "v", false, "Print detailed stage output to stderr")
	turnCmd.Flags().BoolVar(&turnPretty, "pretty", false, "Indent the JSON response")

	rootCmd.AddCommand(turnCmd)
}

func loadTurnConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if turnConfigPath != "" {
		loaded, err := config.LoadConfig(turnConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = turnAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = turnModel
	}
	if cmd.Flags().Changed("allow-zero-shot") {
		cfg.AllowZeroShot = turnAllowZeroShot
	}
	if cmd.Flags().Changed("length-style") {
		cfg.LengthStyle = turnLengthStyle
	}
	if cmd.Flags().Changed("max-chars") {
		cfg.MaxChars = turnMaxChars
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.MaxTokens = turnMaxTokens
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = turnVerbose
	}

	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readTurnInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeTurnRequest validates the raw document against the embedded schema
// and the struct validator before handing it to the pipeline.
func decodeTurnRequest(raw []byte) (*types.TurnRequest, error) {
	if err := schemas.ValidateTurnRequest(string(raw)); err != nil {
		return nil, err
	}
	var req types.TurnRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to parse turn request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// buildRunOptions assembles pipeline options from resolved config. The LLM
// client is only dialed when the zero-shot fallback is both allowed and
// usable.
func buildRunOptions(ctx context.Context, cfg *config.Config, log *logging.Logger) (pipeline.RunOptions, error) {
	opts := pipeline.RunOptions{
		AllowZeroShot:   cfg.AllowZeroShot,
		ClassifyTimeout: cfg.ClassifyTimeout(),
		LengthStyle:     cfg.LengthStyle,
		MaxChars:        cfg.MaxChars,
		MaxTokens:       cfg.MaxTokens,
		Logger:          log,
	}
	if cfg.AllowZeroShot && cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		client, err := llm.Shared(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return opts, fmt.Errorf("failed to initialize classifier client: %w", err)
		}
		opts.Client = client
	}
	return opts, nil
}

func runTurnCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadTurnConfig(cmd)
	if err != nil {
		return err
	}

	raw, err := readTurnInput(turnInputPath)
	if err != nil {
		return fmt.Errorf("failed to read turn request: %w", err)
	}

	req, err := decodeTurnRequest(raw)
	if err != nil {
		return err
	}

	log := logging.Nop()
	if cfg.Verbose {
		if log, err = logging.New("dev"); err != nil {
			return err
		}
		defer log.Sync()
	}

	opts, err := buildRunOptions(ctx, cfg, log)
	if err != nil {
		return err
	}

	conv, err := pipeline.RunTurn(ctx, req, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRelevance(conv.Relevance)
		printer.PrintDomainDecision(conv.Domain)
		printer.PrintScriptOutput(conv.Script)
		printer.PrintPayload(conv.Payload)
	}

	resp := pipeline.BuildResponse(conv)
	enc := json.NewEncoder(os.Stdout)
	if turnPretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
