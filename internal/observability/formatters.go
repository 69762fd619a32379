// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pitchmate/travel-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines; widths are counted in runes so Korean
		// content is not severed mid-character.
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRelevance outputs the relevance filter verdict.
func (p *Printer) PrintRelevance(res *types.RelevanceResult) {
	if res == nil {
		return
	}
	p.printBox("RELEVANCE", fmt.Sprintf("Related:  %t", res.Related))
}

// PrintDomainDecision outputs a human-readable summary of the routing decision.
func (p *Printer) PrintDomainDecision(d *types.DomainDecision) {
	if d == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Intent:     %s\n", d.Intent))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", d.Domain))
	seg := string(d.Segment)
	if seg == "" {
		seg = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Segment:    %s\n", seg))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f (via %s)\n", d.Confidence, d.Via))
	sb.WriteString(fmt.Sprintf("On topic:   %t (score %.2f)", d.IsOnTopic, d.OnTopicScore))

	p.printBox("DOMAIN DECISION", sb.String())
}

// PrintScriptOutput outputs the interview engine result for this turn.
func (p *Printer) PrintScriptOutput(out *types.ScriptOutput) {
	if out == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", out.Mode))
	switch out.Mode {
	case types.ModeAsk:
		sb.WriteString(fmt.Sprintf("Slot:     %s (section %s)\n", out.SlotKey, out.Section))
		sb.WriteString(fmt.Sprintf("Question: %s", out.Question))
		if out.Progress != nil {
			sb.WriteString(fmt.Sprintf("\nAnswered: %d slot(s)", len(out.Progress.Answered)))
		}
	default:
		sb.WriteString(fmt.Sprintf("Message:  %s", out.Message))
	}

	p.printBox("INTERVIEW SCRIPT", sb.String())
}

// PrintPayload outputs the governed payload, pretty-printed when it is
// structured.
func (p *Printer) PrintPayload(payload any) {
	if payload == nil {
		return
	}

	var content string
	switch v := payload.(type) {
	case string:
		content = v
	default:
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			content = fmt.Sprintf("%v", v)
		} else {
			content = string(raw)
		}
	}

	lines := strings.Split(content, "\n")
	if limit := maxItemsToShow * 4; len(lines) > limit {
		kept := lines[:limit]
		kept = append(kept, fmt.Sprintf("... and %d more line(s)", len(lines)-limit))
		content = strings.Join(kept, "\n")
	}

	p.printBox("GOVERNED PAYLOAD", content)
}
