package lengthctl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// sentenceEndRe matches runs of sentence-final punctuation plus
	// newlines and closing quotes/brackets, all acceptable cut points.
	sentenceEndRe = regexp.MustCompile("[.!?。！？…]+|[\n]+|[”’\"'」』)\\]]")
	// wordBoundaryRe matches whitespace and weak separators.
	wordBoundaryRe = regexp.MustCompile(`[\s,;:/·\-–—]+`)
)

// codeFences lists the fence markers whose balance must be preserved.
var codeFences = []string{"```", "~~~"}

// linkTokens mark URL or Markdown-link material that must not be severed.
var linkTokens = []string{"](", "http://", "https://", "://"}

// linkBackoffWindow is how many characters before a cut are inspected for
// link material.
const linkBackoffWindow = 6

// insideCodeBlock reports whether byte offset idx sits inside an unclosed
// code fence.
func insideCodeBlock(text string, idx int) bool {
	before := text[:idx]
	for _, fence := range codeFences {
		if strings.Count(before, fence)%2 == 1 {
			return true
		}
	}
	return false
}

// balanceFences closes any fence left open at the end of text.
func balanceFences(text string) string {
	for _, fence := range codeFences {
		if strings.Count(text, fence)%2 == 1 {
			text += "\n" + fence
		}
	}
	return text
}

// prevRuneStart steps byte offset i back to the start of the preceding rune.
func prevRuneStart(s string, i int) int {
	i--
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// backoffLinkBoundary moves the cut back to the last word boundary when
// link material appears within the final few characters before it.
func backoffLinkBoundary(text string, cut int) int {
	start := cut
	for i := 0; i < linkBackoffWindow && start > 0; i++ {
		start = prevRuneStart(text, start)
	}
	window := text[start:cut]
	hit := false
	for _, tok := range linkTokens {
		if strings.Contains(window, tok) {
			hit = true
			break
		}
	}
	if !hit {
		return cut
	}
	bounds := wordBoundaryRe.FindAllStringIndex(text[:cut], -1)
	if len(bounds) == 0 {
		return cut
	}
	return bounds[len(bounds)-1][0]
}

// firstRuneLen returns the byte length of the first rune of s, at least 1.
func firstRuneLen(s string) int {
	if s == "" {
		return 1
	}
	_, n := utf8.DecodeRuneInString(s)
	if n < 1 {
		return 1
	}
	return n
}

// SoftCut trims text to at most maxChars characters, preferring sentence
// ends, then word boundaries, then a hard cut. The cut retreats out of open
// code fences and away from link material, remaining fences are closed, and
// an ellipsis is appended when requested.
func SoftCut(text string, maxChars int, addEllipsis bool) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return balanceFences(text)
	}
	snippet := string(runes[:maxChars])

	cut := -1
	if m := sentenceEndRe.FindAllStringIndex(snippet, -1); len(m) > 0 {
		cut = m[len(m)-1][1]
	}
	if cut < 0 {
		if m := wordBoundaryRe.FindAllStringIndex(snippet, -1); len(m) > 0 {
			cut = m[len(m)-1][0]
		} else {
			cut = len(snippet)
		}
	}
	for cut > 0 && insideCodeBlock(snippet, cut) {
		cut = prevRuneStart(snippet, cut)
	}
	cut = backoffLinkBoundary(snippet, cut)
	if min := firstRuneLen(snippet); cut < min {
		cut = min
	}

	out := strings.TrimRight(snippet[:cut], " \t\r\n")
	out = balanceFences(out)
	if addEllipsis {
		out += "…"
	}
	return out
}

// EnforceCharCap caps text at maxChars characters. Code payloads get a hard
// cut with no ellipsis; everything else goes through SoftCut.
func EnforceCharCap(text string, maxChars int, isCode bool) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return balanceFences(text)
	}
	if !isCode {
		return SoftCut(text, maxChars, true)
	}
	snippet := string(runes[:maxChars])
	cut := len(snippet)
	for cut > 0 && insideCodeBlock(snippet, cut) {
		cut = prevRuneStart(snippet, cut)
	}
	if min := firstRuneLen(snippet); cut < min {
		cut = min
	}
	out := strings.TrimRight(snippet[:cut], " \t\r\n")
	return balanceFences(out)
}

// tailMarkerRe recognizes a drop marker emitted by a previous pass, which
// keeps repeated trimming stable.
var tailMarkerRe = regexp.MustCompile(`^… \(\+(\d+) more\)$`)

// EnforceBullets caps a homogeneous string list: each entry is soft-cut to
// maxEach characters, at most maxCount entries survive, and when tail is
// set a marker records how many were dropped.
func EnforceBullets(items []string, maxEach, maxCount int, tail bool) []string {
	dropped := 0
	if n := len(items); n > 0 {
		if m := tailMarkerRe.FindStringSubmatch(items[n-1]); m != nil {
			dropped, _ = strconv.Atoi(m[1])
			items = items[:n-1]
		}
	}
	keep := items
	if maxCount > 0 && len(items) > maxCount {
		keep = items[:maxCount]
		dropped += len(items) - maxCount
	}
	out := make([]string, 0, len(keep)+1)
	for _, it := range keep {
		out = append(out, EnforceCharCap(it, maxEach, false))
	}
	if tail && dropped > 0 {
		out = append(out, fmt.Sprintf("… (+%d more)", dropped))
	}
	return out
}
