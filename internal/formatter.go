package internal

import (
	"regexp"
	"strings"
)

// rewriteRule is one (pattern, replacement) step of a text-transform pipeline.
// Rules are applied in order; adding label vocabularies for new languages is a
// data change, not a code change.
type rewriteRule struct {
	pattern *regexp.Regexp
	repl    string
}

func applyRules(s string, rules []rewriteRule) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	return s
}

// stripRules removes lightweight markup residue from model output. The model
// is instructed to answer in plain text but does not always comply.
var stripRules = []rewriteRule{
	{regexp.MustCompile("(?s)```.*?```"), ""},               // fenced code blocks
	{regexp.MustCompile("`([^`]*)`"), "$1"},                 // inline code
	{regexp.MustCompile(`(?m)^#+\s*(.*)$`), "$1"},           // headings
	{regexp.MustCompile(`(?m)^\s*[-*]\s+`), ""},             // unordered list bullets
	{regexp.MustCompile(`(?m)^\s*\d+\.\s+`), ""},            // ordered list numbers
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},           // bold
	{regexp.MustCompile(`\*([^*]+)\*`), "$1"},               // italic
	{regexp.MustCompile(`_([^_]+)_`), "$1"},                 // italic underscores
	{regexp.MustCompile(`~~([^~]+)~~`), "$1"},               // strikethrough
	{regexp.MustCompile(`>\s?`), ""},                        // blockquotes
	{regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`), "$1"},       // images alt text
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "$1"},        // links text
	{regexp.MustCompile(`[ \t]{2,}`), " "},                  // collapse spaces, keep newlines
	{regexp.MustCompile("\n{3,}"), "\n\n"},                  // limit blank lines to two
}

// labelBreakRules force a paragraph break around structured meal-plan content
// even when the model produced one dense line.
var labelBreakRules = []rewriteRule{
	{regexp.MustCompile(`\s*(Day\s*\d+:)`), "\n$1\n"},
	{regexp.MustCompile(`\s*(Breakfast:|Lunch:|Dinner:|Snack:)`), "\n$1 "},
	{regexp.MustCompile(`\s*(Ngày\s*\d+:)`), "\n$1\n"},
	{regexp.MustCompile(`\s*(Sáng:|Trưa:|Tối:|Ăn vặt:)`), "\n$1 "},
}

var (
	spaceRunRule   = regexp.MustCompile(`[ \t]{2,}`)
	newlineRunRule = regexp.MustCompile("\n{3,}")
	sentenceEndRe  = regexp.MustCompile(`([.!?])\s+`)
)

// StripMarkup replaces markup constructs with their plain inner text. It never
// alters semantic content.
func StripMarkup(text string) string {
	return strings.TrimSpace(applyRules(text, stripRules))
}

// FormatForChat reshapes model output for a narrow chat bubble: paragraph
// breaks before day/meal labels, a sentence-based fallback split for dense
// paragraphs, and whitespace normalization. Deterministic, and already
// formatted text passes through unchanged.
func FormatForChat(text string) string {
	s := strings.TrimSpace(text)
	s = applyRules(s, labelBreakRules)

	if !strings.Contains(s, "\n") {
		s = breakLongParagraph(s)
	}

	s = spaceRunRule.ReplaceAllString(s, " ")
	s = newlineRunRule.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// breakLongParagraph splits text on sentence-ending punctuation and re-joins
// it with a newline after every second sentence.
func breakLongParagraph(s string) string {
	sentences := splitSentences(s)
	if len(sentences) < 3 {
		return s
	}

	var b strings.Builder
	for i, sentence := range sentences {
		b.WriteString(sentence)
		if i == len(sentences)-1 {
			break
		}
		if i%2 == 1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// splitSentences cuts s after each sentence-ending punctuation mark followed
// by whitespace, keeping the punctuation with its sentence.
func splitSentences(s string) []string {
	var parts []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringSubmatchIndex(s, -1) {
		// loc[3] is the end of the punctuation group
		parts = append(parts, strings.TrimSpace(s[last:loc[3]]))
		last = loc[1]
	}
	if rest := strings.TrimSpace(s[last:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}
