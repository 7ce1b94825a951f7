package geom

import "regexp"

// Upstream generative text mixes four delimiter conventions for math
// segments. Everything is folded into the $ / $$ convention; the transform
// is idempotent so it can sit safely in a render loop.
var (
	displayDelimRe = regexp.MustCompile(`\\\[([\s\S]*?)\\\]`)
	inlineDelimRe  = regexp.MustCompile(`\\\(([\s\S]*?)\\\)`)
	// Bare [...] only counts as math when the body holds a LaTeX command;
	// plain prose brackets pass through untouched.
	bracketMathRe = regexp.MustCompile(`\[([^\[\]]*\\[^\[\]]*)\]`)
)

// NormalizeMathDelimiters canonicalizes \[...\], \(...\) and math-bearing
// [...] spans into $$...$$ / $...$. Already-canonical input is returned
// unchanged, so the function is idempotent.
func NormalizeMathDelimiters(text string) string {
	text = displayDelimRe.ReplaceAllString(text, "$$$$${1}$$$$")
	text = inlineDelimRe.ReplaceAllString(text, "$$${1}$$")
	text = bracketMathRe.ReplaceAllString(text, "$$${1}$$")
	return text
}
