package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMathDelimiters(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"display brackets", `\[x^2\]`, `$$x^2$$`},
		{"inline parens", `\(a+b\)`, `$a+b$`},
		{"bare brackets with command", `[\frac{1}{2}]`, `$\frac{1}{2}$`},
		{"prose brackets untouched", "see [1] for details", "see [1] for details"},
		{"already inline", `$e^x$`, `$e^x$`},
		{"already display", `$$\sum_i i$$`, `$$\sum_i i$$`},
		{"mixed", `intro \(a\) and \[b\]`, `intro $a$ and $$b$$`},
		{"plain prose", "no math here", "no math here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMathDelimiters(tc.in))
		})
	}
}

func TestNormalizeMathDelimitersIdempotent(t *testing.T) {
	inputs := []string{
		`\[x^2\]`,
		`\(a+b\)`,
		`[\alpha]`,
		`$$done$$`,
		"plain text [with] brackets",
		`mix \(a\) then \[b\] and [\gamma]`,
	}
	for _, in := range inputs {
		once := NormalizeMathDelimiters(in)
		twice := NormalizeMathDelimiters(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestLatexToVisualUnicode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"greek sentence", `\alpha + \beta = \gamma`, "α + β = γ"},
		{"uppercase greek", `\Delta x`, "Δ x"},
		{"operators", `a \times b \leq c`, "a × b ≤ c"},
		{"prefix safety", `\int f \in S, \infty`, "∫ f ∈ S, ∞"},
		{"arrow", `f: A \to B`, "f: A → B"},
		{"superscript digit", `x^2`, "x²"},
		{"superscript group", `e^{10}`, "e¹⁰"},
		{"subscript", `a_0 + a_{12}`, "a₀ + a₁₂"},
		{"common fraction", `\frac{1}{2}`, "½"},
		{"general fraction", `\frac{a}{b}`, "a/b"},
		{"sqrt", `\sqrt{2}`, "√2"},
		{"accent", `\bar{x}`, "x̄"},
		{"spacing", `a\,b\quad c`, "a b  c"},
		{"left right stripped", `\left( x \right)`, "( x )"},
		{"unknown command backslash stripped", `\unknowncmd x`, "unknowncmd x"},
		{"plain text unchanged", "2 + 2 = 4", "2 + 2 = 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LatexToVisualUnicode(tc.in))
		})
	}
}

func TestLatexToVisualUnicodeNeverEmptyOnCommands(t *testing.T) {
	// A lone backslash-command never comes back broken.
	out := LatexToVisualUnicode(`\mysterycommand`)
	assert.Equal(t, "mysterycommand", out)
}
