package geom

import (
	"regexp"
	"sort"
	"strings"
)

// latexCommands maps LaTeX command sequences to their closest Unicode
// visual equivalent. Lookup is longest-command-first so prefixes like \in
// never shadow \int or \infty.
var latexCommands = map[string]string{
	// Greek, lowercase.
	`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ",
	`\epsilon`: "ε", `\varepsilon`: "ε", `\zeta`: "ζ", `\eta`: "η",
	`\theta`: "θ", `\vartheta`: "ϑ", `\iota`: "ι", `\kappa`: "κ",
	`\lambda`: "λ", `\mu`: "μ", `\nu`: "ν", `\xi`: "ξ", `\pi`: "π",
	`\rho`: "ρ", `\sigma`: "σ", `\varsigma`: "ς", `\tau`: "τ",
	`\upsilon`: "υ", `\phi`: "φ", `\varphi`: "φ", `\chi`: "χ",
	`\psi`: "ψ", `\omega`: "ω",
	// Greek, uppercase.
	`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ",
	`\Xi`: "Ξ", `\Pi`: "Π", `\Sigma`: "Σ", `\Upsilon`: "Υ",
	`\Phi`: "Φ", `\Psi`: "Ψ", `\Omega`: "Ω",
	// Operators and relations.
	`\times`: "×", `\div`: "÷", `\pm`: "±", `\mp`: "∓", `\cdot`: "·",
	`\leq`: "≤", `\le`: "≤", `\geq`: "≥", `\ge`: "≥",
	`\neq`: "≠", `\ne`: "≠", `\approx`: "≈", `\equiv`: "≡",
	`\sim`: "∼", `\propto`: "∝", `\infty`: "∞",
	`\sum`: "∑", `\prod`: "∏", `\int`: "∫", `\oint`: "∮",
	`\partial`: "∂", `\nabla`: "∇",
	// Arrows.
	`\rightarrow`: "→", `\to`: "→", `\leftarrow`: "←",
	`\Rightarrow`: "⇒", `\Leftarrow`: "⇐", `\leftrightarrow`: "↔",
	`\Leftrightarrow`: "⇔", `\mapsto`: "↦",
	// Sets and logic.
	`\in`: "∈", `\notin`: "∉", `\subset`: "⊂", `\supset`: "⊃",
	`\subseteq`: "⊆", `\supseteq`: "⊇", `\cup`: "∪", `\cap`: "∩",
	`\emptyset`: "∅", `\varnothing`: "∅", `\forall`: "∀",
	`\exists`: "∃", `\neg`: "¬", `\land`: "∧", `\lor`: "∨",
	// Misc.
	`\angle`: "∠", `\perp`: "⊥", `\parallel`: "∥", `\degree`: "°",
	`\circ`: "∘", `\bullet`: "•", `\ldots`: "…", `\cdots`: "⋯",
	`\prime`: "′", `\hbar`: "ℏ", `\ell`: "ℓ", `\aleph`: "ℵ",
	`\Re`: "ℜ", `\Im`: "ℑ", `\wp`: "℘",
	// Sizing/grouping commands carry no visual weight of their own.
	`\left`: "", `\right`: "", `\displaystyle`: "",
	// Spacing.
	`\qquad`: "    ", `\quad`: "  ", `\,`: " ", `\;`: " ", `\:`: " ", `\!`: "",
}

var commonFractions = map[string]string{
	"1/2": "½", "1/3": "⅓", "2/3": "⅔", "1/4": "¼", "3/4": "¾",
	"1/5": "⅕", "1/8": "⅛",
}

var superscriptRunes = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscriptRunes = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'o': 'ₒ', 'x': 'ₓ', 'n': 'ₙ',
}

var accentCombining = map[string]string{
	"hat": "̂", "bar": "̄", "tilde": "̃",
	"dot": "̇", "ddot": "̈", "vec": "⃗",
}

var (
	fracRe     = regexp.MustCompile(`\\[dt]?frac\{([^{}]*)\}\{([^{}]*)\}`)
	sqrtRe     = regexp.MustCompile(`\\sqrt\{([^{}]*)\}`)
	accentRe   = regexp.MustCompile(`\\(hat|bar|tilde|ddot|dot|vec)\{([^{}]*)\}`)
	supBraceRe = regexp.MustCompile(`\^\{([^{}]*)\}`)
	supCharRe  = regexp.MustCompile(`\^(.)`)
	subBraceRe = regexp.MustCompile(`_\{([^{}]*)\}`)
	subCharRe  = regexp.MustCompile(`_(.)`)
	strayCmdRe = regexp.MustCompile(`\\([a-zA-Z]+)`)
)

var commandReplacer = buildCommandReplacer()

func buildCommandReplacer() *strings.Replacer {
	keys := make([]string, 0, len(latexCommands))
	for k := range latexCommands {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, latexCommands[k])
	}
	return strings.NewReplacer(pairs...)
}

// LatexToVisualUnicode is a best-effort, one-way lossy transform of LaTeX
// into readable plain text for contexts that cannot render it. Commands
// without a mapping have their backslash stripped rather than being left
// broken; the function never fails.
func LatexToVisualUnicode(latex string) string {
	s := latex

	s = fracRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := fracRe.FindStringSubmatch(m)
		if f, ok := commonFractions[parts[1]+"/"+parts[2]]; ok {
			return f
		}
		return parts[1] + "/" + parts[2]
	})
	s = sqrtRe.ReplaceAllString(s, "√$1")
	s = accentRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := accentRe.FindStringSubmatch(m)
		return parts[2] + accentCombining[parts[1]]
	})

	s = supBraceRe.ReplaceAllStringFunc(s, func(m string) string {
		return mapRunes(supBraceRe.FindStringSubmatch(m)[1], superscriptRunes)
	})
	s = supCharRe.ReplaceAllStringFunc(s, func(m string) string {
		return mapRunes(m[1:], superscriptRunes)
	})
	s = subBraceRe.ReplaceAllStringFunc(s, func(m string) string {
		return mapRunes(subBraceRe.FindStringSubmatch(m)[1], subscriptRunes)
	})
	s = subCharRe.ReplaceAllStringFunc(s, func(m string) string {
		return mapRunes(m[1:], subscriptRunes)
	})

	s = commandReplacer.Replace(s)
	s = strayCmdRe.ReplaceAllString(s, "$1")
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return s
}

// mapRunes translates each rune through table, keeping runes that have no
// script equivalent.
func mapRunes(s string, table map[rune]rune) string {
	var b strings.Builder
	for _, r := range s {
		if m, ok := table[r]; ok {
			b.WriteRune(m)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
