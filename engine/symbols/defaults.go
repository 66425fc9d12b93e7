package symbols

import "sync"

var defaultTable *Table
var defaultTableCreation sync.Once

// Default returns a symbol table populated with the common symbols of
// math and text mode. The table is created once and must not be modified
// by clients.
func Default() *Table {
	defaultTableCreation.Do(func() {
		defaultTable = NewTable()
		populate(defaultTable)
	})
	return defaultTable
}

func populate(t *Table) {
	// Greek letters
	for cmd, ch := range map[string]string{
		`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ",
		`\epsilon`: "ϵ", `\zeta`: "ζ", `\eta`: "η", `\theta`: "θ",
		`\iota`: "ι", `\kappa`: "κ", `\lambda`: "λ", `\mu`: "μ",
		`\nu`: "ν", `\xi`: "ξ", `\omicron`: "o", `\pi`: "π",
		`\rho`: "ρ", `\sigma`: "σ", `\tau`: "τ", `\upsilon`: "υ",
		`\phi`: "ϕ", `\chi`: "χ", `\psi`: "ψ", `\omega`: "ω",
		`\varepsilon`: "ε", `\vartheta`: "ϑ", `\varpi`: "ϖ",
		`\varrho`: "ϱ", `\varsigma`: "ς", `\varphi`: "φ",
	} {
		t.Define(Math, cmd, Symbol{Font: Main, Group: MathOrd, Replace: ch})
	}
	for cmd, ch := range map[string]string{
		`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ",
		`\Xi`: "Ξ", `\Pi`: "Π", `\Sigma`: "Σ", `\Upsilon`: "Υ",
		`\Phi`: "Φ", `\Psi`: "Ψ", `\Omega`: "Ω",
	} {
		t.Define(Math, cmd, Symbol{Font: Main, Group: TextOrd, Replace: ch})
	}
	t.Define(Math, `\imath`, Symbol{Font: Main, Group: MathOrd, Replace: "ı"})
	t.Define(Math, `\jmath`, Symbol{Font: Main, Group: MathOrd, Replace: "ȷ"})
	// ordinary symbols
	for cmd, ch := range map[string]string{
		`\infty`: "∞", `\prime`: "′", `\nabla`: "∇", `\partial`: "∂",
		`\forall`: "∀", `\exists`: "∃", `\emptyset`: "∅", `\hbar`: "ℏ",
		`\ell`: "ℓ", `\aleph`: "ℵ", `\neg`: "¬", `\ldots`: "…",
	} {
		t.Define(Math, cmd, Symbol{Font: Main, Group: TextOrd, Replace: ch})
	}
	// binary operators
	for cmd, ch := range map[string]string{
		"+": "", "-": "−", "*": "∗", `\cdot`: "⋅", `\times`: "×",
		`\div`: "÷", `\pm`: "±", `\mp`: "∓", `\cup`: "∪", `\cap`: "∩",
		`\circ`: "∘", `\bullet`: "∙", `\setminus`: "∖", `\wedge`: "∧",
		`\vee`: "∨",
	} {
		t.Define(Math, cmd, Symbol{Font: Main, Group: Bin, Replace: ch})
	}
	// relations
	for cmd, ch := range map[string]string{
		"=": "", "<": "", ">": "", ":": "", `\leq`: "≤", `\geq`: "≥",
		`\neq`: "≠", `\equiv`: "≡", `\approx`: "≈", `\sim`: "∼",
		`\in`: "∈", `\subset`: "⊂", `\supset`: "⊃", `\subseteq`: "⊆",
		`\to`: "→", `\rightarrow`: "→", `\leftarrow`: "←",
		`\Rightarrow`: "⇒", `\mid`: "∣", `\perp`: "⊥",
	} {
		t.Define(Math, cmd, Symbol{Font: Main, Group: Rel, Replace: ch})
	}
	// AMS relations and binary operators
	for cmd, ch := range map[string]string{
		`\leqq`: "≦", `\geqq`: "≧", `\lesssim`: "≲", `\gtrsim`: "≳",
		`\nleq`: "≰", `\ngeq`: "≱", `\subsetneq`: "⊊", `\therefore`: "∴",
		`\because`: "∵",
	} {
		t.Define(Math, cmd, Symbol{Font: AMS, Group: Rel, Replace: ch})
	}
	for cmd, ch := range map[string]string{
		`\ltimes`: "⋉", `\rtimes`: "⋊", `\boxplus`: "⊞", `\boxtimes`: "⊠",
	} {
		t.Define(Math, cmd, Symbol{Font: AMS, Group: Bin, Replace: ch})
	}
	// delimiters and punctuation
	for _, ch := range []string{"(", "[", `\{`, `\lbrace`, `\langle`} {
		t.Define(Math, ch, Symbol{Font: Main, Group: Open, Replace: openReplace[ch]})
	}
	for _, ch := range []string{")", "]", `\}`, `\rbrace`, `\rangle`, "?", "!"} {
		t.Define(Math, ch, Symbol{Font: Main, Group: Close, Replace: openReplace[ch]})
	}
	t.Define(Math, ",", Symbol{Font: Main, Group: Punct})
	t.Define(Math, ";", Symbol{Font: Main, Group: Punct})
	t.Define(Math, `\colon`, Symbol{Font: Main, Group: Punct, Replace: ":"})
	// spacing
	t.Define(Math, `\ `, Symbol{Font: Main, Group: Spacing, Replace: "\u00a0"})
	t.Define(Math, "~", Symbol{Font: Main, Group: Spacing, Replace: "\u00a0"})
	t.Define(Text, `\ `, Symbol{Font: Main, Group: Spacing, Replace: "\u00a0"})
	t.Define(Text, "~", Symbol{Font: Main, Group: Spacing, Replace: "\u00a0"})
	// ordinary characters
	for c := 'a'; c <= 'z'; c++ {
		t.Define(Math, string(c), Symbol{Font: Main, Group: MathOrd})
		t.Define(Math, string(c-'a'+'A'), Symbol{Font: Main, Group: MathOrd})
		t.Define(Text, string(c), Symbol{Font: Main, Group: TextOrd})
		t.Define(Text, string(c-'a'+'A'), Symbol{Font: Main, Group: TextOrd})
	}
	for c := '0'; c <= '9'; c++ {
		t.Define(Math, string(c), Symbol{Font: Main, Group: TextOrd})
		t.Define(Text, string(c), Symbol{Font: Main, Group: TextOrd})
	}
	for _, ch := range []string{"/", "@", ".", "\"", "|", "'"} {
		t.Define(Math, ch, Symbol{Font: Main, Group: TextOrd})
		t.Define(Text, ch, Symbol{Font: Main, Group: TextOrd})
	}
	// text ligatures and quotes
	for cmd, ch := range map[string]string{
		"--": "–", "---": "—", "``": "“", "''": "”", "`": "‘",
	} {
		t.Define(Text, cmd, Symbol{Font: Main, Group: TextOrd, Replace: ch})
	}
}

var openReplace = map[string]string{
	`\{`:      "{",
	`\lbrace`: "{",
	`\langle`: "⟨",
	`\}`:      "}",
	`\rbrace`: "}",
	`\rangle`: "⟩",
}
