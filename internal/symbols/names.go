package symbols

var greekLetters = map[string]string{
	// Lowercase
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "vartheta": "ϑ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"omicron": "ο", "pi": "π", "varpi": "ϖ", "rho": "ρ",
	"varrho": "ϱ", "sigma": "σ", "varsigma": "ς", "tau": "τ",
	"upsilon": "υ", "phi": "φ", "varphi": "ϕ", "chi": "χ",
	"psi": "ψ", "omega": "ω",

	// Uppercase
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
}

var mathSymbols = map[string]string{
	// Binary operators
	"pm": "±", "mp": "∓", "times": "×", "div": "÷", "cdot": "·",
	"ast": "∗", "star": "⋆", "circ": "∘", "bullet": "•",
	"oplus": "⊕", "ominus": "⊖", "otimes": "⊗", "oslash": "⊘", "odot": "⊙",

	// Relations
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"equiv": "≡", "approx": "≈", "cong": "≅", "sim": "∼", "simeq": "≃",
	"propto": "∝", "ll": "≪", "gg": "≫",
	"subset": "⊂", "supset": "⊃", "subseteq": "⊆", "supseteq": "⊇",
	"in": "∈", "notin": "∉", "ni": "∋", "perp": "⊥", "parallel": "∥",

	// Arrows
	"leftarrow": "←", "rightarrow": "→", "uparrow": "↑", "downarrow": "↓",
	"leftrightarrow": "↔", "Leftarrow": "⇐", "Rightarrow": "⇒",
	"Uparrow": "⇑", "Downarrow": "⇓", "Leftrightarrow": "⇔",
	"mapsto": "↦", "to": "→", "gets": "←", "implies": "⟹", "iff": "⟺",

	// Big operators
	"sum": "∑", "prod": "∏", "coprod": "∐", "int": "∫", "iint": "∬",
	"iiint": "∭", "oint": "∮", "bigcup": "⋃", "bigcap": "⋂",
	"bigvee": "⋁", "bigwedge": "⋀", "bigoplus": "⨁", "bigotimes": "⨂",

	// Misc
	"infty": "∞", "nabla": "∇", "partial": "∂", "forall": "∀",
	"exists": "∃", "nexists": "∄", "emptyset": "∅", "varnothing": "∅",
	"neg": "¬", "lnot": "¬", "land": "∧", "lor": "∨", "wedge": "∧",
	"vee": "∨", "cap": "∩", "cup": "∪", "setminus": "∖",
	"sqrt": "√", "surd": "√", "angle": "∠", "measuredangle": "∡",
	"triangle": "△", "therefore": "∴", "because": "∵",
	"ldots": "…", "cdots": "⋯", "vdots": "⋮", "ddots": "⋱",
	"prime": "′", "dprime": "″",

	// Delimiters
	"langle": "⟨", "rangle": "⟩", "lceil": "⌈", "rceil": "⌉",
	"lfloor": "⌊", "rfloor": "⌋", "lbrace": "{", "rbrace": "}",
	"lvert": "|", "rvert": "|", "lVert": "‖", "rVert": "‖",

	// Function names render as upright text
	"sin": "sin", "cos": "cos", "tan": "tan", "cot": "cot",
	"sec": "sec", "csc": "csc", "arcsin": "arcsin", "arccos": "arccos",
	"arctan": "arctan", "sinh": "sinh", "cosh": "cosh", "tanh": "tanh",
	"log": "log", "ln": "ln", "lg": "lg", "exp": "exp",
	"lim": "lim", "limsup": "lim sup", "liminf": "lim inf",
	"max": "max", "min": "min", "sup": "sup", "inf": "inf",
	"det": "det", "dim": "dim", "ker": "ker", "hom": "hom",
	"arg": "arg", "deg": "deg", "gcd": "gcd", "lcm": "lcm",
	"mod": "mod", "Pr": "Pr",

	// Letter-like
	"Re": "ℜ", "Im": "ℑ", "wp": "℘", "ell": "ℓ", "hbar": "ℏ",
	"aleph": "ℵ", "beth": "ℶ", "gimel": "ℷ", "daleth": "ℸ",
}

// Greek returns the Greek letter for a LaTeX-style letter name.
func Greek(name string) (string, bool) {
	s, ok := greekLetters[name]
	return s, ok
}

// Symbol returns the glyph sequence for a command name (without the
// leading backslash).
func Symbol(name string) (string, bool) {
	s, ok := mathSymbols[name]
	return s, ok
}

var bigOperators = map[string]bool{
	"∑": true, "∏": true, "∫": true, "∬": true,
	"∭": true, "∮": true, "⋃": true, "⋂": true,
}

// IsBigOperator reports whether s is a large operator that takes limits
// above and below.
func IsBigOperator(s string) bool {
	return bigOperators[s]
}

var limitNames = map[string]bool{
	"lim": true, "max": true, "min": true, "sup": true, "inf": true,
}

// IsLimitName reports whether s is a limit-style operator name whose
// under-script is written inline.
func IsLimitName(s string) bool {
	return limitNames[s]
}

var binaryOperators = map[string]bool{
	"+": true, "-": true, "−": true, "±": true, "∓": true,
}

// IsBinaryOperator reports whether s is an additive operator that is
// spaced when it follows an operand.
func IsBinaryOperator(s string) bool {
	return binaryOperators[s]
}

var relations = map[string]bool{
	"=": true, "≤": true, "≥": true, "≠": true, "≈": true, "≡": true,
	"→": true, "⇒": true, "⟹": true, "×": true, "÷": true, "·": true,
}

// IsRelation reports whether s is a relation (or multiplicative operator)
// that is always spaced on both sides.
func IsRelation(s string) bool {
	return relations[s]
}

var accents = map[string]string{
	"^": "̂", "ˆ": "̂", // circumflex
	"~": "̃", "˜": "̃", // tilde
	"¯": "̄", "-": "̄", "‾": "̄", // macron
	".": "̇", "˙": "̇", // dot
	"..": "̈", "¨": "̈", // diaeresis
	"→": "⃗", // vector arrow
}

// CombiningAccent returns the combining mark for an over-accent marker.
func CombiningAccent(marker string) (string, bool) {
	s, ok := accents[marker]
	return s, ok
}
